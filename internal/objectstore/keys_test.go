package objectstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"photo-portfolio-backend/internal/objectstore"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key      string
		folder   string
		filename string
		ok       bool
	}{
		{"folders/Nature/tree.jpg", "Nature", "tree.jpg", true},
		{"folders/City/night street.png", "City", "night street.png", true},
		{"folders/Nature/", "", "", false},
		{"folders/tree.jpg", "", "", false},
		{"folders/Nature/2023/tree.jpg", "", "", false},
		{"folders/.trash/tree.jpg", "", "", false},
		{"folders/Nature/.DS_Store", "", "", false},
		{"folders//tree.jpg", "", "", false},
		{"photos/Nature/tree.jpg", "", "", false},
		{"folders/", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			folder, filename, ok := objectstore.SplitKey("folders/", tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.folder, folder)
			assert.Equal(t, tt.filename, filename)
		})
	}
}

func TestSplitKey_PrefixWithoutSlash(t *testing.T) {
	folder, filename, ok := objectstore.SplitKey("folders", "folders/Nature/tree.jpg")
	assert.True(t, ok)
	assert.Equal(t, "Nature", folder)
	assert.Equal(t, "tree.jpg", filename)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_holiday.jpg", objectstore.SanitizeFilename("my holiday.jpg"))
	assert.Equal(t, "passwd", objectstore.SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "photo.png", objectstore.SanitizeFilename(`C:\Users\me\photo.png`))
	assert.Equal(t, "htaccess", objectstore.SanitizeFilename(".htaccess"))
	assert.Equal(t, "caf.jpg", objectstore.SanitizeFilename("café.jpg"))
	assert.Equal(t, "", objectstore.SanitizeFilename("..."))

	long := strings.Repeat("a", 300) + ".jpeg"
	got := objectstore.SanitizeFilename(long)
	assert.Len(t, got, 200)
	assert.True(t, strings.HasSuffix(got, ".jpeg"))
}

func TestContentTypeByExtension(t *testing.T) {
	assert.Equal(t, "image/jpeg", objectstore.ContentTypeByExtension("tree.JPG"))
	assert.Equal(t, "image/jpeg", objectstore.ContentTypeByExtension("tree.jpeg"))
	assert.Equal(t, "image/png", objectstore.ContentTypeByExtension("a.png"))
	assert.Equal(t, "image/webp", objectstore.ContentTypeByExtension("a.webp"))
	assert.Equal(t, "image/heic", objectstore.ContentTypeByExtension("a.heic"))
	assert.Equal(t, "application/octet-stream", objectstore.ContentTypeByExtension("README"))
}

func TestNewObjectKey(t *testing.T) {
	a := objectstore.NewObjectKey("folders", "Nature", "my tree.jpg")
	b := objectstore.NewObjectKey("folders/", "Nature", "my tree.jpg")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "folders/Nature/"))
	assert.True(t, strings.HasSuffix(a, "_my_tree.jpg"))

	folder, filename, ok := objectstore.SplitKey("folders/", a)
	assert.True(t, ok)
	assert.Equal(t, "Nature", folder)
	assert.True(t, strings.HasSuffix(filename, "_my_tree.jpg"))

	assert.True(t, strings.HasSuffix(objectstore.NewObjectKey("folders/", "Nature", "???"), "_upload"))
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "folders/City/night%20street.png", objectstore.EscapeKey("folders/City/night street.png"))
}
