package objectstore

import (
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
)

const DefaultPrefix = "folders/"

var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

// NormalizePrefix returns prefix with exactly one trailing slash, or "" for
// the bucket root.
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

// SplitKey partitions a key of the form {prefix}{folder}/{filename}. Keys
// outside the prefix, directory markers, deeper paths, empty segments and
// hidden entries report ok == false.
func SplitKey(prefix, key string) (folder, filename string, ok bool) {
	prefix = NormalizePrefix(prefix)
	if !strings.HasPrefix(key, prefix) {
		return "", "", false
	}
	rest := key[len(prefix):]
	if rest == "" || strings.HasSuffix(rest, "/") {
		return "", "", false
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	folder, filename = parts[0], parts[1]
	if folder == "" || filename == "" {
		return "", "", false
	}
	if strings.HasPrefix(folder, ".") || strings.HasPrefix(filename, ".") {
		return "", "", false
	}
	return folder, filename, true
}

// SanitizeFilename reduces name to a safe single path segment made of ASCII
// letters, digits, '.', '-' and '_'.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	out := strings.TrimLeft(b.String(), "._")
	if len(out) > 200 {
		ext := path.Ext(out)
		if len(ext) > 16 {
			ext = ""
		}
		out = out[:200-len(ext)] + ext
	}
	return out
}

// ContentTypeByExtension maps a filename to a media type, falling back to
// application/octet-stream.
func ContentTypeByExtension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return "application/octet-stream"
	}
	if ct, ok := extensionTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			return mediaType
		}
		return ct
	}
	return "application/octet-stream"
}

// NewObjectKey builds a collision-free key for an uploaded file:
// {prefix}{folder}/{uuid}_{sanitized filename}.
func NewObjectKey(prefix, folder, filename string) string {
	name := SanitizeFilename(filename)
	if name == "" {
		name = "upload"
	}
	return NormalizePrefix(prefix) + folder + "/" + uuid.NewString() + "_" + name
}
