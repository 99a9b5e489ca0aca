package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/testutil"
)

type part struct {
	field    string
	filename string
	data     []byte
}

func upload(t *testing.T, e *env, folder string, parts ...part) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if folder != "" {
		require.NoError(t, mw.WriteField("folder", folder))
	}
	for _, p := range parts {
		fw, err := mw.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return e.do(http.MethodPost, "/api/upload", &body, mw.FormDataContentType())
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestUpload_PartialSuccess(t *testing.T) {
	e := newEnv(t, deps{})

	w := upload(t, e, "Nature",
		part{"images[]", "lake.png", testutil.PNG(32, 16)},
		part{"images[]", "notes.txt", []byte("hello")},
		part{"images[]", "tree.jpg", testutil.JPEG(8, 8)},
	)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[models.UploadResponse](t, w)
	assert.Equal(t, "Nature", resp.Folder)
	require.Len(t, resp.Uploaded, 2)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "notes.txt", resp.Errors[0].Filename)
	assert.Equal(t, services.StageValidate, resp.Errors[0].Stage)

	lake := resp.Uploaded[0]
	assert.Equal(t, "image/png", lake.MimeType)
	assert.True(t, strings.HasPrefix(lake.StoragePath, "folders/Nature/"))
	assert.Equal(t, "https://cdn.example.com/photos/"+lake.StoragePath, lake.URL)
	require.NotNil(t, lake.FolderID)
	assert.Len(t, e.store.Keys(), 2)
}

func TestUpload_AlternateFieldName(t *testing.T) {
	e := newEnv(t, deps{})
	w := upload(t, e, "City", part{"file", "street.png", testutil.PNG(4, 4)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, decode[models.UploadResponse](t, w).Uploaded, 1)
}

func TestUpload_Rejected(t *testing.T) {
	e := newEnv(t, deps{})

	w := upload(t, e, "", part{"images[]", "lake.png", testutil.PNG(4, 4)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "folder is required")

	w = upload(t, e, "Nature")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no files uploaded")

	w = upload(t, e, "Nature", part{"other", "lake.png", testutil.PNG(4, 4)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(t, e, "a/b", part{"images[]", "lake.png", testutil.PNG(4, 4)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPost, "/api/upload", strings.NewReader("{}"), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, e.store.Keys())
}

func TestUpload_AllInvalid(t *testing.T) {
	e := newEnv(t, deps{})

	w := upload(t, e, "Nature",
		part{"images[]", "fake.jpg", []byte("not an image")},
		part{"images[]", "notes.txt", []byte("hello")},
	)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	resp := decode[models.UploadResponse](t, w)
	assert.Empty(t, resp.Uploaded)
	assert.Len(t, resp.Errors, 2)
}

func TestUpload_StorageDown(t *testing.T) {
	e := newEnv(t, deps{})
	e.store.FailKeys = "folders/"

	w := upload(t, e, "Nature", part{"images[]", "lake.png", testutil.PNG(4, 4)})
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	resp := decode[models.UploadResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, services.StageStorage, resp.Errors[0].Stage)
}

func TestUpload_RequestTooLarge(t *testing.T) {
	e := newEnv(t, deps{maxUploadBody: 1024})

	w := upload(t, e, "Nature", part{"images[]", "big.png", bytes.Repeat([]byte("x"), 4096)})
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "1024 bytes")
	assert.Empty(t, e.store.Keys())

	w = upload(t, e, "Nature", part{"images[]", "lake.png", testutil.PNG(4, 4)})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
