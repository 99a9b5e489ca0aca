package services_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/testutil"
)

func file(name string, data []byte) services.UploadFile {
	return services.UploadFile{
		Filename: name,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func newUploadService(repo services.Repository, store *testutil.MemStore) *services.UploadService {
	return services.NewUploadService(repo, store, services.UploadOptions{
		Prefix:            "folders/",
		MaxSize:           1 << 20,
		AllowedExtensions: []string{"jpg", "jpeg", "png", "gif", "webp"},
	})
}

func TestUpload_FailureIsolation(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	svc := newUploadService(repo, store)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, "Nature", []services.UploadFile{
		file("lake.png", testutil.PNG(32, 16)),
		file("fake.jpg", []byte("this is not an image at all")),
		file("tree.jpg", testutil.JPEG(8, 12)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Nature", resp.Folder)
	require.Len(t, resp.Uploaded, 2)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "fake.jpg", resp.Errors[0].Filename)
	assert.Equal(t, services.StageValidate, resp.Errors[0].Stage)
	assert.True(t, services.OnlyValidationErrors(resp))

	lake := resp.Uploaded[0]
	assert.Equal(t, "lake.png", lake.Filename)
	assert.Equal(t, "image/png", lake.MimeType)
	require.NotNil(t, lake.Width)
	assert.Equal(t, int32(32), *lake.Width)
	assert.Equal(t, int32(16), *lake.Height)
	assert.True(t, strings.HasPrefix(lake.StoragePath, "folders/Nature/"))
	assert.True(t, strings.HasSuffix(lake.StoragePath, "_lake.png"))
	assert.True(t, store.Has(lake.StoragePath))

	tree := resp.Uploaded[1]
	assert.Equal(t, "image/jpeg", tree.MimeType)
	assert.Equal(t, int32(8), *tree.Width)

	count, err := repo.CountPhotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, store.Keys(), 2)
}

func TestUpload_StorageFailureLeavesNoRow(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	store.FailKeys = "_broken"
	svc := newUploadService(repo, store)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, "City", []services.UploadFile{
		file("broken.png", testutil.PNG(4, 4)),
		file("street.png", testutil.PNG(4, 4)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Uploaded, 1)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, services.StageStorage, resp.Errors[0].Stage)
	assert.False(t, services.OnlyValidationErrors(resp))

	count, err := repo.CountPhotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpload_DatabaseFailureKeepsBlobForReindex(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	svc := newUploadService(&flakyRepo{Repository: repo, failCreate: true}, store)
	ctx := context.Background()

	resp, err := svc.Upload(ctx, "Nature", []services.UploadFile{file("tree.png", testutil.PNG(4, 4))})
	require.NoError(t, err)
	assert.Empty(t, resp.Uploaded)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, services.StageDatabase, resp.Errors[0].Stage)
	require.Len(t, store.Keys(), 1)

	summary, err := services.NewReconcileService(repo, store, "folders/").Reindex(ctx, services.ReindexOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PhotosAdded)
}

func TestUpload_Validation(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	svc := services.NewUploadService(repo, store, services.UploadOptions{
		MaxSize:           64,
		AllowedExtensions: []string{".PNG"},
	})
	ctx := context.Background()

	_, err := svc.Upload(ctx, "", []services.UploadFile{file("a.png", testutil.PNG(2, 2))})
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = svc.Upload(ctx, "../etc", []services.UploadFile{file("a.png", testutil.PNG(2, 2))})
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = svc.Upload(ctx, "Nature", nil)
	assert.ErrorIs(t, err, models.ErrValidation)

	big := testutil.JPEG(16, 16)
	resp, err := svc.Upload(ctx, "Nature", []services.UploadFile{
		file("virus.exe", []byte("MZ")),
		file("big.png", big),
		{Filename: "liar.png", Size: 10, Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(big)), nil
		}},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Uploaded)
	require.Len(t, resp.Errors, 3)
	assert.True(t, services.OnlyValidationErrors(resp))
	assert.Empty(t, store.Keys())

	folders, err := repo.ListFolders(ctx)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestUpload_ReusesFolder(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	svc := newUploadService(repo, store)
	ctx := context.Background()

	_, err := repo.CreateFolder(ctx, "Nature", "existing")
	require.NoError(t, err)

	resp, err := svc.Upload(ctx, "Nature", []services.UploadFile{file("a.png", testutil.PNG(2, 2))})
	require.NoError(t, err)
	require.Len(t, resp.Uploaded, 1)

	folder, err := repo.GetFolderByName(ctx, "Nature")
	require.NoError(t, err)
	assert.Equal(t, "existing", folder.Description.String)
	assert.Equal(t, folder.ID, *resp.Uploaded[0].FolderID)
}
