package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/testutil"
)

func addStoredPhoto(t *testing.T, repo services.Repository, store *testutil.MemStore, key string, data []byte) *models.Photo {
	t.Helper()
	store.Put(key, data)
	photo := &models.Photo{
		Filename:    key,
		URL:         store.PublicURL(key),
		MimeType:    sql.NullString{String: "image/jpeg", Valid: true},
		StoragePath: sql.NullString{String: key, Valid: true},
	}
	require.NoError(t, repo.CreatePhoto(context.Background(), photo))
	return photo
}

func TestAnnotateLocations_GPSThenLandmark(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	ctx := context.Background()

	paris := addStoredPhoto(t, repo, store, "folders/City/paris.tif", testutil.GPSTIFF(48.8584, 2.2945))
	rome := addStoredPhoto(t, repo, store, "folders/City/rome.jpg", testutil.JPEG(4, 4))

	geocoder := &fakeGeocoder{places: map[string]string{"48.86,2.29": "Paris, France"}}
	landmarks := &fakeLandmarks{name: "Colosseum, Rome, Italy"}
	svc := services.NewEnrichmentService(repo, store, geocoder, landmarks)
	assert.True(t, svc.Available())

	result, err := svc.AnnotateLocations(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.UpdatedThisBatch)
	assert.Equal(t, int64(2), result.TotalUntagged)
	assert.Equal(t, int64(0), result.RemainingUntagged)

	got, err := repo.GetPhoto(ctx, paris.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", got.LocationTag.String)

	got, err = repo.GetPhoto(ctx, rome.ID)
	require.NoError(t, err)
	assert.Equal(t, "Colosseum, Rome, Italy", got.LocationTag.String)

	assert.Equal(t, 1, geocoder.calls)
	assert.Equal(t, 1, landmarks.calls)
}

func TestAnnotateLocations_FailuresAreSkipped(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	ctx := context.Background()

	addStoredPhoto(t, repo, store, "folders/City/a.tif", testutil.GPSTIFF(10, 10))
	missing := &models.Photo{
		Filename:    "missing.jpg",
		URL:         "u",
		StoragePath: sql.NullString{String: "folders/City/missing.jpg", Valid: true},
	}
	require.NoError(t, repo.CreatePhoto(ctx, missing))

	svc := services.NewEnrichmentService(repo, store,
		&fakeGeocoder{err: errors.New("rate limited")},
		&fakeLandmarks{err: errors.New("quota exceeded")})

	result, err := svc.AnnotateLocations(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.UpdatedThisBatch)
	assert.Equal(t, int64(2), result.RemainingUntagged)
}

func TestAnnotateLocations_Batches(t *testing.T) {
	repo := newRepo(t)
	store := testutil.NewMemStore()
	ctx := context.Background()

	for _, key := range []string{"folders/A/1.jpg", "folders/A/2.jpg", "folders/A/3.jpg"} {
		addStoredPhoto(t, repo, store, key, testutil.JPEG(2, 2))
	}
	svc := services.NewEnrichmentService(repo, store, nil, &fakeLandmarks{name: "Somewhere"})

	result, err := svc.AnnotateLocations(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UpdatedThisBatch)
	assert.Equal(t, int64(3), result.TotalUntagged)
	assert.Equal(t, int64(1), result.RemainingUntagged)

	result, err = svc.AnnotateLocations(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedThisBatch)
	assert.Equal(t, int64(0), result.RemainingUntagged)
}

func TestAnnotateLocations_Validation(t *testing.T) {
	svc := services.NewEnrichmentService(newRepo(t), testutil.NewMemStore(), nil, nil)
	assert.False(t, svc.Available())

	_, err := svc.AnnotateLocations(context.Background(), 0, 0)
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = svc.AnnotateLocations(context.Background(), services.MaxAnnotateBatch+1, 0)
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = svc.AnnotateLocations(context.Background(), 5, -1)
	assert.ErrorIs(t, err, models.ErrValidation)
}
