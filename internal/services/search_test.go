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
)

func TestSemantic_RanksByDescriptor(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	nature, _, err := repo.UpsertFolder(ctx, "Nature")
	require.NoError(t, err)
	city, _, err := repo.UpsertFolder(ctx, "City")
	require.NoError(t, err)

	photos := []*models.Photo{
		{FolderID: sql.NullInt64{Int64: nature.ID, Valid: true}, Filename: "mountain_lake.jpg", URL: "u1"},
		{FolderID: sql.NullInt64{Int64: city.ID, Valid: true}, Filename: "night-street.jpg", URL: "u2"},
		{FolderID: sql.NullInt64{Int64: city.ID, Valid: true}, Filename: "tower.jpg", URL: "u3",
			LocationTag: sql.NullString{String: "Paris, France", Valid: true}},
	}
	for _, p := range photos {
		require.NoError(t, repo.CreatePhoto(ctx, p))
	}

	svc := services.NewSearchService(repo, &wordEmbedder{vocab: []string{"lake", "mountain", "street", "city", "paris", "nature"}})
	results, err := svc.Semantic(ctx, "mountain lake in nature", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "mountain_lake.jpg", results[0].Photo.Filename)
	assert.Greater(t, results[0].Score, results[1].Score)

	results, err = svc.Semantic(ctx, "paris", 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "tower.jpg", results[0].Photo.Filename)
}

func TestSemantic_Errors(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := services.NewSearchService(repo, nil).Semantic(ctx, "beach", 5)
	assert.ErrorIs(t, err, models.ErrUnavailable)

	_, err = services.NewSearchService(repo, &wordEmbedder{}).Semantic(ctx, "  ", 5)
	assert.ErrorIs(t, err, models.ErrValidation)

	require.NoError(t, repo.CreatePhoto(ctx, &models.Photo{Filename: "a.jpg", URL: "u"}))
	_, err = services.NewSearchService(repo, &wordEmbedder{err: errors.New("model offline")}).Semantic(ctx, "beach", 5)
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestDescriptor(t *testing.T) {
	p := models.Photo{
		Filename:    "golden_gate-bridge.jpg",
		LocationTag: sql.NullString{String: "San Francisco, United States", Valid: true},
	}
	assert.Equal(t, "golden gate bridge, Travel, San Francisco, United States", services.Descriptor(p, "Travel"))
	assert.Equal(t, "golden gate bridge, San Francisco, United States", services.Descriptor(p, ""))
}
