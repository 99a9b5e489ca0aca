package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/database"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
)

var _ services.Repository = (*database.Client)(nil)

func newRepo(t *testing.T) *database.Client {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	client := database.NewClient(db)
	t.Cleanup(func() { client.Close() })
	return client
}

// flakyRepo fails selected writes and delegates everything else.
type flakyRepo struct {
	services.Repository
	failInsert string
	failCreate bool
}

func (f *flakyRepo) InsertPhotoIfAbsent(ctx context.Context, photo *models.Photo) (bool, error) {
	if f.failInsert != "" && photo.StoragePath.String == f.failInsert {
		return false, errors.New("deadlock detected")
	}
	return f.Repository.InsertPhotoIfAbsent(ctx, photo)
}

func (f *flakyRepo) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	if f.failCreate {
		return errors.New("connection reset")
	}
	return f.Repository.CreatePhoto(ctx, photo)
}

type fakeGeocoder struct {
	places map[string]string
	err    error
	calls  int
}

func (f *fakeGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.places[fmt.Sprintf("%.2f,%.2f", lat, lon)], nil
}

type fakeLandmarks struct {
	name  string
	err   error
	calls int
}

func (f *fakeLandmarks) Detect(ctx context.Context, image []byte, mimeType string) (string, error) {
	f.calls++
	return f.name, f.err
}

// wordEmbedder maps text to a bag-of-keywords vector.
type wordEmbedder struct {
	vocab []string
	err   error
}

func (w *wordEmbedder) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([][]float64, len(inputs))
	for i, in := range inputs {
		vec := make([]float64, len(w.vocab))
		lower := strings.ToLower(in)
		for j, word := range w.vocab {
			if strings.Contains(lower, word) {
				vec[j] = 1
			}
		}
		out[i] = vec
	}
	return out, nil
}
