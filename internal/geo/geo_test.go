package geo_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/geo"
	"photo-portfolio-backend/internal/testutil"
)

func TestGeocoder_Reverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "48.858400", r.URL.Query().Get("lat"))
		assert.Equal(t, "2.294500", r.URL.Query().Get("lon"))
		assert.Equal(t, "portfolio-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"display_name":"Tour Eiffel, Paris","address":{"city":"Paris","state":"Ile-de-France","country":"France"}}`))
	}))
	defer server.Close()

	g := geo.NewGeocoder(server.URL+"/", "portfolio-test")
	place, err := g.Reverse(context.Background(), 48.8584, 2.2945)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", place)
}

func TestGeocoder_FallsBackToTown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"town":"Hallstatt","country":"Austria"}}`))
	}))
	defer server.Close()

	place, err := geo.NewGeocoder(server.URL, "").Reverse(context.Background(), 47.56, 13.64)
	require.NoError(t, err)
	assert.Equal(t, "Hallstatt, Austria", place)
}

func TestGeocoder_UnknownPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	place, err := geo.NewGeocoder(server.URL, "").Reverse(context.Background(), 0.1, 0.1)
	require.NoError(t, err)
	assert.Empty(t, place)
}

func TestGeocoder_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := geo.NewGeocoder(server.URL, "").Reverse(context.Background(), 1, 1)
	assert.ErrorContains(t, err, "status 429")
}

func TestExtractGPS_NoExif(t *testing.T) {
	_, _, err := geo.ExtractGPS(bytes.NewReader([]byte("\x89PNG\r\n\x1a\nnot really an image")))
	assert.ErrorIs(t, err, geo.ErrNoLocation)
}

func TestExtractGPS(t *testing.T) {
	lat, lon, err := geo.ExtractGPS(bytes.NewReader(testutil.GPSTIFF(48.8584, -2.2945)))
	require.NoError(t, err)
	assert.InDelta(t, 48.8584, lat, 1e-4)
	assert.InDelta(t, -2.2945, lon, 1e-4)
}

func TestExtractGPS_NoGPSTags(t *testing.T) {
	_, _, err := geo.ExtractGPS(bytes.NewReader(testutil.JPEG(4, 4)))
	assert.ErrorIs(t, err, geo.ErrNoLocation)
}
