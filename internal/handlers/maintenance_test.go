package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/tasks"
	"photo-portfolio-backend/internal/testutil"
)

func TestReindex(t *testing.T) {
	e := newEnv(t, deps{})
	e.store.Put("folders/Nature/lake.jpg", []byte("x"))
	e.store.Put("folders/City/street.png", []byte("x"))

	w := e.doJSON(http.MethodPost, "/api/reindex-gcs", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[models.ReindexSummary](t, w)
	assert.Equal(t, 2, summary.FoldersCreated)
	assert.Equal(t, 2, summary.PhotosAdded)

	w = e.doJSON(http.MethodPost, "/api/reindex-gcs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary = decode[models.ReindexSummary](t, w)
	assert.Equal(t, 0, summary.PhotosAdded)
	assert.Equal(t, 2, summary.PhotosSkippedExisting)
}

func TestReindex_CleanupOrphans(t *testing.T) {
	e := newEnv(t, deps{})
	seedPhoto(t, e, "Nature", "gone.jpg", "image/jpeg", time.Now())

	summary := decode[models.ReindexSummary](t, e.doJSON(http.MethodPost, "/api/reindex-gcs", nil))
	assert.Equal(t, 0, summary.PhotosRemoved)

	summary = decode[models.ReindexSummary](t, e.doJSON(http.MethodPost, "/api/reindex-gcs?cleanup_orphans=true", nil))
	assert.Equal(t, 1, summary.PhotosRemoved)
}

func TestReindex_BadParams(t *testing.T) {
	e := newEnv(t, deps{})
	assert.Equal(t, http.StatusBadRequest, e.doJSON(http.MethodPost, "/api/reindex-gcs?limit=-5", nil).Code)
	assert.Equal(t, http.StatusBadRequest, e.doJSON(http.MethodPost, "/api/reindex-gcs?cleanup_orphans=maybe", nil).Code)
}

func TestReindex_StoreDown(t *testing.T) {
	e := newEnv(t, deps{})
	e.store.ListErr = errors.New("connection refused")
	w := e.doJSON(http.MethodPost, "/api/reindex-gcs", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code, w.Body.String())
}

func TestReindex_Async(t *testing.T) {
	queue := newFakeQueue()
	e := newEnv(t, deps{queue: queue})

	w := e.doJSON(http.MethodPost, "/api/reindex-gcs?async=true&limit=50&prefix=folders/Nature/", nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	task := decode[models.TaskResponse](t, w)
	assert.Equal(t, tasks.StatusPending, task.Status)
	assert.Equal(t, tasks.TypeReindex, task.Type)
	require.Len(t, queue.reindex, 1)
	assert.Equal(t, 50, queue.reindex[0].Limit)
	assert.Equal(t, "folders/Nature/", queue.reindex[0].Prefix)

	queue.states[task.TaskID].Status = tasks.StatusSuccess
	queue.states[task.TaskID].Result = map[string]interface{}{"photos_added": 3}

	w = e.doJSON(http.MethodGet, "/api/tasks/"+task.TaskID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[models.TaskResponse](t, w)
	assert.Equal(t, tasks.StatusSuccess, status.Status)
	assert.Equal(t, map[string]interface{}{"photos_added": float64(3)}, status.Result)

	assert.Equal(t, http.StatusNotFound, e.doJSON(http.MethodGet, "/api/tasks/nope", nil).Code)
}

func TestReindex_AsyncQueueFailure(t *testing.T) {
	queue := newFakeQueue()
	queue.err = errors.New("redis: connection refused")
	e := newEnv(t, deps{queue: queue})

	w := e.doJSON(http.MethodPost, "/api/reindex-gcs?async=true", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAsyncWithoutQueue(t *testing.T) {
	e := newEnv(t, deps{landmarks: fixedLandmark("Eiffel Tower, Paris, France")})

	assert.Equal(t, http.StatusServiceUnavailable, e.doJSON(http.MethodPost, "/api/reindex-gcs?async=true", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, e.doJSON(http.MethodPost, "/api/annotate-locations?async=true", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, e.doJSON(http.MethodGet, "/api/tasks/abc", nil).Code)
}

func TestAnnotateLocations(t *testing.T) {
	e := newEnv(t, deps{landmarks: fixedLandmark("Eiffel Tower, Paris, France")})
	w := upload(t, e, "City", part{"images[]", "tower.jpg", testutil.JPEG(4, 4)})
	require.Equal(t, http.StatusCreated, w.Code)
	photo := decode[models.UploadResponse](t, w).Uploaded[0]

	w = e.doJSON(http.MethodPost, "/api/annotate-locations?batch_size=5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[models.AnnotateResult](t, w)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.UpdatedThisBatch)
	assert.Equal(t, int64(0), result.RemainingUntagged)

	got := decode[models.PhotoResponse](t, e.doJSON(http.MethodGet, "/api/photos/"+itoa(photo.ID), nil))
	assert.Equal(t, "Eiffel Tower, Paris, France", got.LocationTag)
}

func TestAnnotateLocations_Rejected(t *testing.T) {
	e := newEnv(t, deps{})
	w := e.doJSON(http.MethodPost, "/api/annotate-locations", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "location enrichment not available")

	e = newEnv(t, deps{landmarks: fixedLandmark("x")})
	for _, query := range []string{"batch_size=0", "batch_size=101", "batch_size=ten", "offset=-1"} {
		w := e.doJSON(http.MethodPost, "/api/annotate-locations?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestAnnotateLocations_Async(t *testing.T) {
	queue := newFakeQueue()
	e := newEnv(t, deps{queue: queue, landmarks: fixedLandmark("x")})

	w := e.doJSON(http.MethodPost, "/api/annotate-locations?async=true&batch_size=20&offset=40", nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	assert.Equal(t, tasks.TypeAnnotateLocations, decode[models.TaskResponse](t, w).Type)
	assert.Equal(t, [][2]int{{20, 40}}, queue.annotate)
}
