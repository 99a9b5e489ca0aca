package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"photo-portfolio-backend/internal/database"
	"photo-portfolio-backend/internal/handlers"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/tasks"
	"photo-portfolio-backend/internal/testutil"
)

type deps struct {
	queue     handlers.TaskQueue
	landmarks services.LandmarkDetector
	embedder  services.Embedder
	// maxUploadBody caps POST /api/upload bodies. Zero leaves them uncapped.
	maxUploadBody int64
}

type env struct {
	router *gin.Engine
	repo   *database.Client
	store  *testutil.MemStore
}

func newEnv(t *testing.T, d deps) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	repo := database.NewClient(db)
	t.Cleanup(func() { repo.Close() })
	store := testutil.NewMemStore()

	photoService := services.NewPhotoService(repo, store, "folders/")
	uploads := services.NewUploadService(repo, store, services.UploadOptions{
		Prefix:            "folders/",
		MaxSize:           1 << 20,
		AllowedExtensions: []string{"jpg", "jpeg", "png", "gif", "webp"},
	})
	reconcile := services.NewReconcileService(repo, store, "folders/")
	enrich := services.NewEnrichmentService(repo, store, nil, d.landmarks)
	search := services.NewSearchService(repo, d.embedder)

	health := handlers.NewHealthHandler(repo, store, map[string]bool{"semantic_search": search.Available()})
	folders := handlers.NewFoldersHandler(repo, photoService)
	photos := handlers.NewPhotosHandler(repo, photoService, search)
	upload := handlers.NewUploadHandler(uploads, d.maxUploadBody)
	maintenance := handlers.NewMaintenanceHandler(reconcile, enrich, d.queue, false)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/folders", folders.ListFolders)
	api.POST("/folders", folders.CreateFolder)
	api.GET("/folders/:name", folders.GetFolder)
	api.PUT("/folders/:name", folders.UpdateFolder)
	api.DELETE("/folder/:name", folders.DeleteFolder)
	api.GET("/folder/:name/:filename", folders.GetFolderPhoto)
	api.DELETE("/folder/:name/:filename", folders.DeleteFolderPhoto)
	api.GET("/photos", photos.ListPhotos)
	api.GET("/photos/search", photos.SearchPhotos)
	api.GET("/photos/semantic-search", photos.SemanticSearch)
	api.GET("/photos/:id", photos.GetPhoto)
	api.POST("/photos", photos.CreatePhoto)
	api.PUT("/photos/:id", photos.UpdatePhoto)
	api.DELETE("/photos/:id", photos.DeletePhoto)
	api.POST("/upload", upload.Upload)
	api.POST("/reindex-gcs", maintenance.Reindex)
	api.POST("/annotate-locations", maintenance.AnnotateLocations)
	api.GET("/tasks/:task_id", maintenance.TaskStatus)

	return &env{router: router, repo: repo, store: store}
}

func (e *env) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
	if payload == nil {
		return e.do(method, path, nil, "")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return e.do(method, path, bytes.NewReader(raw), "application/json")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// fakeQueue records enqueued tasks and serves their state from memory.
type fakeQueue struct {
	mu       sync.Mutex
	err      error
	reindex  []services.ReindexOptions
	annotate [][2]int
	states   map[string]*tasks.State
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{states: map[string]*tasks.State{}}
}

func (q *fakeQueue) add(taskType string) string {
	id := fmt.Sprintf("task-%d", len(q.states)+1)
	q.states[id] = &tasks.State{Type: taskType, Status: tasks.StatusPending}
	return id
}

func (q *fakeQueue) EnqueueReindex(ctx context.Context, opts services.ReindexOptions) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return "", q.err
	}
	q.reindex = append(q.reindex, opts)
	return q.add(tasks.TypeReindex), nil
}

func (q *fakeQueue) EnqueueAnnotate(ctx context.Context, batchSize, offset int) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return "", q.err
	}
	q.annotate = append(q.annotate, [2]int{batchSize, offset})
	return q.add(tasks.TypeAnnotateLocations), nil
}

func (q *fakeQueue) Status(ctx context.Context, taskID string) (*tasks.State, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	state, ok := q.states[taskID]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, models.ErrNotFound)
	}
	return state, nil
}

type fixedLandmark string

func (f fixedLandmark) Detect(ctx context.Context, image []byte, mimeType string) (string, error) {
	return string(f), nil
}

// keywordEmbedder scores one dimension per keyword present in the text.
type keywordEmbedder []string

func (k keywordEmbedder) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	out := make([][]float64, len(inputs))
	for i, in := range inputs {
		vec := make([]float64, len(k))
		for j, word := range k {
			if strings.Contains(strings.ToLower(in), word) {
				vec[j] = 1
			}
		}
		out[i] = vec
	}
	return out, nil
}
