package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/tasks"
)

const defaultAnnotateBatch = 10

// TaskQueue hands long-running maintenance work to the background worker.
type TaskQueue interface {
	EnqueueReindex(ctx context.Context, opts services.ReindexOptions) (string, error)
	EnqueueAnnotate(ctx context.Context, batchSize, offset int) (string, error)
	Status(ctx context.Context, taskID string) (*tasks.State, error)
}

type MaintenanceHandler struct {
	reconcile      *services.ReconcileService
	enrich         *services.EnrichmentService
	queue          TaskQueue
	cleanupOrphans bool
}

// NewMaintenanceHandler wires reindex, annotate and task status routes. queue
// may be nil, in which case async=true is rejected with 503.
func NewMaintenanceHandler(reconcile *services.ReconcileService, enrich *services.EnrichmentService, queue TaskQueue, cleanupOrphans bool) *MaintenanceHandler {
	return &MaintenanceHandler{
		reconcile:      reconcile,
		enrich:         enrich,
		queue:          queue,
		cleanupOrphans: cleanupOrphans,
	}
}

// Reindex godoc
// @Summary     Reconcile the database with the object store
// @Description Lists every object under the prefix, creates missing folders and inserts a photo row for every object without one.
// @Description Existing rows are never modified. Rows whose object is gone are only removed when cleanup_orphans is true.
// @Description With async=true the run is queued and a task id is returned.
// @Tags        maintenance
// @Produce     json
// @Security    Bearer
// @Param       prefix          query string false "Key prefix (default folders/)"
// @Param       limit           query int    false "Maximum objects to process (0 means all)"
// @Param       cleanup_orphans query bool   false "Delete rows whose object no longer exists"
// @Param       async           query bool   false "Queue the run instead of waiting for it"
// @Success     200 {object} models.ReindexSummary
// @Success     202 {object} models.TaskResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /reindex-gcs [post]
func (h *MaintenanceHandler) Reindex(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	cleanup, ok := queryBool(c, "cleanup_orphans", h.cleanupOrphans)
	if !ok {
		return
	}
	async, ok := queryBool(c, "async", false)
	if !ok {
		return
	}
	opts := services.ReindexOptions{
		Prefix:         c.Query("prefix"),
		Limit:          limit,
		CleanupOrphans: cleanup,
	}

	if async {
		h.enqueue(c, tasks.TypeReindex, func(ctx context.Context) (string, error) {
			return h.queue.EnqueueReindex(ctx, opts)
		})
		return
	}

	summary, err := h.reconcile.Reindex(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err, "reindex failed")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AnnotateLocations godoc
// @Summary     Fill in missing location tags
// @Description Processes one batch of photos without a location tag: EXIF GPS with reverse geocoding first, then landmark detection.
// @Description Photos that cannot be located are skipped. Call again until remaining_untagged is 0.
// @Tags        maintenance
// @Produce     json
// @Security    Bearer
// @Param       batch_size query int  false "Photos per batch (1-100, default 10)"
// @Param       offset     query int  false "Untagged photos to skip"
// @Param       async      query bool false "Queue the batch instead of waiting for it"
// @Success     200 {object} models.AnnotateResult
// @Success     202 {object} models.TaskResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /annotate-locations [post]
func (h *MaintenanceHandler) AnnotateLocations(c *gin.Context) {
	batchSize, ok := queryInt(c, "batch_size", defaultAnnotateBatch)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}
	async, ok := queryBool(c, "async", false)
	if !ok {
		return
	}
	if batchSize < 1 || batchSize > services.MaxAnnotateBatch {
		badRequest(c, "invalid batch_size", fmt.Sprintf("batch_size must be between 1 and %d", services.MaxAnnotateBatch))
		return
	}
	if !h.enrich.Available() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "location enrichment not available",
			Message: "configure GEOCODER_URL or GCP_PROJECT_ID",
		})
		return
	}

	if async {
		h.enqueue(c, tasks.TypeAnnotateLocations, func(ctx context.Context) (string, error) {
			return h.queue.EnqueueAnnotate(ctx, batchSize, offset)
		})
		return
	}

	result, err := h.enrich.AnnotateLocations(c.Request.Context(), batchSize, offset)
	if err != nil {
		respondError(c, err, "annotate locations failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// TaskStatus godoc
// @Summary     Background task status
// @Tags        maintenance
// @Produce     json
// @Param       task_id path string true "Task ID"
// @Success     200 {object} models.TaskResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /tasks/{task_id} [get]
func (h *MaintenanceHandler) TaskStatus(c *gin.Context) {
	if h.queue == nil {
		queueUnavailable(c)
		return
	}
	taskID := c.Param("task_id")
	state, err := h.queue.Status(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "task not found")
		return
	}
	c.JSON(http.StatusOK, models.TaskResponse{
		TaskID:    taskID,
		Type:      state.Type,
		Status:    state.Status,
		Result:    state.Result,
		UpdatedAt: state.UpdatedAt,
	})
}

func (h *MaintenanceHandler) enqueue(c *gin.Context, taskType string, submit func(ctx context.Context) (string, error)) {
	if h.queue == nil {
		queueUnavailable(c)
		return
	}
	taskID, err := submit(c.Request.Context())
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", models.ErrUnavailable, err), "failed to queue task")
		return
	}
	c.JSON(http.StatusAccepted, models.TaskResponse{
		TaskID: taskID,
		Type:   taskType,
		Status: tasks.StatusPending,
	})
}

func queueUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "background tasks not available",
		Message: "configure REDIS_ADDR and run the worker",
	})
}
