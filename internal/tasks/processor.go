package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/services"
)

type Reindexer interface {
	Reindex(ctx context.Context, opts services.ReindexOptions) (*models.ReindexSummary, error)
}

type Annotator interface {
	AnnotateLocations(ctx context.Context, batchSize, offset int) (*models.AnnotateResult, error)
}

// Processor runs queued tasks inside the worker.
type Processor struct {
	reindexer Reindexer
	annotator Annotator
	state     StateStore
}

func NewProcessor(reindexer Reindexer, annotator Annotator, state StateStore) *Processor {
	return &Processor{reindexer: reindexer, annotator: annotator, state: state}
}

func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeReindex, p.ProcessReindex)
	mux.HandleFunc(TypeAnnotateLocations, p.ProcessAnnotate)
}

func (p *Processor) ProcessReindex(ctx context.Context, t *asynq.Task) error {
	var payload ReindexPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid reindex payload: %v: %w", err, asynq.SkipRetry)
	}

	setState(ctx, p.state, payload.TaskID, TypeReindex, StatusProgress, map[string]any{
		"message": "Listing objects under " + payload.Prefix,
	})

	summary, err := p.reindexer.Reindex(ctx, services.ReindexOptions{
		Prefix:         payload.Prefix,
		Limit:          payload.Limit,
		CleanupOrphans: payload.CleanupOrphans,
	})
	if err != nil {
		return p.fail(ctx, payload.TaskID, TypeReindex, err)
	}

	setState(ctx, p.state, payload.TaskID, TypeReindex, StatusSuccess, summary)
	return nil
}

func (p *Processor) ProcessAnnotate(ctx context.Context, t *asynq.Task) error {
	var payload AnnotatePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid annotate payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.annotator == nil {
		return p.fail(ctx, payload.TaskID, TypeAnnotateLocations, fmt.Errorf("location enrichment is not configured: %w", models.ErrUnavailable))
	}

	setState(ctx, p.state, payload.TaskID, TypeAnnotateLocations, StatusProgress, map[string]any{
		"message": fmt.Sprintf("Annotating up to %d photos from offset %d", payload.BatchSize, payload.Offset),
	})

	result, err := p.annotator.AnnotateLocations(ctx, payload.BatchSize, payload.Offset)
	if err != nil {
		return p.fail(ctx, payload.TaskID, TypeAnnotateLocations, err)
	}

	setState(ctx, p.state, payload.TaskID, TypeAnnotateLocations, StatusSuccess, result)
	return nil
}

// fail records the failure; bad input and missing clients are not retried.
func (p *Processor) fail(ctx context.Context, taskID, taskType string, err error) error {
	setState(ctx, p.state, taskID, taskType, StatusFailure, map[string]any{"message": err.Error()})
	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrUnavailable) {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return err
}
