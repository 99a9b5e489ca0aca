package tasks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/services"
)

type taskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer submits reindex and annotate runs to the worker queue and records
// them as PENDING so status lookups work before a worker picks them up.
type Enqueuer struct {
	client taskClient
	state  StateStore
	queue  string
}

func NewEnqueuer(client taskClient, state StateStore, queue string) *Enqueuer {
	return &Enqueuer{client: client, state: state, queue: queue}
}

func (e *Enqueuer) EnqueueReindex(ctx context.Context, opts services.ReindexOptions) (string, error) {
	taskID := uuid.NewString()
	task, err := newTask(TypeReindex, ReindexPayload{
		TaskID:         taskID,
		Prefix:         opts.Prefix,
		Limit:          opts.Limit,
		CleanupOrphans: opts.CleanupOrphans,
	})
	if err != nil {
		return "", err
	}
	return taskID, e.enqueue(ctx, taskID, task)
}

func (e *Enqueuer) EnqueueAnnotate(ctx context.Context, batchSize, offset int) (string, error) {
	taskID := uuid.NewString()
	task, err := newTask(TypeAnnotateLocations, AnnotatePayload{
		TaskID:    taskID,
		BatchSize: batchSize,
		Offset:    offset,
	})
	if err != nil {
		return "", err
	}
	return taskID, e.enqueue(ctx, taskID, task)
}

// Status returns the recorded state of a task.
func (e *Enqueuer) Status(ctx context.Context, taskID string) (*State, error) {
	return e.state.Get(ctx, taskID)
}

func (e *Enqueuer) enqueue(ctx context.Context, taskID string, task *asynq.Task) error {
	if err := e.state.Set(ctx, taskID, State{Type: task.Type(), Status: StatusPending}); err != nil {
		return err
	}

	_, err := e.client.EnqueueContext(ctx, task,
		asynq.TaskID(taskID),
		asynq.Queue(e.queue),
		asynq.MaxRetry(0),
		asynq.Timeout(taskTimeout),
	)
	if err != nil {
		setState(ctx, e.state, taskID, task.Type(), StatusFailure, map[string]any{"message": err.Error()})
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	klog.Infof("Enqueued %s task %s on queue %s", task.Type(), taskID, e.queue)
	return nil
}

func setState(ctx context.Context, store StateStore, taskID, taskType, status string, result interface{}) {
	if err := store.Set(ctx, taskID, State{Type: taskType, Status: status, Result: result}); err != nil {
		klog.Errorf("Failed to record %s for task %s: %v", status, taskID, err)
		return
	}
	switch status {
	case StatusFailure:
		klog.Errorf("Task %s (%s) failed: %v", taskID, taskType, result)
	case StatusProgress:
		klog.V(1).Infof("Task %s (%s) in progress", taskID, taskType)
	default:
		klog.Infof("Task %s (%s) is %s", taskID, taskType, status)
	}
}
