package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeReindex           = "portfolio:reindex"
	TypeAnnotateLocations = "portfolio:annotate_locations"
)

const (
	StatusPending  = "PENDING"
	StatusProgress = "PROGRESS"
	StatusSuccess  = "SUCCESS"
	StatusFailure  = "FAILURE"
)

const taskTimeout = 30 * time.Minute

type ReindexPayload struct {
	TaskID         string `json:"task_id"`
	Prefix         string `json:"prefix"`
	Limit          int    `json:"limit"`
	CleanupOrphans bool   `json:"cleanup_orphans"`
}

type AnnotatePayload struct {
	TaskID    string `json:"task_id"`
	BatchSize int    `json:"batch_size"`
	Offset    int    `json:"offset"`
}

func newTask(taskType string, payload any) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, b), nil
}
