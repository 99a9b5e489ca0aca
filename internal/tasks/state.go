package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"photo-portfolio-backend/internal/models"
)

const (
	stateKeyPrefix = "portfolio:task:"
	stateTTL       = 7 * 24 * time.Hour
)

// State is the last recorded status of a background task.
type State struct {
	Type      string      `json:"type"`
	Status    string      `json:"status"`
	Result    interface{} `json:"result,omitempty"`
	UpdatedAt string      `json:"updated_at"`
}

type StateStore interface {
	Set(ctx context.Context, taskID string, state State) error
	Get(ctx context.Context, taskID string) (*State, error)
}

// RedisStateStore keeps task states as JSON strings that expire after a week.
type RedisStateStore struct {
	rdb *redis.Client
}

func NewRedisStateStore(rdb *redis.Client) *RedisStateStore {
	return &RedisStateStore{rdb: rdb}
}

func (s *RedisStateStore) Set(ctx context.Context, taskID string, state State) error {
	if state.UpdatedAt == "" {
		state.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode task state: %w", err)
	}
	if err := s.rdb.Set(ctx, stateKeyPrefix+taskID, b, stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to persist task state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Get(ctx context.Context, taskID string) (*State, error) {
	raw, err := s.rdb.Get(ctx, stateKeyPrefix+taskID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("task %s: %w", taskID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task state: %w", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode task state: %w", err)
	}
	return &state, nil
}

func (s *RedisStateStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
