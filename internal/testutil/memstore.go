package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"photo-portfolio-backend/internal/objectstore"
)

// ListedAt is the UpdatedAt reported for every object listed by MemStore.
var ListedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// MemStore is an in-memory objectstore.Store. The exported error fields make
// the matching operation fail.
type MemStore struct {
	ListErr   error
	DeleteErr error
	// FailKeys makes uploads fail for keys containing it.
	FailKeys string

	mu      sync.Mutex
	objects map[string][]byte
}

var _ objectstore.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{objects: map[string][]byte{}}
}

func (m *MemStore) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
}

func (m *MemStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *MemStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.objects))
	for k := range m.objects {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (m *MemStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if m.FailKeys != "" && strings.Contains(key, m.FailKeys) {
		return errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.Put(key, data)
	return nil
}

func (m *MemStore) List(ctx context.Context, prefix string) ([]objectstore.Object, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []objectstore.Object
	for key, data := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, objectstore.Object{
				Key:       key,
				Size:      int64(len(data)),
				UpdatedAt: ListedAt,
			})
		}
	}
	return out, nil
}

func (m *MemStore) Download(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, objectstore.ErrNotFound
	}
	return bytes.Clone(data), nil
}

func (m *MemStore) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return fmt.Errorf("delete %s: %w", key, objectstore.ErrNotFound)
	}
	delete(m.objects, key)
	return nil
}

func (m *MemStore) PublicURL(key string) string {
	return "https://cdn.example.com/photos/" + key
}

func (m *MemStore) Ping(ctx context.Context) error { return nil }
