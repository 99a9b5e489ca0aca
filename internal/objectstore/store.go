package objectstore

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrNotFound = errors.New("object not found")

// Object describes one blob returned by a listing.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	UpdatedAt   time.Time
}

// Store is a flat key/blob store. Keys use "/" as the only separator.
type Store interface {
	// Upload writes r under key. size may be -1 when unknown.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// List returns every object whose key starts with prefix, at any depth.
	// Directory placeholders are not returned.
	List(ctx context.Context, prefix string) ([]Object, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	Ping(ctx context.Context) error
}
