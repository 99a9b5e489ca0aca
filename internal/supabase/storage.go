package supabase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	storage "github.com/supabase-community/storage-go"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/objectstore"
)

const listPageSize = 100

// StorageClient implements objectstore.Store on a Supabase storage bucket.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

var _ objectstore.Store = (*StorageClient)(nil)

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) *StorageClient {
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)
	return newStorageClient(client, baseURL, bucket)
}

func newStorageClient(client *storage.Client, baseURL, bucket string) *StorageClient {
	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *StorageClient) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	upsert := false
	_, err := s.client.UploadFile(s.bucket, key, r, storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// List walks the bucket below prefix. Supabase lists one directory level per
// call and returns sub-directories as entries without an id, so each one is
// descended into. prefix is treated as a directory.
func (s *StorageClient) List(ctx context.Context, prefix string) ([]objectstore.Object, error) {
	var objects []objectstore.Object
	pending := []string{strings.TrimRight(prefix, "/")}

	for len(pending) > 0 {
		dir := pending[0]
		pending = pending[1:]

		for offset := 0; ; offset += listPageSize {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			entries, err := s.client.ListFiles(s.bucket, dir, storage.FileSearchOptions{
				Limit:  listPageSize,
				Offset: offset,
				SortByOptions: storage.SortBy{
					Column: "name",
					Order:  "asc",
				},
			})
			if err != nil {
				return nil, fmt.Errorf("failed to list %q: %w", dir, err)
			}

			for _, entry := range entries {
				if entry.Name == "" {
					continue
				}
				key := entry.Name
				if dir != "" {
					key = dir + "/" + entry.Name
				}
				if entry.Id == "" {
					pending = append(pending, key)
					continue
				}
				objects = append(objects, toObject(key, entry))
			}

			if len(entries) < listPageSize {
				break
			}
		}
	}

	klog.V(1).Infof("Listed %d objects under %q in bucket %s", len(objects), prefix, s.bucket)
	return objects, nil
}

func (s *StorageClient) Download(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.client.DownloadFile(s.bucket, key)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("download %s: %w", key, objectstore.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	return data, nil
}

func (s *StorageClient) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	removed, err := s.client.RemoveFile(s.bucket, []string{key})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("delete %s: %w", key, objectstore.ErrNotFound)
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	// Removing a missing key succeeds with an empty result.
	if len(removed) == 0 {
		return fmt.Errorf("delete %s: %w", key, objectstore.ErrNotFound)
	}
	return nil
}

func (s *StorageClient) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, objectstore.EscapeKey(key))
}

func (s *StorageClient) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.client.GetBucket(s.bucket); err != nil {
		return fmt.Errorf("supabase storage unreachable: %w", err)
	}
	return nil
}

func toObject(key string, entry storage.FileObject) objectstore.Object {
	obj := objectstore.Object{Key: key}

	if meta, ok := entry.Metadata.(map[string]interface{}); ok {
		if ct, ok := meta["mimetype"].(string); ok {
			obj.ContentType = ct
		}
		if size, ok := meta["size"].(float64); ok {
			obj.Size = int64(size)
		}
	}
	if obj.ContentType == "" {
		obj.ContentType = objectstore.ContentTypeByExtension(key)
	}

	for _, ts := range []string{entry.UpdatedAt, entry.CreatedAt} {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			obj.UpdatedAt = t.UTC()
			break
		}
	}
	return obj
}

func isNotFound(err error) bool {
	var storageErr *storage.StorageError
	if errors.As(err, &storageErr) {
		if storageErr.Status == 404 {
			return true
		}
		return strings.Contains(strings.ToLower(storageErr.Message), "not found")
	}
	return false
}
