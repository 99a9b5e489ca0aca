package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/objectstore"
)

type ReindexOptions struct {
	// Prefix defaults to the service prefix when empty.
	Prefix string
	// Limit caps the number of photo keys processed; 0 means no cap.
	Limit int
	// CleanupOrphans deletes rows under the prefix whose blob is missing
	// from the listing.
	CleanupOrphans bool
}

// ReconcileService brings the metadata store in line with the object store.
type ReconcileService struct {
	repo   Repository
	store  objectstore.Store
	prefix string
}

func NewReconcileService(repo Repository, store objectstore.Store, prefix string) *ReconcileService {
	if prefix == "" {
		prefix = objectstore.DefaultPrefix
	}
	return &ReconcileService{
		repo:   repo,
		store:  store,
		prefix: objectstore.NormalizePrefix(prefix),
	}
}

type photoKey struct {
	folder   string
	filename string
	object   objectstore.Object
}

// Reindex lists every blob under the prefix, creates missing folders and
// inserts a photo row for every blob that has none. Existing rows are never
// modified. A listing failure aborts the run before anything is written.
func (s *ReconcileService) Reindex(ctx context.Context, opts ReindexOptions) (*models.ReindexSummary, error) {
	prefix := s.prefix
	if opts.Prefix != "" {
		prefix = objectstore.NormalizePrefix(opts.Prefix)
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %w", models.ErrValidation)
	}

	objects, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list objects under %q: %v", models.ErrUpstream, prefix, err)
	}

	summary := &models.ReindexSummary{
		Prefix: prefix,
		Errors: []string{},
	}

	listed := make(map[string]struct{}, len(objects))
	var keys []photoKey
	for _, obj := range objects {
		listed[obj.Key] = struct{}{}
		folder, filename, ok := objectstore.SplitKey(prefix, obj.Key)
		if !ok {
			klog.V(1).Infof("Reindex: skipping key %s", obj.Key)
			continue
		}
		keys = append(keys, photoKey{folder: folder, filename: filename, object: obj})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].object.Key < keys[j].object.Key })

	if opts.Limit > 0 && len(keys) > opts.Limit {
		keys = keys[:opts.Limit]
		summary.Truncated = true
	}

	folderNames := make([]string, 0)
	seen := make(map[string]bool)
	for _, k := range keys {
		if !seen[k.folder] {
			seen[k.folder] = true
			folderNames = append(folderNames, k.folder)
		}
	}
	sort.Strings(folderNames)
	summary.FoldersFound = len(folderNames)

	folderIDs := make(map[string]int64, len(folderNames))
	for _, name := range folderNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		folder, created, err := s.repo.UpsertFolder(ctx, name)
		if err != nil {
			klog.Warningf("Reindex: failed to upsert folder %s: %v", name, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("folder %s: %v", name, err))
			continue
		}
		if created {
			summary.FoldersCreated++
			klog.Infof("Reindex: created folder %s", name)
		}
		folderIDs[name] = folder.ID
	}

	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary.PhotosScanned++

		folderID, ok := folderIDs[k.folder]
		if !ok {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: folder %s unavailable", k.object.Key, k.folder))
			continue
		}

		photo := s.photoFor(folderID, k)
		inserted, err := s.repo.InsertPhotoIfAbsent(ctx, photo)
		if err != nil {
			klog.Warningf("Reindex: failed to insert %s: %v", k.object.Key, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", k.object.Key, err))
			continue
		}
		if inserted {
			summary.PhotosAdded++
			klog.V(1).Infof("Reindex: added %s", k.object.Key)
		} else {
			summary.PhotosSkippedExisting++
		}
	}

	if opts.CleanupOrphans {
		removed, err := s.removeOrphans(ctx, prefix, listed)
		summary.PhotosRemoved = removed
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("orphan cleanup: %v", err))
		}
	}

	klog.Infof("Reindex %s: %d folders, %d scanned, %d added, %d existing, %d removed, %d errors",
		prefix, summary.FoldersFound, summary.PhotosScanned, summary.PhotosAdded,
		summary.PhotosSkippedExisting, summary.PhotosRemoved, len(summary.Errors))
	return summary, nil
}

func (s *ReconcileService) photoFor(folderID int64, k photoKey) *models.Photo {
	mimeType := objectstore.ContentTypeByExtension(k.filename)
	if mimeType == "application/octet-stream" && k.object.ContentType != "" {
		mimeType = k.object.ContentType
	}

	photo := &models.Photo{
		FolderID:    sql.NullInt64{Int64: folderID, Valid: true},
		Filename:    k.filename,
		URL:         s.store.PublicURL(k.object.Key),
		MimeType:    sql.NullString{String: mimeType, Valid: true},
		StoragePath: sql.NullString{String: k.object.Key, Valid: true},
		UploadedAt:  time.Now().UTC(),
	}
	if k.object.Size > 0 {
		photo.FileSize = sql.NullInt64{Int64: k.object.Size, Valid: true}
	}
	if !k.object.UpdatedAt.IsZero() {
		photo.UploadedAt = k.object.UpdatedAt.UTC()
	}
	return photo
}

// removeOrphans deletes rows under prefix whose storage path was not in the
// listing. It must only run after a complete listing.
func (s *ReconcileService) removeOrphans(ctx context.Context, prefix string, listed map[string]struct{}) (int, error) {
	paths, err := s.repo.ListStoragePaths(ctx, prefix)
	if err != nil {
		return 0, err
	}

	var ids []int64
	for path, id := range paths {
		if _, ok := listed[path]; ok {
			continue
		}
		klog.Warningf("Reindex: removing photo %d, blob %s no longer exists", id, path)
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	removed, err := s.repo.DeletePhotos(ctx, ids)
	return int(removed), err
}
