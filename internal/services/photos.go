package services

import (
	"context"
	"errors"
	"fmt"

	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/objectstore"
)

// PhotoService removes photos from both stores.
type PhotoService struct {
	repo   Repository
	store  objectstore.Store
	prefix string
}

func NewPhotoService(repo Repository, store objectstore.Store, prefix string) *PhotoService {
	if prefix == "" {
		prefix = objectstore.DefaultPrefix
	}
	return &PhotoService{repo: repo, store: store, prefix: objectstore.NormalizePrefix(prefix)}
}

// DeletePhoto deletes the blob and then the row. When the blob delete fails
// the row is kept so the photo can be retried. A blob that is already gone
// does not block the row delete.
func (s *PhotoService) DeletePhoto(ctx context.Context, id int64) error {
	photo, err := s.repo.GetPhoto(ctx, id)
	if err != nil {
		return err
	}
	return s.delete(ctx, photo)
}

// Open returns the bytes stored for filename in the named folder and the
// content type to serve them with. The row's storage path wins; a blob
// without a row is served from its conventional key.
func (s *PhotoService) Open(ctx context.Context, folderName, filename string) ([]byte, string, error) {
	key := s.prefix + folderName + "/" + filename
	contentType := ""
	folder, err := s.repo.GetFolderByName(ctx, folderName)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}
	if folder != nil {
		photo, err := s.repo.GetPhotoByFolderAndFilename(ctx, folder.ID, filename)
		switch {
		case err == nil:
			if photo.StoragePath.Valid && photo.StoragePath.String != "" {
				key = photo.StoragePath.String
			}
			contentType = photo.MimeType.String
		case !errors.Is(err, models.ErrNotFound):
			return nil, "", err
		}
	}

	data, err := s.store.Download(ctx, key)
	if err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return nil, "", fmt.Errorf("photo %s/%s: %w", folderName, filename, models.ErrNotFound)
		}
		return nil, "", fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	if contentType == "" {
		contentType = objectstore.ContentTypeByExtension(filename)
	}
	return data, contentType, nil
}

// DeleteFromFolder deletes the photo stored as filename in the named folder.
// A blob without a row is still deleted.
func (s *PhotoService) DeleteFromFolder(ctx context.Context, folderName, filename string) error {
	folder, err := s.repo.GetFolderByName(ctx, folderName)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if folder != nil {
		photo, err := s.repo.GetPhotoByFolderAndFilename(ctx, folder.ID, filename)
		if err == nil {
			return s.delete(ctx, photo)
		}
		if !errors.Is(err, models.ErrNotFound) {
			return err
		}
	}

	key := s.prefix + folderName + "/" + filename
	if err := s.store.Delete(ctx, key); err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return fmt.Errorf("photo %s/%s: %w", folderName, filename, models.ErrNotFound)
		}
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	klog.Infof("Deleted untracked blob %s", key)
	return nil
}

func (s *PhotoService) delete(ctx context.Context, photo *models.Photo) error {
	if photo.StoragePath.Valid && photo.StoragePath.String != "" {
		err := s.store.Delete(ctx, photo.StoragePath.String)
		switch {
		case err == nil:
		case errors.Is(err, objectstore.ErrNotFound):
			klog.Warningf("Blob %s for photo %d was already gone", photo.StoragePath.String, photo.ID)
		default:
			return fmt.Errorf("%w: %v", models.ErrUpstream, err)
		}
	}
	if err := s.repo.DeletePhoto(ctx, photo.ID); err != nil {
		return err
	}
	klog.Infof("Deleted photo %d (%s)", photo.ID, photo.StoragePath.String)
	return nil
}
