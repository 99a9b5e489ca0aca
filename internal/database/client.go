package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"photo-portfolio-backend/internal/models"
)

// Client is the metadata store. Every method runs on a pooled connection
// scoped to the call; multi-statement operations use a transaction.
type Client struct {
	db *gorm.DB
}

func NewClient(db *gorm.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *Client) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

func (c *Client) GetFolder(ctx context.Context, id int64) (*models.Folder, error) {
	var folder models.Folder
	if err := c.db.WithContext(ctx).First(&folder, id).Error; err != nil {
		return nil, wrapNotFound(err, "folder %d", id)
	}
	return &folder, nil
}

func (c *Client) GetFolderByName(ctx context.Context, name string) (*models.Folder, error) {
	var folder models.Folder
	err := c.db.WithContext(ctx).Where("name = ?", name).First(&folder).Error
	if err != nil {
		return nil, wrapNotFound(err, "folder %q", name)
	}
	return &folder, nil
}

func (c *Client) CreateFolder(ctx context.Context, name, description string) (*models.Folder, error) {
	folder := models.Folder{
		Name:        name,
		Description: nullString(description),
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Folder{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("folder %q: %w", name, models.ErrConflict)
		}
		return tx.Create(&folder).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("folder %q: %w", name, models.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return &folder, nil
}

func (c *Client) UpdateFolder(ctx context.Context, name string, req models.UpdateFolderRequest) (*models.Folder, error) {
	var folder models.Folder
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).First(&folder).Error; err != nil {
			return wrapNotFound(err, "folder %q", name)
		}

		if req.Name != nil && *req.Name != folder.Name {
			var count int64
			if err := tx.Model(&models.Folder{}).Where("name = ?", *req.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("folder %q: %w", *req.Name, models.ErrConflict)
			}
			folder.Name = *req.Name
		}
		if req.Description != nil {
			folder.Description = nullString(*req.Description)
		}
		return tx.Save(&folder).Error
	})
	if err != nil {
		if !errors.Is(err, models.ErrConflict) && req.Name != nil && isUniqueViolation(err) {
			return nil, fmt.Errorf("folder %q: %w", *req.Name, models.ErrConflict)
		}
		return nil, err
	}
	return &folder, nil
}

// UpsertFolder returns the folder with the given name, inserting it when
// absent. Existing rows are never modified. The bool reports an insert.
func (c *Client) UpsertFolder(ctx context.Context, name string) (*models.Folder, bool, error) {
	var (
		folder  models.Folder
		created bool
	)
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", name).First(&folder).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		folder = models.Folder{Name: name}
		if err := tx.Create(&folder).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil && isUniqueViolation(err) {
		// Lost an insert race to another request; the row exists now.
		existing, getErr := c.GetFolderByName(ctx, name)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert folder %q: %w", name, err)
	}
	return &folder, created, nil
}

// DeleteFolder removes the folder row and detaches its photos. Photos and
// their blobs are kept.
func (c *Client) DeleteFolder(ctx context.Context, name string) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var folder models.Folder
		if err := tx.Where("name = ?", name).First(&folder).Error; err != nil {
			return wrapNotFound(err, "folder %q", name)
		}
		if err := tx.Model(&models.Photo{}).
			Where("folder_id = ?", folder.ID).
			Updates(map[string]interface{}{"folder_id": nil, "updated_at": time.Now().UTC()}).Error; err != nil {
			return fmt.Errorf("failed to detach photos: %w", err)
		}
		if err := tx.Delete(&models.Folder{}, folder.ID).Error; err != nil {
			return fmt.Errorf("failed to delete folder: %w", err)
		}
		return nil
	})
}

func (c *Client) ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error) {
	query := c.db.WithContext(ctx).Model(&models.Photo{})

	if filter.FolderID != nil {
		query = query.Where("folder_id = ?", *filter.FolderID)
	}
	if filter.FolderName != "" {
		query = query.Where("folder_id IN (?)",
			c.db.Model(&models.Folder{}).Select("id").Where("name = ?", filter.FolderName))
	}
	if filter.Name != "" {
		query = query.Where("LOWER(filename) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(filter.Name))+"%")
	}
	if filter.MimeType != "" {
		query = query.Where("LOWER(mimetype) = ?", strings.ToLower(filter.MimeType))
	}
	if filter.DateFrom != nil {
		query = query.Where("uploaded_at >= ?", filter.DateFrom.UTC())
	}
	if filter.DateTo != nil {
		query = query.Where("uploaded_at <= ?", filter.DateTo.UTC())
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var photos []models.Photo
	if err := query.Order("uploaded_at DESC, id DESC").Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// ListPhotosInFolders returns the photos of the given folders keyed by folder id.
func (c *Client) ListPhotosInFolders(ctx context.Context, folderIDs []int64) (map[int64][]models.Photo, error) {
	out := make(map[int64][]models.Photo, len(folderIDs))
	if len(folderIDs) == 0 {
		return out, nil
	}
	var photos []models.Photo
	err := c.db.WithContext(ctx).
		Where("folder_id IN ?", folderIDs).
		Order("uploaded_at DESC, id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list folder photos: %w", err)
	}
	for _, p := range photos {
		out[p.FolderID.Int64] = append(out[p.FolderID.Int64], p)
	}
	return out, nil
}

func (c *Client) GetPhoto(ctx context.Context, id int64) (*models.Photo, error) {
	var photo models.Photo
	if err := c.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, wrapNotFound(err, "photo %d", id)
	}
	return &photo, nil
}

func (c *Client) GetPhotoByFolderAndFilename(ctx context.Context, folderID int64, filename string) (*models.Photo, error) {
	var photo models.Photo
	err := c.db.WithContext(ctx).
		Where("folder_id = ? AND filename = ?", folderID, filename).
		Order("id ASC").
		First(&photo).Error
	if err != nil {
		return nil, wrapNotFound(err, "photo %q", filename)
	}
	return &photo, nil
}

func (c *Client) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now().UTC()
	}
	if err := c.db.WithContext(ctx).Create(photo).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("photo %q: %w", photo.StoragePath.String, models.ErrConflict)
		}
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// unkeyed matches photo rows created without a storage path.
const unkeyed = "(storage_path IS NULL OR storage_path = '')"

// InsertPhotoIfAbsent inserts photo unless a row with the same storage path
// already exists, or a row without a storage path has the same folder and
// filename. Rows stored under another key never block the insert. It reports
// whether a row was inserted. The lookup and insert share one transaction.
func (c *Client) InsertPhotoIfAbsent(ctx context.Context, photo *models.Photo) (bool, error) {
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now().UTC()
	}
	inserted := false
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Photo{})
		switch {
		case photo.StoragePath.Valid && photo.FolderID.Valid:
			query = query.Where("storage_path = ? OR (folder_id = ? AND filename = ? AND "+unkeyed+")",
				photo.StoragePath.String, photo.FolderID.Int64, photo.Filename)
		case photo.StoragePath.Valid:
			query = query.Where("storage_path = ?", photo.StoragePath.String)
		case photo.FolderID.Valid:
			query = query.Where("folder_id = ? AND filename = ? AND "+unkeyed, photo.FolderID.Int64, photo.Filename)
		default:
			return fmt.Errorf("photo %q has neither storage path nor folder: %w", photo.Filename, models.ErrValidation)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(photo).Error; err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert photo %q: %w", photo.Filename, err)
	}
	return inserted, nil
}

func (c *Client) UpdatePhoto(ctx context.Context, photo *models.Photo) error {
	if err := c.db.WithContext(ctx).Save(photo).Error; err != nil {
		return fmt.Errorf("failed to update photo %d: %w", photo.ID, err)
	}
	return nil
}

func (c *Client) SetLocationTag(ctx context.Context, id int64, tag string) error {
	result := c.db.WithContext(ctx).Model(&models.Photo{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"location_tag": tag, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to set location tag for photo %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("photo %d: %w", id, models.ErrNotFound)
	}
	return nil
}

func (c *Client) DeletePhoto(ctx context.Context, id int64) error {
	result := c.db.WithContext(ctx).Delete(&models.Photo{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete photo %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("photo %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListStoragePaths maps every storage path under prefix to its photo id.
func (c *Client) ListStoragePaths(ctx context.Context, prefix string) (map[string]int64, error) {
	var rows []struct {
		ID          int64
		StoragePath string
	}
	err := c.db.WithContext(ctx).Model(&models.Photo{}).
		Select("id, storage_path").
		Where("storage_path LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list storage paths: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		if strings.HasPrefix(row.StoragePath, prefix) {
			out[row.StoragePath] = row.ID
		}
	}
	return out, nil
}

func (c *Client) DeletePhotos(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := c.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Photo{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete photos: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (c *Client) ListUntagged(ctx context.Context, limit, offset int) ([]models.Photo, error) {
	var photos []models.Photo
	err := untagged(c.db.WithContext(ctx)).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list untagged photos: %w", err)
	}
	return photos, nil
}

func (c *Client) CountUntagged(ctx context.Context) (int64, error) {
	var count int64
	if err := untagged(c.db.WithContext(ctx).Model(&models.Photo{})).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count untagged photos: %w", err)
	}
	return count, nil
}

func (c *Client) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&models.Photo{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

func untagged(db *gorm.DB) *gorm.DB {
	return db.Where("location_tag IS NULL OR location_tag = ''")
}

func wrapNotFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, models.ErrNotFound)...)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, models.ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "duplicate key")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
