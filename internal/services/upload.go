package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/models"
	"photo-portfolio-backend/internal/objectstore"
)

// Upload failure stages reported per file.
const (
	StageValidate = "validate"
	StageRead     = "read"
	StageStorage  = "storage"
	StageDatabase = "database"
)

// UploadFile is one file of a multipart upload.
type UploadFile struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

type UploadOptions struct {
	Prefix            string
	MaxSize           int64
	AllowedExtensions []string
}

// UploadService stores uploaded images and records them. Files are handled
// independently: one failing file never rolls back another.
type UploadService struct {
	repo    Repository
	store   objectstore.Store
	prefix  string
	maxSize int64
	allowed map[string]bool
}

func NewUploadService(repo Repository, store objectstore.Store, opts UploadOptions) *UploadService {
	allowed := make(map[string]bool, len(opts.AllowedExtensions))
	for _, ext := range opts.AllowedExtensions {
		allowed[strings.TrimPrefix(strings.ToLower(ext), ".")] = true
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = objectstore.DefaultPrefix
	}
	return &UploadService{
		repo:    repo,
		store:   store,
		prefix:  objectstore.NormalizePrefix(prefix),
		maxSize: opts.MaxSize,
		allowed: allowed,
	}
}

// ValidateFolderName checks that name can be used as a single key segment.
func ValidateFolderName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("folder name is required: %w", models.ErrValidation)
	case len(name) > 255:
		return fmt.Errorf("folder name is longer than 255 characters: %w", models.ErrValidation)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("folder name must not contain slashes: %w", models.ErrValidation)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("folder name must not start with a dot: %w", models.ErrValidation)
	}
	return nil
}

// Upload writes every file to the object store and inserts a photo row for
// it. Per-file failures are collected in the response; only an invalid
// request as a whole returns an error. A metadata failure after a successful
// write leaves the blob for reindexing.
func (s *UploadService) Upload(ctx context.Context, folderName string, files []UploadFile) (*models.UploadResponse, error) {
	folderName = strings.TrimSpace(folderName)
	if err := ValidateFolderName(folderName); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files uploaded: %w", models.ErrValidation)
	}

	resp := &models.UploadResponse{
		Folder:   folderName,
		Uploaded: make([]models.PhotoResponse, 0, len(files)),
	}
	var folder *models.Folder

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fail := func(stage string, err error) {
			klog.Warningf("Upload %s/%s failed at %s: %v", folderName, file.Filename, stage, err)
			resp.Errors = append(resp.Errors, models.UploadErrorInfo{
				Filename: file.Filename,
				Error:    err.Error(),
				Stage:    stage,
			})
		}

		filename := objectstore.SanitizeFilename(file.Filename)
		if err := s.validate(filename, file.Size); err != nil {
			fail(StageValidate, err)
			continue
		}

		data, err := s.read(file)
		if err != nil {
			stage := StageRead
			if isValidation(err) {
				stage = StageValidate
			}
			fail(stage, err)
			continue
		}

		contentType, err := sniffImage(data)
		if err != nil {
			fail(StageValidate, err)
			continue
		}

		key := objectstore.NewObjectKey(s.prefix, folderName, filename)
		if err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
			fail(StageStorage, err)
			continue
		}

		if folder == nil {
			f, _, err := s.repo.UpsertFolder(ctx, folderName)
			if err != nil {
				klog.Warningf("Upload: blob %s left for reindex", key)
				fail(StageDatabase, err)
				continue
			}
			folder = f
		}

		photo := &models.Photo{
			FolderID:    sql.NullInt64{Int64: folder.ID, Valid: true},
			Filename:    filename,
			URL:         s.store.PublicURL(key),
			MimeType:    sql.NullString{String: contentType, Valid: true},
			StoragePath: sql.NullString{String: key, Valid: true},
			FileSize:    sql.NullInt64{Int64: int64(len(data)), Valid: true},
		}
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			photo.Width = sql.NullInt32{Int32: int32(cfg.Width), Valid: true}
			photo.Height = sql.NullInt32{Int32: int32(cfg.Height), Valid: true}
		}

		if err := s.repo.CreatePhoto(ctx, photo); err != nil {
			klog.Warningf("Upload: blob %s left for reindex", key)
			fail(StageDatabase, err)
			continue
		}
		resp.Uploaded = append(resp.Uploaded, models.NewPhotoResponse(*photo))
	}

	return resp, nil
}

func (s *UploadService) validate(filename string, size int64) error {
	if filename == "" {
		return fmt.Errorf("invalid filename: %w", models.ErrValidation)
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if !s.allowed[ext] {
		return fmt.Errorf("file type %q is not allowed: %w", ext, models.ErrValidation)
	}
	if s.maxSize > 0 && size > s.maxSize {
		return fmt.Errorf("file is larger than %d bytes: %w", s.maxSize, models.ErrValidation)
	}
	return nil
}

func (s *UploadService) read(file UploadFile) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if s.maxSize > 0 {
		r = io.LimitReader(rc, s.maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("file is larger than %d bytes: %w", s.maxSize, models.ErrValidation)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty: %w", models.ErrValidation)
	}
	return data, nil
}

// sniffImage returns the detected media type of data, rejecting anything
// that is not an image regardless of the declared extension.
func sniffImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	contentType := strings.TrimSpace(strings.SplitN(mtype.String(), ";", 2)[0])
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("content is %s, not an image: %w", contentType, models.ErrValidation)
	}
	return contentType, nil
}
