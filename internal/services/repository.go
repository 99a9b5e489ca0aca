package services

import (
	"context"

	"photo-portfolio-backend/internal/models"
)

// Repository is the metadata store used by the services and handlers.
// database.Client implements it.
type Repository interface {
	Ping(ctx context.Context) error

	ListFolders(ctx context.Context) ([]models.Folder, error)
	GetFolder(ctx context.Context, id int64) (*models.Folder, error)
	GetFolderByName(ctx context.Context, name string) (*models.Folder, error)
	CreateFolder(ctx context.Context, name, description string) (*models.Folder, error)
	UpdateFolder(ctx context.Context, name string, req models.UpdateFolderRequest) (*models.Folder, error)
	UpsertFolder(ctx context.Context, name string) (*models.Folder, bool, error)
	DeleteFolder(ctx context.Context, name string) error

	ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error)
	ListPhotosInFolders(ctx context.Context, folderIDs []int64) (map[int64][]models.Photo, error)
	GetPhoto(ctx context.Context, id int64) (*models.Photo, error)
	GetPhotoByFolderAndFilename(ctx context.Context, folderID int64, filename string) (*models.Photo, error)
	CreatePhoto(ctx context.Context, photo *models.Photo) error
	InsertPhotoIfAbsent(ctx context.Context, photo *models.Photo) (bool, error)
	UpdatePhoto(ctx context.Context, photo *models.Photo) error
	SetLocationTag(ctx context.Context, id int64, tag string) error
	DeletePhoto(ctx context.Context, id int64) error
	DeletePhotos(ctx context.Context, ids []int64) (int64, error)
	ListStoragePaths(ctx context.Context, prefix string) (map[string]int64, error)

	ListUntagged(ctx context.Context, limit, offset int) ([]models.Photo, error)
	CountUntagged(ctx context.Context) (int64, error)
	CountPhotos(ctx context.Context) (int64, error)
}

type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

type LandmarkDetector interface {
	Detect(ctx context.Context, image []byte, mimeType string) (string, error)
}

type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}
