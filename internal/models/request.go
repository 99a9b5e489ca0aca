package models

type CreateFolderRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"Nature"`
	Description string `json:"description,omitempty"`
}

type UpdateFolderRequest struct {
	// Name renames the folder when set. Photo rows keep their folder_id;
	// storage paths are not rewritten.
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

type CreatePhotoRequest struct {
	FolderID    *int64  `json:"folder_id,omitempty"`
	Filename    string  `json:"filename" binding:"required,max=255"`
	URL         string  `json:"url" binding:"required"`
	MimeType    string  `json:"mimetype,omitempty"`
	StoragePath string  `json:"storage_path,omitempty"`
	Width       *int32  `json:"width,omitempty"`
	Height      *int32  `json:"height,omitempty"`
	LocationTag *string `json:"location_tag,omitempty"`
}

type UpdatePhotoRequest struct {
	// FolderID moves the photo; 0 detaches it from any folder.
	FolderID    *int64  `json:"folder_id,omitempty"`
	Filename    *string `json:"filename,omitempty" binding:"omitempty,max=255"`
	LocationTag *string `json:"location_tag,omitempty"`
}
