package models

import "time"

type FolderResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PhotoCount  int             `json:"photo_count"`
	Photos      []PhotoResponse `json:"photos,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type FolderListResponse struct {
	Folders []FolderResponse `json:"folders"`
}

type PhotoResponse struct {
	ID          int64     `json:"id"`
	FolderID    *int64    `json:"folder_id"`
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	MimeType    string    `json:"mimetype,omitempty"`
	StoragePath string    `json:"storage_path,omitempty"`
	Width       *int32    `json:"width,omitempty"`
	Height      *int32    `json:"height,omitempty"`
	FileSize    *int64    `json:"file_size,omitempty"`
	LocationTag string    `json:"location_tag,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PhotoListResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

type UploadResponse struct {
	Folder   string            `json:"folder"`
	Uploaded []PhotoResponse   `json:"uploaded"`
	Errors   []UploadErrorInfo `json:"errors,omitempty"`
}

type UploadErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Stage    string `json:"stage"`
}

// ReindexSummary is the outcome of one reconciliation pass.
type ReindexSummary struct {
	Prefix                string   `json:"prefix"`
	FoldersFound          int      `json:"folders_found"`
	FoldersCreated        int      `json:"folders_created"`
	PhotosScanned         int      `json:"photos_scanned"`
	PhotosAdded           int      `json:"photos_added"`
	PhotosSkippedExisting int      `json:"photos_skipped_existing"`
	PhotosRemoved         int      `json:"photos_removed"`
	Truncated             bool     `json:"truncated"`
	Errors                []string `json:"errors"`
}

type AnnotateResult struct {
	Processed         int   `json:"processed"`
	UpdatedThisBatch  int   `json:"updated_this_batch"`
	RemainingUntagged int64 `json:"remaining_untagged"`
	TotalUntagged     int64 `json:"total_untagged"`
}

type SemanticSearchResult struct {
	Photo PhotoResponse `json:"photo"`
	Score float64       `json:"score"`
}

type SemanticSearchResponse struct {
	Query   string                 `json:"query"`
	Results []SemanticSearchResult `json:"results"`
}

type TaskResponse struct {
	TaskID    string      `json:"task_id"`
	Type      string      `json:"type,omitempty"`
	Status    string      `json:"status"`
	Result    interface{} `json:"result,omitempty"`
	UpdatedAt string      `json:"updated_at,omitempty"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Database   string            `json:"database"`
	Components map[string]string `json:"components,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
