package models

import (
	"database/sql"
	"time"
)

// Photo is the metadata row for one blob in the object store. StoragePath is
// the authoritative key; URL is derived from it at write time and may go stale.
type Photo struct {
	ID          int64          `gorm:"primaryKey"`
	FolderID    sql.NullInt64  `gorm:"index"`
	Filename    string         `gorm:"size:255;not null;index"`
	URL         string         `gorm:"column:url;size:1024;not null"`
	MimeType    sql.NullString `gorm:"column:mimetype;size:128"`
	StoragePath sql.NullString `gorm:"size:1024;uniqueIndex"`
	Width       sql.NullInt32
	Height      sql.NullInt32
	FileSize    sql.NullInt64
	LocationTag sql.NullString `gorm:"size:255;index"`
	UploadedAt  time.Time      `gorm:"not null;index"`
	UpdatedAt   time.Time
}

func (Photo) TableName() string {
	return "photos"
}

// PhotoFilter narrows photo listings and searches. Zero values are ignored.
type PhotoFilter struct {
	FolderID   *int64
	FolderName string
	Name       string
	MimeType   string
	DateFrom   *time.Time
	DateTo     *time.Time
	Offset     int
	Limit      int
}
