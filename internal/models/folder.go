package models

import (
	"database/sql"
	"time"
)

type Folder struct {
	ID          int64          `gorm:"primaryKey"`
	Name        string         `gorm:"size:255;not null;uniqueIndex"`
	Description sql.NullString `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Folder) TableName() string {
	return "folders"
}
