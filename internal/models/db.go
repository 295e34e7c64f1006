package models

import (
	"time"
)

type (
	// Bookmark is the persisted row of the bookmarks table.
	Bookmark struct {
		ID          string `gorm:"primaryKey"`
		Title       string `gorm:"not null"`
		URL         string `gorm:"column:url;not null"`
		Description string `gorm:"not null"`
		Rating      float64
		CreatedAt   time.Time
	}
)

func (Bookmark) TableName() string {
	return "bookmarks"
}
