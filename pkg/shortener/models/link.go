package models

import (
	"time"
)

// Link maps a generated short URL to its destination.
// ShortURL carries the unique constraint that guarantees a code resolves to
// at most one destination; ID and ShortURL never change after creation.
// There is no soft-delete column: removal is a hard delete.
type Link struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	Redirect    string    `gorm:"not null" json:"redirect"`
	ShortURL    string    `gorm:"uniqueIndex;not null" json:"shortUrl"`
}
