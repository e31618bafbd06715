package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a user's remark on a book. Comments are immutable once
// created; there are no edit or delete paths.
type Comment struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	BookTitle    string    `json:"book_title" gorm:"size:255;not null;index:idx_comment_book"`
	BookCategory string    `json:"book_category" gorm:"size:100;not null;index:idx_comment_book"`
	Text         string    `json:"text" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CommentView is a comment joined with its author's display name,
// the shape returned by the book details endpoint.
type CommentView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	BookTitle    string    `json:"book_title"`
	BookCategory string    `json:"book_category"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}
