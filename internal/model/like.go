package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like marks that a user likes a book. Books carry no stable id of
// their own; they are identified by the (title, category) pair from
// the catalog file. The composite unique index guarantees at most one
// like per user per book, which makes the like toggle safe under
// concurrent requests.
type Like struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:uniq_like_user_book"`
	BookTitle    string    `json:"book_title" gorm:"size:255;not null;uniqueIndex:uniq_like_user_book"`
	BookCategory string    `json:"book_category" gorm:"size:100;not null;uniqueIndex:uniq_like_user_book"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
