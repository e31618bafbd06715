package repository

import (
	"context"

	"gorm.io/gorm"

	"bookshelf/internal/model"
)

// CommentRepository defines comment persistence operations. Comments
// are append-only; there is no update or delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListForBook(ctx context.Context, title, category string) ([]model.CommentView, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListForBook returns the book's comments most recent first, with the
// author's display name resolved in the same query.
func (r *commentRepository) ListForBook(ctx context.Context, title, category string) ([]model.CommentView, error) {
	var views []model.CommentView
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.user_id, users.name AS user_name, comments.book_title, comments.book_category, comments.text, comments.created_at").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.book_title = ? AND comments.book_category = ?", title, category).
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
