package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookshelf/internal/model"
)

// LikeRepository defines like persistence operations.
type LikeRepository interface {
	Toggle(ctx context.Context, userID uuid.UUID, title, category string) (bool, error)
	Exists(ctx context.Context, userID uuid.UUID, title, category string) (bool, error)
	CountForBook(ctx context.Context, title, category string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository builds a GORM-backed repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle deletes the like for the (user, title, category) triple if it
// exists, otherwise inserts it. Runs delete-else-insert in one
// transaction; the composite unique index on likes turns a concurrent
// double-insert into a duplicate-key error, which is reported as the
// like already being present instead of failing the request.
func (r *likeRepository) Toggle(ctx context.Context, userID uuid.UUID, title, category string) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND book_title = ? AND book_category = ?", userID, title, category).
			Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}

		like := &model.Like{
			UserID:       userID,
			BookTitle:    title,
			BookCategory: category,
		}
		if err := tx.Create(like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID uuid.UUID, title, category string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND book_title = ? AND book_category = ?", userID, title, category).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) CountForBook(ctx context.Context, title, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("book_title = ? AND book_category = ?", title, category).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
