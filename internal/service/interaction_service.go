package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookshelf/internal/cache"
	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/model"
	"bookshelf/internal/repository"
)

const detailsCacheTTL = 30 * time.Second

// BookDetails aggregates the social state of one book.
type BookDetails struct {
	Likes    int64               `json:"likes"`
	IsLiked  bool                `json:"isLiked"`
	Comments []model.CommentView `json:"comments"`
}

// InteractionService handles likes and comments on books. Books are
// identified by their literal (title, category) strings; no
// normalization or catalog lookup is applied.
type InteractionService interface {
	ToggleLike(ctx context.Context, userID uuid.UUID, title, category string) (bool, error)
	AddComment(ctx context.Context, userID uuid.UUID, title, category, text string) (*model.Comment, error)
	GetDetails(ctx context.Context, title, category string, userID *uuid.UUID) (*BookDetails, error)
}

type interactionService struct {
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	cache       *cache.Client
}

// NewInteractionService builds an InteractionService with repositories
// and cache.
func NewInteractionService(likeRepo repository.LikeRepository, commentRepo repository.CommentRepository, cache *cache.Client) InteractionService {
	return &interactionService{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		cache:       cache,
	}
}

// cacheKey escapes both parts so a ":" inside a title or category
// cannot make two different books share a key.
func (s *interactionService) cacheKey(title, category string) string {
	return fmt.Sprintf("details:%s:%s", url.QueryEscape(category), url.QueryEscape(title))
}

// ToggleLike flips the like state for the (user, title, category)
// triple and returns the resulting state.
func (s *interactionService) ToggleLike(ctx context.Context, userID uuid.UUID, title, category string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	liked, err := s.likeRepo.Toggle(ctx, userID, title, category)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(title, category))
	return liked, nil
}

// AddComment stores a new comment. Text must be non-empty; whitespace
// does not count.
func (s *interactionService) AddComment(ctx context.Context, userID uuid.UUID, title, category, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyComment
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	comment := &model.Comment{
		UserID:       userID,
		BookTitle:    title,
		BookCategory: category,
		Text:         text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(title, category))
	return comment, nil
}

// GetDetails returns the like count, the caller's own like state and
// the comment list for one book. The anonymous variant is served
// read-through from the cache; per-user state is always read fresh.
func (s *interactionService) GetDetails(ctx context.Context, title, category string, userID *uuid.UUID) (*BookDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if userID == nil {
		if data, _ := s.cache.Get(ctx, s.cacheKey(title, category)); data != nil {
			var cached BookDetails
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	likes, err := s.likeRepo.CountForBook(ctx, title, category)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	isLiked := false
	if userID != nil {
		isLiked, err = s.likeRepo.Exists(ctx, *userID, title, category)
		if err != nil {
			return nil, fmt.Errorf("check like: %w", err)
		}
	}

	comments, err := s.commentRepo.ListForBook(ctx, title, category)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []model.CommentView{}
	}

	details := &BookDetails{
		Likes:    likes,
		IsLiked:  isLiked,
		Comments: comments,
	}

	if userID == nil {
		if payload, err := json.Marshal(details); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(title, category), payload, detailsCacheTTL)
		}
	}
	return details, nil
}
