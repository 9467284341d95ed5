package repository

import (
	"context"
	"errors"

	"conduit/internal/domain/entity"
)

// ErrCommentNotFound is returned when no live comment matches the lookup.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a live comment with its author loaded.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// SoftDelete marks the comment deleted. Comments carry no slug, so
	// nothing is recycled.
	SoftDelete(ctx context.Context, id int64) error
}
