package usecase

import (
	"context"

	"conduit/internal/domain/entity"
)

// CreateCommentInput defines the data required to post a comment.
type CreateCommentInput struct {
	Body string
}

// CommentOutput returns a comment from the viewer's perspective.
type CommentOutput struct {
	Comment         *entity.Comment
	FollowingAuthor bool
}

// CommentUsecase defines the interface for comment business operations.
type CommentUsecase interface {
	Create(ctx context.Context, authorID int64, slug string, input *CreateCommentInput) (*CommentOutput, error)
	Delete(ctx context.Context, userID int64, slug string, commentID int64) error
}
