package usecase

import (
	"context"

	"conduit/internal/domain/entity"
)

// --- Input DTOs ---

// CreateArticleInput defines the data required to publish an article.
type CreateArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// UpdateArticleInput carries the optional fields of an article update.
// Nil means "leave unchanged". Changing the title also re-derives the slug.
type UpdateArticleInput struct {
	Title       *string
	Description *string
	Body        *string
}

// --- Output DTOs ---

// ArticleOutput returns an article from the viewer's perspective.
// Favorited and FollowingAuthor are always false for an anonymous viewer.
type ArticleOutput struct {
	Article         *entity.Article
	Favorited       bool
	FollowingAuthor bool
}

// ArticleUsecase defines the interface for article business operations,
// including the favorite edge and its denormalized counter.
// viewerID is zero when the request carries no identity.
type ArticleUsecase interface {
	Create(ctx context.Context, authorID int64, input *CreateArticleInput) (*ArticleOutput, error)
	Get(ctx context.Context, viewerID int64, slug string) (*ArticleOutput, error)
	Update(ctx context.Context, userID int64, slug string, input *UpdateArticleInput) (*ArticleOutput, error)
	Delete(ctx context.Context, userID int64, slug string) error
	Favorite(ctx context.Context, userID int64, slug string) (*ArticleOutput, error)
	Unfavorite(ctx context.Context, userID int64, slug string) (*ArticleOutput, error)
}
