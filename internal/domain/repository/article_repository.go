package repository

import (
	"context"
	"errors"

	"conduit/internal/domain/entity"
)

// ErrArticleNotFound is returned when no live article matches the lookup.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository defines the operations for article persistence.
// Lookups only see live articles; soft-deleted rows are invisible to
// every method except SoftDelete itself.
type ArticleRepository interface {
	// FindBySlug retrieves a live article by its unique slug, with its
	// author and tags loaded.
	FindBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// Create persists a new article together with its tag rows.
	Create(ctx context.Context, article *entity.Article) error

	// Update modifies the mutable columns (slug, title, description, body)
	// of an existing article.
	Update(ctx context.Context, article *entity.Article) error

	// SoftDelete marks the article deleted and rewrites its slug to the
	// given recycled value in a single statement, so the original slug is
	// freed and never briefly duplicated.
	SoftDelete(ctx context.Context, id int64, recycledSlug string) error

	// AddFavoritesCount adjusts the denormalized favorites counter by
	// delta using a store-level increment, never a read-modify-write
	// round trip from application code.
	AddFavoritesCount(ctx context.Context, id int64, delta int) error
}
