package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// FavoriteRepository manages the user→article favorite edges.
// Create and Delete report whether they changed anything, so the caller
// can keep the article's denormalized counter in step with the edge set:
// the counter moves only when an edge actually appeared or disappeared.
type FavoriteRepository interface {
	// Create inserts the edge if absent and reports whether a row was
	// written. A duplicate favorite returns (false, nil).
	Create(ctx context.Context, favorite *entity.Favorite) (created bool, err error)

	// Delete removes the edge if present and reports whether a row was
	// removed. An absent edge returns (false, nil).
	Delete(ctx context.Context, userID, articleID int64) (deleted bool, err error)

	// Exists reports whether the (user, article) edge is present.
	Exists(ctx context.Context, userID, articleID int64) (bool, error)
}
