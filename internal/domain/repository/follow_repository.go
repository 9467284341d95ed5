package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// FollowRepository manages the directed follow edges between users.
// Create and Delete are idempotent: the caller asks for an end state
// ("edge exists" / "edge absent"), and reaching a state that already
// holds is success, not an error.
type FollowRepository interface {
	// Create inserts the edge if it does not exist. Re-creating an
	// existing edge is a no-op.
	Create(ctx context.Context, follow *entity.Follow) error

	// Delete removes the edge if present. Deleting an absent edge is a
	// no-op.
	Delete(ctx context.Context, followerID, followeeID int64) error

	// Exists reports whether the (follower, followee) edge is present.
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
}
