package usecase

import (
	"context"

	"conduit/internal/domain/entity"
)

// ProfileOutput returns a user's public profile from the viewer's
// perspective. Following is always false for an anonymous viewer.
type ProfileOutput struct {
	User      *entity.User
	Following bool
}

// ProfileUsecase defines the interface for profile and follow-edge operations.
// viewerID is zero when the request carries no identity.
type ProfileUsecase interface {
	Get(ctx context.Context, viewerID int64, username string) (*ProfileOutput, error)
	Follow(ctx context.Context, followerID int64, username string) (*ProfileOutput, error)
	Unfollow(ctx context.Context, followerID int64, username string) (*ProfileOutput, error)
}
