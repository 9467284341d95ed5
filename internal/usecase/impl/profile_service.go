package impl

import (
	"context"
	"log/slog"

	deliverycontext "conduit/internal/delivery/context"
	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	"conduit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	FollowRepo repository.FollowRepository
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:   params.UserRepo,
		followRepo: params.FollowRepo,
		logger:     params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the named user's profile from the viewer's perspective.
func (srv *profileService) Get(ctx context.Context, viewerID int64, username string) (*usecase.ProfileOutput, error) {
	target, err := srv.findProfileUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return srv.profileOutput(ctx, viewerID, target)
}

// Follow creates the follow edge toward the named user. Following someone
// already followed succeeds without changing anything.
func (srv *profileService) Follow(ctx context.Context, followerID int64, username string) (*usecase.ProfileOutput, error) {
	follower, err := srv.findFollower(ctx, followerID)
	if err != nil {
		return nil, err
	}

	// The self check runs on the path username before the target is
	// ever queried.
	if follower.Username == username {
		return nil, domainerrors.ErrSelfFollow
	}

	target, err := srv.findProfileUser(ctx, username)
	if err != nil {
		return nil, err
	}

	follow := &entity.Follow{FollowerID: followerID, FolloweeID: target.ID}
	if err := srv.followRepo.Create(ctx, follow); err != nil {
		return nil, errors.Wrap(err, "failed to create follow edge")
	}

	srv.log(ctx).Debug("Follow edge ensured",
		slog.Int64("followerID", followerID),
		slog.Int64("followeeID", target.ID),
	)

	return &usecase.ProfileOutput{User: target, Following: true}, nil
}

// Unfollow removes the follow edge toward the named user. Unfollowing
// someone not followed succeeds without changing anything, but unfollowing
// yourself is rejected just like following yourself.
func (srv *profileService) Unfollow(ctx context.Context, followerID int64, username string) (*usecase.ProfileOutput, error) {
	follower, err := srv.findFollower(ctx, followerID)
	if err != nil {
		return nil, err
	}

	if follower.Username == username {
		return nil, domainerrors.ErrSelfUnfollow
	}

	target, err := srv.findProfileUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := srv.followRepo.Delete(ctx, followerID, target.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete follow edge")
	}

	srv.log(ctx).Debug("Follow edge removed",
		slog.Int64("followerID", followerID),
		slog.Int64("followeeID", target.ID),
	)

	return &usecase.ProfileOutput{User: target, Following: false}, nil
}

func (srv *profileService) findFollower(ctx context.Context, followerID int64) (*entity.User, error) {
	follower, err := srv.userRepo.FindByID(ctx, followerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find follower user")
	}

	return follower, nil
}

func (srv *profileService) findProfileUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile user")
	}

	return user, nil
}

func (srv *profileService) profileOutput(ctx context.Context, viewerID int64, target *entity.User) (*usecase.ProfileOutput, error) {
	following := false
	if viewerID != 0 && viewerID != target.ID {
		var err error
		following, err = srv.followRepo.Exists(ctx, viewerID, target.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check follow edge")
		}
	}

	return &usecase.ProfileOutput{User: target, Following: following}, nil
}
