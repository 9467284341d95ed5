package impl

import (
	"context"
	"testing"

	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	mockRepo "conduit/internal/mocks/repository"
	"conduit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	userRepo   *mockRepo.MockUserRepository
	followRepo *mockRepo.MockFollowRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)

	service := NewProfileService(ProfileServiceParams{
		UserRepo:   userRepo,
		FollowRepo: followRepo,
		Logger:     newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func TestProfileService_Get_AnonymousViewer(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	target := &entity.User{ID: 2, Username: "celeb"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "celeb").Return(target, nil)

	output, err := fx.service.Get(ctx, 0, "celeb")

	require.NoError(t, err)
	assert.Equal(t, target, output.User)
	// No follow lookup happens for an anonymous viewer.
	assert.False(t, output.Following)
}

func TestProfileService_Get_AuthenticatedViewer(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	target := &entity.User{ID: 2, Username: "celeb"}
	fx.userRepo.EXPECT().FindByUsername(ctx, "celeb").Return(target, nil)
	fx.followRepo.EXPECT().Exists(ctx, int64(1), int64(2)).Return(true, nil)

	output, err := fx.service.Get(ctx, 1, "celeb")

	require.NoError(t, err)
	assert.True(t, output.Following)
}

func TestProfileService_Get_UnknownUsername(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Get(ctx, 1, "ghost")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_Follow_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	follower := &entity.User{ID: 1, Username: "jake"}
	target := &entity.User{ID: 2, Username: "celeb"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(follower, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "celeb").Return(target, nil)
	fx.followRepo.EXPECT().
		Create(ctx, &entity.Follow{FollowerID: 1, FolloweeID: 2}).
		Return(nil)

	output, err := fx.service.Follow(ctx, 1, "celeb")

	require.NoError(t, err)
	assert.True(t, output.Following)
}

func TestProfileService_Follow_Self(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	follower := &entity.User{ID: 1, Username: "jake"}
	// The self check fires on the username alone; the target is never
	// looked up.
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(follower, nil)

	output, err := fx.service.Follow(ctx, 1, "jake")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSelfFollow)
}

func TestProfileService_Follow_Repeated(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	follower := &entity.User{ID: 1, Username: "jake"}
	target := &entity.User{ID: 2, Username: "celeb"}
	// The edge insert is idempotent at the repository, so a repeat
	// follow still reports success.
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(follower, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "celeb").Return(target, nil)
	fx.followRepo.EXPECT().
		Create(ctx, &entity.Follow{FollowerID: 1, FolloweeID: 2}).
		Return(nil)

	output, err := fx.service.Follow(ctx, 1, "celeb")

	require.NoError(t, err)
	assert.True(t, output.Following)
}

func TestProfileService_Follow_UnknownFollower(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Follow(ctx, 9, "celeb")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_Unfollow_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	follower := &entity.User{ID: 1, Username: "jake"}
	target := &entity.User{ID: 2, Username: "celeb"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(follower, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "celeb").Return(target, nil)
	fx.followRepo.EXPECT().Delete(ctx, int64(1), int64(2)).Return(nil)

	output, err := fx.service.Unfollow(ctx, 1, "celeb")

	require.NoError(t, err)
	assert.False(t, output.Following)
}

func TestProfileService_Unfollow_Self(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	follower := &entity.User{ID: 1, Username: "jake"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(follower, nil)

	output, err := fx.service.Unfollow(ctx, 1, "jake")

	// No edge delete is attempted against yourself.
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSelfUnfollow)
}

func TestProfileService_Unfollow_AbsentEdge(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	follower := &entity.User{ID: 1, Username: "jake"}
	target := &entity.User{ID: 2, Username: "celeb"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(follower, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "celeb").Return(target, nil)
	fx.followRepo.EXPECT().Delete(ctx, int64(1), int64(2)).Return(nil)

	output, err := fx.service.Unfollow(ctx, 1, "celeb")

	// Deleting an edge that never existed is still success.
	require.NoError(t, err)
	assert.False(t, output.Following)
}
