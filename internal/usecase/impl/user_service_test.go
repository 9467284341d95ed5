package impl

import (
	"context"
	"testing"

	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	mockRepo "conduit/internal/mocks/repository"
	mockSvc "conduit/internal/mocks/service"
	"conduit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret-password").Return("$argon2id$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)
	fx.tokenService.EXPECT().Generate(int64(7)).Return("token-7", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "jake",
		Email:    "jake@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-7", output.Token)
	assert.Equal(t, "jake", output.User.Username)
	assert.Equal(t, "$argon2id$hashed", output.User.Password)
}

func TestUserService_Register_DuplicateIdentifier(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret-password").Return("$argon2id$hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "jake",
		Email:    "jake@example.com",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Email: "jake@example.com", Password: "$argon2id$hashed"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "jake@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("secret-password", "$argon2id$hashed").Return(true)
	fx.tokenService.EXPECT().Generate(int64(3)).Return("token-3", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jake@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-3", output.Token)
	assert.Equal(t, stored, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Email: "jake@example.com", Password: "$argon2id$hashed"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "jake@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong-password", "$argon2id$hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jake@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// The two failure modes are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetCurrent_ReissuesToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 5, Username: "jake"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	fx.tokenService.EXPECT().Generate(int64(5)).Return("fresh-token", nil)

	output, err := fx.service.GetCurrent(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
	assert.Equal(t, stored, output.User)
}

func TestUserService_GetCurrent_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetCurrent(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateCurrent_PartialFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:       5,
		Username: "jake",
		Email:    "jake@example.com",
		Password: "$argon2id$old",
		Bio:      "old bio",
	}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)
	fx.tokenService.EXPECT().Generate(int64(5)).Return("fresh-token", nil)

	output, err := fx.service.UpdateCurrent(ctx, 5, &usecase.UpdateUserInput{
		Bio: strPtr("new bio"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new bio", output.User.Bio)
	// Untouched fields survive a partial update.
	assert.Equal(t, "jake", output.User.Username)
	assert.Equal(t, "jake@example.com", output.User.Email)
	assert.Equal(t, "$argon2id$old", output.User.Password)
}

func TestUserService_UpdateCurrent_RehashesPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 5, Password: "$argon2id$old"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	fx.hasher.EXPECT().Hash("new-password").Return("$argon2id$new", nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(nil)
	fx.tokenService.EXPECT().Generate(int64(5)).Return("fresh-token", nil)

	output, err := fx.service.UpdateCurrent(ctx, 5, &usecase.UpdateUserInput{
		Password: strPtr("new-password"),
	})

	require.NoError(t, err)
	assert.Equal(t, "$argon2id$new", output.User.Password)
}

func TestUserService_UpdateCurrent_RepoFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 5}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	fx.userRepo.EXPECT().Update(ctx, stored).Return(errors.New("connection reset"))

	output, err := fx.service.UpdateCurrent(ctx, 5, &usecase.UpdateUserInput{
		Bio: strPtr("new bio"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
}
