package impl

import (
	"context"
	"testing"

	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	mockRepo "conduit/internal/mocks/repository"
	mockSvc "conduit/internal/mocks/service"
	"conduit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestPublishingLifecycle walks one author through the whole flow:
// register, a failed then successful login, publishing, a foreign delete
// attempt, the author's own delete, and republishing under the now-freed
// slug.
func TestPublishingLifecycle(t *testing.T) {
	ctx := context.Background()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	articleRepo := mockRepo.NewMockArticleRepository(t)

	users := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	articles := NewArticleService(ArticleServiceParams{
		TxManager:    mockRepo.NewMockTransactionManager(t),
		ArticleRepo:  articleRepo,
		UserRepo:     userRepo,
		FollowRepo:   mockRepo.NewMockFollowRepository(t),
		FavoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		Logger:       newDiscardLogger(),
	})

	// Register alice.
	hasher.EXPECT().Hash("halibut-17").Return("$argon2id$alice", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil).
		Once()
	tokenService.EXPECT().Generate(int64(1)).Return("alice-token", nil).Twice()

	registered, err := users.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "halibut-17",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), registered.User.ID)

	alice := registered.User

	// A wrong password is rejected, the right one is not.
	userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(alice, nil).Twice()
	hasher.EXPECT().Check("guess", "$argon2id$alice").Return(false)
	hasher.EXPECT().Check("halibut-17", "$argon2id$alice").Return(true)

	_, err = users.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "guess"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	loggedIn, err := users.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "halibut-17"})
	require.NoError(t, err)
	assert.Equal(t, "alice-token", loggedIn.Token)

	// Alice publishes.
	userRepo.EXPECT().FindByID(ctx, int64(1)).Return(alice, nil).Twice()
	articleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(ctx context.Context, article *entity.Article) {
			article.ID = 10
		}).
		Return(nil).
		Once()

	published, err := articles.Create(ctx, 1, &usecase.CreateArticleInput{
		Title: "Hello World",
		Body:  "first",
	})
	require.NoError(t, err)
	require.Equal(t, "hello-world", published.Article.Slug)

	// Someone else cannot delete it.
	articleRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(published.Article, nil).Twice()

	err = articles.Delete(ctx, 2, "hello-world")
	assert.ErrorIs(t, err, domainerrors.ErrNotArticleAuthor)

	// Alice can, and the delete frees the slug.
	articleRepo.EXPECT().
		SoftDelete(ctx, int64(10), recycledSlug(10, "hello-world")).
		Return(nil)

	require.NoError(t, articles.Delete(ctx, 1, "hello-world"))

	// The same title publishes again under the original slug.
	articleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(ctx context.Context, article *entity.Article) {
			article.ID = 11
		}).
		Return(nil).
		Once()

	republished, err := articles.Create(ctx, 1, &usecase.CreateArticleInput{
		Title: "Hello World",
		Body:  "second",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", republished.Article.Slug)
	assert.NotEqual(t, published.Article.ID, republished.Article.ID)
}
