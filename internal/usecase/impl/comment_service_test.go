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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	articleRepo *mockRepo.MockArticleRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	articleRepo := mockRepo.NewMockArticleRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		ArticleRepo: articleRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{
		service:     service,
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	article := &entity.Article{ID: 10, Slug: "hello-world"}
	author := &entity.User{ID: 1, Username: "jake"}
	fx.articleRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(article, nil)
	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = 100
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(author, nil)

	output, err := fx.service.Create(ctx, 1, "hello-world", &usecase.CreateCommentInput{Body: "nice"})

	require.NoError(t, err)
	assert.Equal(t, int64(100), output.Comment.ID)
	assert.Equal(t, int64(10), output.Comment.ArticleID)
	assert.Equal(t, author, output.Comment.Author)
}

func TestCommentService_Create_UnknownArticle(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.articleRepo.EXPECT().FindBySlug(ctx, "ghost").Return(nil, repository.ErrArticleNotFound)

	output, err := fx.service.Create(ctx, 1, "ghost", &usecase.CreateCommentInput{Body: "nice"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}

func TestCommentService_Delete_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	article := &entity.Article{ID: 10, Slug: "hello-world"}
	comment := &entity.Comment{ID: 100, AuthorID: 1, ArticleID: 10}
	fx.articleRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(article, nil)
	fx.commentRepo.EXPECT().FindByID(ctx, int64(100)).Return(comment, nil)
	fx.commentRepo.EXPECT().SoftDelete(ctx, int64(100)).Return(nil)

	err := fx.service.Delete(ctx, 1, "hello-world", 100)

	require.NoError(t, err)
}

func TestCommentService_Delete_NonAuthor(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	article := &entity.Article{ID: 10, Slug: "hello-world"}
	comment := &entity.Comment{ID: 100, AuthorID: 2, ArticleID: 10}
	fx.articleRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(article, nil)
	fx.commentRepo.EXPECT().FindByID(ctx, int64(100)).Return(comment, nil)

	err := fx.service.Delete(ctx, 9, "hello-world", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotCommentAuthor)
}

func TestCommentService_Delete_WrongArticle(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	article := &entity.Article{ID: 10, Slug: "hello-world"}
	// The comment exists but hangs off a different article; addressing
	// it through this slug is a miss, not a forbidden.
	comment := &entity.Comment{ID: 100, AuthorID: 1, ArticleID: 11}
	fx.articleRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(article, nil)
	fx.commentRepo.EXPECT().FindByID(ctx, int64(100)).Return(comment, nil)

	err := fx.service.Delete(ctx, 1, "hello-world", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestCommentService_Delete_UnknownComment(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	article := &entity.Article{ID: 10, Slug: "hello-world"}
	fx.articleRepo.EXPECT().FindBySlug(ctx, "hello-world").Return(article, nil)
	fx.commentRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrCommentNotFound)

	err := fx.service.Delete(ctx, 1, "hello-world", 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}
