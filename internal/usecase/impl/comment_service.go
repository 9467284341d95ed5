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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	ArticleRepo repository.ArticleRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		articleRepo: params.ArticleRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a comment on the article behind the slug.
func (srv *commentService) Create(ctx context.Context, authorID int64, slug string, input *usecase.CreateCommentInput) (*usecase.CommentOutput, error) {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Body:      input.Body,
		AuthorID:  authorID,
		ArticleID: article.ID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	author, err := srv.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comment author")
	}
	comment.Author = author

	srv.log(ctx).Debug("Comment created",
		slog.Int64("commentID", comment.ID),
		slog.Int64("articleID", article.ID),
	)

	return &usecase.CommentOutput{Comment: comment}, nil
}

// Delete removes the caller's own comment from the article behind the
// slug. The comment must actually belong to that article.
func (srv *commentService) Delete(ctx context.Context, userID int64, slug string, commentID int64) error {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return err
	}

	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if comment.ArticleID != article.ID {
		return domainerrors.ErrCommentNotFound
	}

	if comment.AuthorID != userID {
		srv.log(ctx).Warn("Comment delete rejected for non-author",
			slog.Int64("commentID", comment.ID),
			slog.Int64("userID", userID),
		)

		return domainerrors.ErrNotCommentAuthor
	}

	if err := srv.commentRepo.SoftDelete(ctx, comment.ID); err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Debug("Comment deleted", slog.Int64("commentID", comment.ID))

	return nil
}

func (srv *commentService) findArticle(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := srv.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	return article, nil
}
