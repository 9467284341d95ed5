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

// articleService implements the ArticleUsecase interface.
type articleService struct {
	txManager    repository.TransactionManager
	articleRepo  repository.ArticleRepository
	userRepo     repository.UserRepository
	followRepo   repository.FollowRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// ArticleServiceParams holds dependencies for ArticleService, injected by Fx.
type ArticleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ArticleRepo  repository.ArticleRepository
	UserRepo     repository.UserRepository
	FollowRepo   repository.FollowRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewArticleService is the constructor for articleService.
func NewArticleService(params ArticleServiceParams) usecase.ArticleUsecase {
	return &articleService{
		txManager:    params.TxManager,
		articleRepo:  params.ArticleRepo,
		userRepo:     params.UserRepo,
		followRepo:   params.FollowRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *articleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new article under the author's identity. The slug is
// derived from the title; a collision with a live article is rejected by
// the unique index and reported as a validation failure.
func (srv *articleService) Create(ctx context.Context, authorID int64, input *usecase.CreateArticleInput) (*usecase.ArticleOutput, error) {
	article := &entity.Article{
		Slug:        slugify(input.Title),
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		TagList:     input.TagList,
		AuthorID:    authorID,
	}

	if err := srv.articleRepo.Create(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to create article")
	}

	author, err := srv.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load article author")
	}
	article.Author = author

	srv.log(ctx).Info("Article created",
		slog.Int64("articleID", article.ID),
		slog.String("slug", article.Slug),
	)

	return &usecase.ArticleOutput{Article: article}, nil
}

// Get returns the article behind the slug from the viewer's perspective.
func (srv *articleService) Get(ctx context.Context, viewerID int64, slug string) (*usecase.ArticleOutput, error) {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	return srv.articleOutput(ctx, viewerID, article)
}

// Update modifies the caller's own article. A changed title re-derives
// the slug, so the article's address can move.
func (srv *articleService) Update(ctx context.Context, userID int64, slug string, input *usecase.UpdateArticleInput) (*usecase.ArticleOutput, error) {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		srv.log(ctx).Warn("Article update rejected for non-author",
			slog.Int64("articleID", article.ID),
			slog.Int64("userID", userID),
		)

		return nil, domainerrors.ErrNotArticleAuthor
	}

	if input.Title != nil {
		article.Title = *input.Title
		article.Slug = slugify(*input.Title)
	}
	if input.Description != nil {
		article.Description = *input.Description
	}
	if input.Body != nil {
		article.Body = *input.Body
	}

	if err := srv.articleRepo.Update(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to update article")
	}

	return srv.articleOutput(ctx, userID, article)
}

// Delete soft-deletes the caller's own article. The slug is rewritten to
// an opaque value in the same statement, freeing it for reuse.
func (srv *articleService) Delete(ctx context.Context, userID int64, slug string) error {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return err
	}

	if article.AuthorID != userID {
		srv.log(ctx).Warn("Article delete rejected for non-author",
			slog.Int64("articleID", article.ID),
			slog.Int64("userID", userID),
		)

		return domainerrors.ErrNotArticleAuthor
	}

	if err := srv.articleRepo.SoftDelete(ctx, article.ID, recycledSlug(article.ID, article.Slug)); err != nil {
		return errors.Wrap(err, "failed to delete article")
	}

	srv.log(ctx).Info("Article deleted",
		slog.Int64("articleID", article.ID),
		slog.String("slug", slug),
	)

	return nil
}

// Favorite ensures the caller's favorite edge on the article. The counter
// moves with the edge inside one transaction, and only when the edge was
// actually created, so repeated favorites cannot inflate it.
func (srv *articleService) Favorite(ctx context.Context, userID int64, slug string) (*usecase.ArticleOutput, error) {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		created, err := repoFactory.FavoriteRepo().Create(ctx, &entity.Favorite{
			UserID:    userID,
			ArticleID: article.ID,
		})
		if err != nil {
			return err
		}
		if !created {
			return nil
		}

		if err := repoFactory.ArticleRepo().AddFavoritesCount(ctx, article.ID, 1); err != nil {
			return err
		}
		article.FavoritesCount++

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute favorite transaction",
			slog.Int64("articleID", article.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute favorite transaction")
	}

	return srv.articleOutputFavorited(ctx, userID, article, true)
}

// Unfavorite removes the caller's favorite edge, decrementing the counter
// only when an edge actually disappeared.
func (srv *articleService) Unfavorite(ctx context.Context, userID int64, slug string) (*usecase.ArticleOutput, error) {
	article, err := srv.findArticle(ctx, slug)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deleted, err := repoFactory.FavoriteRepo().Delete(ctx, userID, article.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}

		if err := repoFactory.ArticleRepo().AddFavoritesCount(ctx, article.ID, -1); err != nil {
			return err
		}
		article.FavoritesCount--

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute unfavorite transaction",
			slog.Int64("articleID", article.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute unfavorite transaction")
	}

	return srv.articleOutputFavorited(ctx, userID, article, false)
}

func (srv *articleService) findArticle(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := srv.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	return article, nil
}

func (srv *articleService) articleOutput(ctx context.Context, viewerID int64, article *entity.Article) (*usecase.ArticleOutput, error) {
	favorited := false
	if viewerID != 0 {
		var err error
		favorited, err = srv.favoriteRepo.Exists(ctx, viewerID, article.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite edge")
		}
	}

	return srv.articleOutputFavorited(ctx, viewerID, article, favorited)
}

func (srv *articleService) articleOutputFavorited(ctx context.Context, viewerID int64, article *entity.Article, favorited bool) (*usecase.ArticleOutput, error) {
	following := false
	if viewerID != 0 && viewerID != article.AuthorID {
		var err error
		following, err = srv.followRepo.Exists(ctx, viewerID, article.AuthorID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check follow edge")
		}
	}

	return &usecase.ArticleOutput{
		Article:         article,
		Favorited:       favorited,
		FollowingAuthor: following,
	}, nil
}
