package postgres

import (
	"context"
	"time"

	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	"conduit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// articleRepository implements the domain.ArticleRepository interface using GORM.
// gorm.DeletedAt on the model keeps every read scoped to live rows.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{db: db}
}

// FindBySlug retrieves a live article by its unique slug, with its author and tags loaded.
func (repo *articleRepository) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	var articleM model.ArticleModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		First(&articleM, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by slug")
	}

	return toArticleDomain(&articleM), nil
}

// Create persists a new article together with its tag rows.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("slug already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// Update modifies the mutable columns of an existing article. Tag rows and
// the favorites counter are managed elsewhere and never touched here.
func (repo *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"slug":        article.Slug,
			"title":       article.Title,
			"description": article.Description,
			"body":        article.Body,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("slug already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// SoftDelete marks the article deleted and rewrites its slug to the recycled
// value. Both columns change in one UPDATE so the unique slug index never
// observes an intermediate state.
func (repo *articleRepository) SoftDelete(ctx context.Context, id int64, recycledSlug string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"slug":       recycledSlug,
			"deleted_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// AddFavoritesCount adjusts the denormalized counter atomically in the store.
func (repo *articleRepository) AddFavoritesCount(ctx context.Context, id int64, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("favorites_count", gorm.Expr("favorites_count + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust favorites count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArticleDomain converts a GORM ArticleModel to a domain Article entity.
func toArticleDomain(data *model.ArticleModel) *entity.Article {
	if data == nil {
		return nil
	}

	tags := make([]string, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, tag.Tag)
	}

	var deletedAt *time.Time
	if data.DeletedAt.Valid {
		t := data.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Article{
		ID:             data.ID,
		Slug:           data.Slug,
		Title:          data.Title,
		Description:    data.Description,
		Body:           data.Body,
		TagList:        tags,
		FavoritesCount: data.FavoritesCount,
		AuthorID:       data.AuthorID,
		Author:         toUserDomain(data.Author),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// fromArticleDomain converts a domain Article entity to a GORM ArticleModel for persistence.
func fromArticleDomain(data *entity.Article) *model.ArticleModel {
	if data == nil {
		return nil
	}

	tags := make([]model.ArticleTagModel, 0, len(data.TagList))
	for _, tag := range data.TagList {
		tags = append(tags, model.ArticleTagModel{Tag: tag, ArticleID: data.ID})
	}

	return &model.ArticleModel{
		ID:             data.ID,
		Slug:           data.Slug,
		Title:          data.Title,
		Description:    data.Description,
		Body:           data.Body,
		FavoritesCount: data.FavoritesCount,
		AuthorID:       data.AuthorID,
		Tags:           tags,
	}
}
