package postgres

import (
	"context"

	"conduit/internal/domain/entity"
	domainerrors "conduit/internal/domain/errors"
	"conduit/internal/domain/repository"
	"conduit/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
// RowsAffected after ON CONFLICT DO NOTHING tells the caller whether the
// edge actually changed, which is what keeps the denormalized counter honest.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts the edge if absent and reports whether a row was written.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) (bool, error) {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		ArticleID: favorite.ArticleID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrArticleNotFound.WrapMessage("favorited article does not exist")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create favorite edge")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the edge if present and reports whether a row was removed.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, articleID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite edge")
	}

	return result.RowsAffected > 0, nil
}

// Exists reports whether the (user, article) edge is present.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, articleID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseQueryError(err, "failed to check favorite edge")
	}

	return count > 0, nil
}
