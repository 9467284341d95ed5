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

// followRepository implements the domain.FollowRepository interface using GORM.
// ON CONFLICT DO NOTHING against the composite primary key gives both
// directions of idempotency without a read-before-write.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge if it does not exist. Re-creating an existing
// edge is a no-op.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := &model.FollowModel{
		FollowerID: follow.FollowerID,
		FolloweeID: follow.FolloweeID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(followM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("followed user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow edge")
	}

	return nil
}

// Delete removes the edge if present. Deleting an absent edge is a no-op.
func (repo *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow edge")
	}

	return nil
}

// Exists reports whether the (follower, followee) edge is present.
func (repo *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseQueryError(err, "failed to check follow edge")
	}

	return count > 0, nil
}
