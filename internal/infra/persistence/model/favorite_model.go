package model

import "time"

// FavoriteModel mirrors the 'user_favorite_articles' table. Like the
// follow edge, the composite primary key makes duplicates impossible at
// the storage level regardless of application races.
type FavoriteModel struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	ArticleID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "user_favorite_articles"
}
