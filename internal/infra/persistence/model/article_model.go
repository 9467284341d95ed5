package model

import (
	"time"

	"gorm.io/gorm"
)

// ArticleModel mirrors the 'articles' table. The slug is unique across
// all rows, deleted included: soft deletion rewrites the slug to a hash
// so the unique index never blocks a new article from reusing the
// human-readable value.
type ArticleModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Slug           string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title          string `gorm:"type:varchar(255);not null"`
	Description    string `gorm:"type:text"`
	Body           string `gorm:"type:text"`
	FavoritesCount int32  `gorm:"not null;default:0"`
	AuthorID       int64  `gorm:"index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Author *UserModel        `gorm:"foreignKey:AuthorID"`
	Tags   []ArticleTagModel `gorm:"foreignKey:ArticleID"`
}

// TableName explicitly sets the table name for GORM.
func (ArticleModel) TableName() string {
	return "articles"
}

// ArticleTagModel mirrors the 'article_tags' table, one row per tag per
// article.
type ArticleTagModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Tag       string `gorm:"type:varchar(100);not null;uniqueIndex:idx_article_tag"`
	ArticleID int64  `gorm:"not null;uniqueIndex:idx_article_tag"`
}

// TableName explicitly sets the table name for GORM.
func (ArticleTagModel) TableName() string {
	return "article_tags"
}
