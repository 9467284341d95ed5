package model

import (
	"time"

	"gorm.io/gorm"
)

// CommentModel mirrors the 'comments' table. Comments soft-delete but
// carry no unique human-readable key, so nothing is rewritten.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Body      string `gorm:"type:text;not null"`
	AuthorID  int64  `gorm:"index;not null"`
	ArticleID int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
