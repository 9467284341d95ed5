package model

import "time"

// FollowModel mirrors the 'user_follows' table. The composite primary
// key is the uniqueness guarantee for the directed edge: the database
// enforces at most one row per ordered (follower, followee) pair.
type FollowModel struct {
	FollowerID int64 `gorm:"primaryKey;autoIncrement:false"`
	FolloweeID int64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "user_follows"
}
