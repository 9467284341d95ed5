package entity

import "time"

// Comment is an authored remark on an article. Comments soft-delete like
// articles but have no externally addressed slug, so nothing is recycled.
type Comment struct {
	ID        int64
	Body      string
	AuthorID  int64
	Author    *User
	ArticleID int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
