package entity

import "time"

// Favorite is a directed edge from a user to an article, unique per pair.
// Each edge is paired with an increment of the article's denormalized
// FavoritesCount; the two are maintained together by the article service.
type Favorite struct {
	UserID    int64
	ArticleID int64
	CreatedAt time.Time
}
