package entity

import "time"

// Article is an authored post addressed externally by its slug.
// FavoritesCount is denormalized: it must always equal the number of
// Favorite edges referencing the article. DeletedAt marks a soft delete;
// a soft-deleted article keeps its row but gives up its human-readable
// slug (see the article service's slug recycling).
type Article struct {
	ID             int64
	Slug           string // Unique among live articles; rewritten on soft delete.
	Title          string
	Description    string
	Body           string
	TagList        []string
	FavoritesCount int32
	AuthorID       int64 // FK to User; authorship checks compare against this.
	Author         *User // Populated on reads for profile rendering.
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}
