package entity

import "time"

// Follow is a directed edge from one user to another, unique per ordered
// pair. A self-referencing edge (follower == followee) is never created.
type Follow struct {
	FollowerID int64
	FolloweeID int64
	CreatedAt  time.Time
}
