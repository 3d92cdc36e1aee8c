package models

// Follow is a directed edge: FollowerID receives FollowingID's posts in
// their feed. At most one edge exists per (follower, following) pair and
// self-edges are rejected at creation.
type Follow struct {
	ID          uint `json:"id"`
	FollowerID  uint `json:"followerId"`
	FollowingID uint `json:"followingId"`
}
