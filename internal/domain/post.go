package domain

import "time"

// Author is the denormalized display identity attached to a post.
// Seed posts carry one; posts returned by the remote service may not,
// in which case rendering falls back to the current actor's profile.
type Author struct {
	Name      string
	Handle    string
	AvatarRef string
}

type Post struct {
	LocalKey LocalKey // unique within the collection, never sent to the server
	ServerId ServerId // empty for seed posts
	Author   *Author
	Text     string
	Location string
	ImageRef string // opaque filename resolved by the static-asset host

	LikeCount    int
	Liked        bool // session-local, never persisted
	CommentCount int

	CreatedAt time.Time
}

// Persisted reports whether the post is known to the remote collaborator.
// Only persisted posts can be deleted or have comment threads.
func (p *Post) Persisted() bool {
	return p.ServerId != ""
}
