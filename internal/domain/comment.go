package domain

import "time"

type CommentAuthor struct {
	Id        ProfileId
	Name      string
	AvatarRef string
}

type Comment struct {
	Id        CommentId
	PostId    ServerId
	Author    CommentAuthor
	Text      string
	CreatedAt time.Time
}
