package api

import "time"

// Wire records for the remote post/comment service. Every response wraps its
// payload in a {"data": ...} envelope.

type PostRecord struct {
	Id       string `json:"_id" validate:"required"`
	Desc     string `json:"desc,omitempty"`
	Location string `json:"location,omitempty"`
	PostImg  string `json:"postImg,omitempty"`
}

type UserRecord struct {
	Id         string `json:"_id"`
	Username   string `json:"username,omitempty"`
	Fullname   string `json:"fullname,omitempty"`
	ProfileImg string `json:"profileImg,omitempty"`
}

type CommentRecord struct {
	Id        string     `json:"_id" validate:"required"`
	Text      string     `json:"text"`
	PostId    string     `json:"postId"`
	UserId    UserRecord `json:"userId"` // author, populated by the server
	CreatedAt time.Time  `json:"createdAt"`
}

// Request DTOs

type CreateCommentRequest struct {
	PostId string `json:"postId" validate:"required"`
	UserId string `json:"userId" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// Response envelopes

type PostListResponse struct {
	Data []PostRecord `json:"data"`
}

type PostResponse struct {
	Data *PostRecord `json:"data"`
}

type CommentListResponse struct {
	Data []CommentRecord `json:"data"`
}

type CommentResponse struct {
	Data *CommentRecord `json:"data"`
}

type ProfileListResponse struct {
	Data []UserRecord `json:"data"`
}
