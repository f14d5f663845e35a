package domain

type (
	LocalKey  = string // client-generated, list identity only
	ServerId  = string // remote collaborator identity
	CommentId = string
	ProfileId = string
)
