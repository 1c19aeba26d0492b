package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("only the author can modify this post")
	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post is not liked")
)
