package repositories

import "errors"

var (
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string
	ErrInvalidID = errors.New("invalid id format")
	// ErrBlogNotFound is returned when no blog matches the given id
	ErrBlogNotFound = errors.New("blog not found")
	// ErrCommentNotFound is returned when no comment matches the given id
	ErrCommentNotFound = errors.New("comment not found")
)
