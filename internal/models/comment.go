package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a blog, optionally threaded under a parent
// comment. ParentComment is a weak reference resolved by lookup at read time.
type Comment struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	BlogID        primitive.ObjectID  `json:"blog_id" bson:"blog_id"`
	UserID        uint                `json:"user_id" bson:"user_id"`
	Content       string              `json:"content" bson:"content"`
	ParentComment *primitive.ObjectID `json:"parent_comment,omitempty" bson:"parent_comment,omitempty"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	BlogID        string `json:"blogId" form:"blogId" validate:"required"`
	Content       string `json:"content" form:"content" validate:"required"`
	ParentComment string `json:"parentComment,omitempty" form:"parentComment"`
}

// CommentAuthor is the compact user shape embedded in comment listings
type CommentAuthor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentResponse is a comment with the author resolved and the parent
// comment populated as a full object rather than a bare id
type CommentResponse struct {
	ID            string        `json:"id"`
	BlogID        string        `json:"blog_id"`
	User          CommentAuthor `json:"user"`
	Content       string        `json:"content"`
	ParentComment *Comment      `json:"parentComment"`
	CreatedAt     time.Time     `json:"created_at"`
}
