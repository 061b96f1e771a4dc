package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog post stored in MongoDB
type Blog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	UserID      uint               `json:"user_id" bson:"user_id"` // Author, set from the authenticated identity at creation
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreateBlogRequest defines the request body for creating a new blog
type CreateBlogRequest struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
}

// UpdateBlogRequest defines the request body for updating an existing blog.
// Absent fields are left untouched.
type UpdateBlogRequest struct {
	Title       string `json:"title,omitempty" form:"title"`
	Description string `json:"description,omitempty" form:"description"`
}

// BlogResponse is a blog with the author name denormalized and the image
// rewritten to an absolute URL
type BlogResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Image       *string `json:"image"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
}
