package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"` // Ensure email is unique across all users
	Password     string    `json:"-"`                                 // Store hashed password, ignore for JSON serialization
	ProfileImage *string   `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest defines the body for local user registration
type SignupRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginRequest defines the body for local user authentication
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UpdateProfileRequest defines the body for partial profile updates
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty" form:"name" validate:"omitempty,min=2,max=50"`
	Email string `json:"email,omitempty" form:"email" validate:"omitempty,email"`
}

// UserResponse is the public shape of a user embedded in auth responses
type UserResponse struct {
	ID           uint    `json:"id"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
