package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/sajid-dev/bloghub/backend/internal/repositories"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group, authGate, profileUpload echo.MiddlewareFunc) {
	g.GET("/profile", h.GetProfile, authGate)
	g.PUT("/profile", h.UpdateProfile, authGate, profileUpload)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found.")
		}
		c.Logger().Errorf("Error retrieving profile: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve profile. Please try again.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}

// UpdateProfile updates the authenticated user's profile. Absent fields are
// left untouched.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found.")
		}
		c.Logger().Errorf("Error updating profile: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile. Please try again.")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if image := getUploadedFile(c); image != nil {
		user.ProfileImage = image
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		c.Logger().Errorf("Error updating profile: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile. Please try again.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}
