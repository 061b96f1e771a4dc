package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sajid-dev/bloghub/backend/internal/auth"
	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/sajid-dev/bloghub/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	tokenService   *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		tokenService:   tokens,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, profileUpload echo.MiddlewareFunc) {
	g.POST("/signup", h.Signup, profileUpload)
	g.POST("/login", h.Login)
}

// Signup handles user registration with email and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	}

	// Check if user with this email already exists
	_, err := h.userRepository.GetUserByEmail(req.Email)
	if err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User with this email already exists.")
	}
	if err != gorm.ErrRecordNotFound {
		return echo.NewHTTPError(http.StatusInternalServerError, "User creation failed. Please try again.")
	}

	// Hash the password; the raw password is never stored or logged
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "User creation failed. Please try again.")
	}

	user := &models.User{
		Email:        req.Email,
		Password:     string(hashedPassword),
		ProfileImage: getUploadedFile(c),
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		c.Logger().Errorf("Error during signup: %v", err)
		return echo.NewHTTPError(http.StatusBadRequest, "User creation failed. Please try again.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user":    user.ToResponse(),
	})
}

// Login handles user authentication with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	}

	// Retrieve user by email
	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	// Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		c.Logger().Errorf("Error during login: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed. Please try again.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"user":    user.ToResponse(),
	})
}
