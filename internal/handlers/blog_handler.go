package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/sajid-dev/bloghub/backend/internal/repositories"
)

// BlogHandler handles HTTP requests related to blogs
type BlogHandler struct {
	blogRepository repositories.BlogRepository
	userRepository repositories.UserRepository
	baseURL        string
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository, baseURL string) *BlogHandler {
	return &BlogHandler{
		blogRepository: blogRepo,
		userRepository: userRepo,
		baseURL:        baseURL,
	}
}

// RegisterBlogRoutes registers blog-related routes
func (h *BlogHandler) RegisterBlogRoutes(g *echo.Group, authGate, imageUpload echo.MiddlewareFunc) {
	g.POST("/blogs", h.CreateBlog, authGate, imageUpload)
	g.GET("/blogs", h.GetBlogs)
	g.GET("/blogs/:id", h.GetBlogByID)
	g.PUT("/blogs/:id", h.UpdateBlog, authGate, imageUpload)
	g.DELETE("/blogs/:id", h.DeleteBlog, authGate, imageUpload)
}

// CreateBlog creates a new blog owned by the authenticated user
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and description are required.")
	}

	blog := &models.Blog{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}
	if image := getUploadedFile(c); image != nil {
		blog.Image = *image
	}

	if err := h.blogRepository.CreateBlog(c.Request().Context(), blog); err != nil {
		c.Logger().Errorf("Error creating blog: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create blog. Please try again.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"blog":    blog,
	})
}

// GetBlogs returns a page of blogs with author names denormalized
func (h *BlogHandler) GetBlogs(c echo.Context) error {
	page, limit := 1, 10
	var err error

	if pageParam := c.QueryParam("page"); pageParam != "" {
		page, err = strconv.Atoi(pageParam)
		if err != nil || page <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page or limit parameters.")
		}
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page or limit parameters.")
		}
	}

	skip := int64((page - 1) * limit)

	blogs, err := h.blogRepository.GetBlogs(c.Request().Context(), skip, int64(limit))
	if err != nil {
		c.Logger().Errorf("Error fetching blogs: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch blogs. Please try again.")
	}

	totalBlogs, err := h.blogRepository.CountBlogs(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error counting blogs: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch blogs. Please try again.")
	}

	// Resolve author names for the page in one pass
	userMap := make(map[uint]string)
	for _, blog := range blogs {
		if _, ok := userMap[blog.UserID]; ok {
			continue
		}
		if user, err := h.userRepository.GetUserByID(blog.UserID); err == nil {
			userMap[blog.UserID] = user.Name
		}
	}

	formatted := make([]models.BlogResponse, len(blogs))
	for i, blog := range blogs {
		formatted[i] = h.toBlogResponse(&blog, userMap[blog.UserID])
	}

	totalPages := int(math.Ceil(float64(totalBlogs) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"totalBlogs":  totalBlogs,
		"currentPage": page,
		"totalPages":  totalPages,
		"blogs":       formatted,
	})
}

// GetBlogByID retrieves a single blog with its author name resolved
func (h *BlogHandler) GetBlogByID(c echo.Context) error {
	blog, err := h.blogRepository.GetBlogByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found.")
		}
		c.Logger().Errorf("Error fetching blog by ID: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch blog. Please try again.")
	}

	author := ""
	if user, err := h.userRepository.GetUserByID(blog.UserID); err == nil {
		author = user.Name
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"blog":    h.toBlogResponse(blog, author),
	})
}

// UpdateBlog applies a partial update to a blog. No ownership check is
// performed beyond requiring authentication.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	var req models.UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if image := getUploadedFile(c); image != nil {
		fields["image"] = *image
	}

	blog, err := h.blogRepository.UpdateBlog(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found.")
		}
		c.Logger().Errorf("Error updating blog: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update blog. Please try again.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"blog":    blog,
	})
}

// DeleteBlog deletes a blog by id. Comments on the blog are not cascaded.
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	err := h.blogRepository.DeleteBlog(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog not found.")
		}
		c.Logger().Errorf("Error deleting blog: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete blog. Please try again.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Blog deleted successfully.",
	})
}

func (h *BlogHandler) toBlogResponse(blog *models.Blog, author string) models.BlogResponse {
	if author == "" {
		author = "Unknown"
	}
	resp := models.BlogResponse{
		ID:          blog.ID.Hex(),
		Title:       blog.Title,
		Description: blog.Description,
		Author:      author,
	}
	if blog.Image != "" {
		url := h.baseURL + "/uploads/" + blog.Image
		resp.Image = &url
	}
	return resp
}
