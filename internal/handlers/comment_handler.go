package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/sajid-dev/bloghub/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	userRepository    repositories.UserRepository // To resolve author names in listings
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		userRepository:    userRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, authGate echo.MiddlewareFunc) {
	g.POST("/comments", h.AddComment, authGate)
	g.GET("/comments/:blogId", h.GetComments)
	g.DELETE("/comments/:commentId", h.DeleteComment, authGate)
}

// AddComment creates a new comment, optionally threaded under a parent
// comment. Blog existence is not verified before insert.
func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Content and blog ID are required.")
	}

	blogID, err := primitive.ObjectIDFromHex(req.BlogID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid blog ID")
	}

	comment := &models.Comment{
		BlogID:  blogID,
		UserID:  userID,
		Content: req.Content,
	}
	if req.ParentComment != "" {
		parentID, err := primitive.ObjectIDFromHex(req.ParentComment)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid parent comment ID")
		}
		comment.ParentComment = &parentID
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		c.Logger().Errorf("Error adding comment: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add comment. Please try again.")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"comment": comment,
	})
}

// GetComments retrieves all comments for a blog, newest first, with author
// names resolved and parent comments populated as full objects
func (h *CommentHandler) GetComments(c echo.Context) error {
	comments, err := h.commentRepository.GetCommentsByBlogID(c.Request().Context(), c.Param("blogId"))
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid blog ID")
		}
		c.Logger().Errorf("Error retrieving comments: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve comments. Please try again.")
	}

	// Parents usually live in the same listing; index it before resolving
	byID := make(map[string]*models.Comment, len(comments))
	for i := range comments {
		byID[comments[i].ID.Hex()] = &comments[i]
	}

	userMap := make(map[uint]string)
	formatted := make([]models.CommentResponse, len(comments))
	for i, comment := range comments {
		name, ok := userMap[comment.UserID]
		if !ok {
			if user, err := h.userRepository.GetUserByID(comment.UserID); err == nil {
				name = user.Name
			}
			userMap[comment.UserID] = name
		}

		formatted[i] = models.CommentResponse{
			ID:        comment.ID.Hex(),
			BlogID:    comment.BlogID.Hex(),
			User:      models.CommentAuthor{ID: comment.UserID, Name: name},
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}

		if comment.ParentComment != nil {
			formatted[i].ParentComment = h.resolveParent(c, byID, comment.ParentComment)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"comments": formatted,
	})
}

// DeleteComment deletes a comment by id. Replies to the comment are left in
// place.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	err := h.commentRepository.DeleteComment(c.Request().Context(), c.Param("commentId"))
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found.")
		}
		c.Logger().Errorf("Error deleting comment: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete comment. Please try again.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Comment deleted.",
	})
}

// resolveParent looks a parent comment up in the already-fetched listing and
// falls back to a direct lookup for parents on other pages of history. A
// parent that no longer exists resolves to nil.
func (h *CommentHandler) resolveParent(c echo.Context, byID map[string]*models.Comment, parentID *primitive.ObjectID) *models.Comment {
	if parent, ok := byID[parentID.Hex()]; ok {
		return parent
	}
	parent, err := h.commentRepository.GetCommentByID(c.Request().Context(), parentID.Hex())
	if err != nil {
		return nil
	}
	return parent
}
