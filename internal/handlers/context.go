package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sajid-dev/bloghub/backend/internal/middleware"
	"github.com/sajid-dev/bloghub/backend/internal/models"
)

// getUserIDFromContext returns the authenticated user's ID stored by the JWT
// middleware, or 0 if the request carries no identity
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// getUploadedFile returns the filename stored by the upload middleware, or
// nil when no file was supplied with the request
func getUploadedFile(c echo.Context) *string {
	filename, ok := c.Get(middleware.UploadedFileKey).(string)
	if !ok || filename == "" {
		return nil
	}
	return &filename
}
