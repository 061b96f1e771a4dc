package middleware

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// MaxUploadSize is the per-file upload cap (5 MiB)
const MaxUploadSize = 5 << 20

// UploadedFileKey is the echo context key the stored filename is attached under
const UploadedFileKey = "uploadedFile"

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// FileUpload validates a single optional image upload in the given multipart
// field and persists it under uploadDir with a time-based filename. The stored
// filename is attached to the echo context for the downstream handler. A
// missing file is not an error since all image fields are optional.
func FileUpload(field, uploadDir string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			file, err := c.FormFile(field)
			if err != nil {
				// No file supplied
				return next(c)
			}

			ext := strings.ToLower(filepath.Ext(file.Filename))
			if !allowedImageExts[ext] {
				return echo.NewHTTPError(http.StatusUnsupportedMediaType, "Only JPEG, JPG, and PNG images are allowed")
			}
			if mime := file.Header.Get("Content-Type"); !allowedImageMimes[mime] {
				return echo.NewHTTPError(http.StatusUnsupportedMediaType, "Only JPEG, JPG, and PNG images are allowed")
			}
			if file.Size > MaxUploadSize {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File exceeds the 5 MB upload limit")
			}

			src, err := file.Open()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read uploaded file")
			}
			defer src.Close()

			if err := os.MkdirAll(uploadDir, 0o755); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store uploaded file")
			}

			filename := strconv.FormatInt(time.Now().UnixNano(), 10) + ext
			dst, err := os.Create(filepath.Join(uploadDir, filename))
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store uploaded file")
			}
			defer dst.Close()

			if _, err := io.Copy(dst, src); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store uploaded file")
			}

			c.Set(UploadedFileKey, filename)

			return next(c)
		}
	}
}
