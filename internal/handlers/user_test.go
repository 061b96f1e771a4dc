package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sajid-dev/bloghub/backend/internal/middleware"
	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileContext(method, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/api/profile", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/api/profile", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func TestGetProfileExcludesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateUser(&models.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}))

	h := NewUserHandler(userRepo)

	c, rec := profileContext(http.MethodGet, "", 1)
	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestGetProfileUnknownUser(t *testing.T) {
	h := NewUserHandler(newFakeUserRepo())

	c, _ := profileContext(http.MethodGet, "", 99)
	err := h.GetProfile(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateProfilePartial(t *testing.T) {
	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.CreateUser(&models.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}))

	h := NewUserHandler(userRepo)

	c, rec := profileContext(http.MethodPut, `{"name":"Alicia"}`, 1)
	c.Set(middleware.UploadedFileKey, "1700000000000000000.png")

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	updated := userRepo.users[1]
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email, "absent fields are left untouched")
	require.NotNil(t, updated.ProfileImage)
	assert.Equal(t, "1700000000000000000.png", *updated.ProfileImage)
}
