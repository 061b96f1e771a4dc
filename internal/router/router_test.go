package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponse(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	httpErrorHandler(err, c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHTTPErrorHandlerEnvelope(t *testing.T) {
	code, body := errorResponse(t, echo.NewHTTPError(http.StatusNotFound, "Blog not found."))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Blog not found.", body["message"])
}

func TestHTTPErrorHandlerGenericMessageForUnexpectedErrors(t *testing.T) {
	code, body := errorResponse(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	// Internal detail is logged, never echoed to the client
	assert.Equal(t, "Something went wrong. Please try again.", body["message"])
}
