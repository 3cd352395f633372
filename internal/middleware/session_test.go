package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrimitra/smart-crop-advisory/internal/service"
)

// stubValidator resolves a single known token.
type stubValidator struct {
	token    string
	farmerID string
	err      error
}

func (s *stubValidator) ValidateSession(_ context.Context, token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if token != s.token {
		return "", service.ErrUnauthenticated
	}
	return s.farmerID, nil
}

func runSession(t *testing.T, v SessionValidator, header, query string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	target := "/dashboard"
	if query != "" {
		target += "?token=" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Authorization", "Bearer "+header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := SessionAuth(v)(func(c echo.Context) error {
		seen, _ = c.Get("farmer_id").(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestSessionAuthMissingToken(t *testing.T) {
	rec, _ := runSession(t, &stubValidator{}, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthInvalidToken(t *testing.T) {
	rec, _ := runSession(t, &stubValidator{token: "good", farmerID: "F-1"}, "bad", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())
}

func TestSessionAuthExpired(t *testing.T) {
	rec, _ := runSession(t, &stubValidator{err: service.ErrSessionExpired}, "whatever", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"session expired"}`, rec.Body.String())
}

func TestSessionAuthStorageFailure(t *testing.T) {
	rec, _ := runSession(t, &stubValidator{err: assert.AnError}, "whatever", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSessionAuthBearerHeader(t *testing.T) {
	rec, seen := runSession(t, &stubValidator{token: "tok-123", farmerID: "F-7"}, "tok-123", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "F-7", seen)
}

func TestSessionAuthQueryFallback(t *testing.T) {
	rec, seen := runSession(t, &stubValidator{token: "tok-123", farmerID: "F-7"}, "", "tok-123")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "F-7", seen)
}
