package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"               // bounded contexts for store lookups
	"errors"                // sentinel error matching
	"net/http"              // HTTP status codes for responses
	"strings"               // string utilities for prefix checking and trimming
	"time"                  // timeout durations

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/agrimitra/smart-crop-advisory/internal/service"
)

// SessionValidator resolves a bearer token to a farmer identifier.
// Implemented by service.AuthService.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// SessionAuth returns an Echo middleware that resolves the request's bearer
// token against the session store and injects the bound farmer identifier
// into the request context under "farmer_id".  The token is read from the
// Authorization header ("Bearer <token>") or, failing that, from a ?token=
// query parameter, which is how the original mobile clients pass it.
//
// Validation happens on every request — there is no cross-request caching
// of results, so an expired session is rejected the moment its expiry
// passes.  Missing or unknown tokens and expired sessions both answer 401;
// a storage failure answers 500.
func SessionAuth(v SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Prefer the Authorization header; fall back to the query
			// parameter for clients that cannot set headers.
			token := ""
			if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
			if token == "" {
				token = c.QueryParam("token")
			}
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			farmerID, err := v.ValidateSession(ctx, token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
				}
				if errors.Is(err, service.ErrSessionExpired) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
			}

			// Store the farmer identifier for handlers downstream.
			c.Set("farmer_id", farmerID)
			return next(c)
		}
	}
}
