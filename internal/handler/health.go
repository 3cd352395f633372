package handler // declare the package name; contains HTTP handlers

import (
	"context"           // bounded contexts for the connectivity probe
	"net/http"          // net/http provides status codes and response helpers
	"time"              // probe timeout

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrimitra/smart-crop-advisory/internal/database"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root identifies the API for clients probing the base URL.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":   "Smart Crop Advisory API",
		"status": "ok",
	})
}

// ProbeHandler exposes a connectivity probe over the document store.
type ProbeHandler struct {
	DB *mongo.Database
}

// Test reports whether the backend and its database are reachable, listing
// up to ten collection names when they are.  It never fails the request:
// database trouble is reported in the payload so the probe stays usable
// for diagnosing a broken deployment.
func (h *ProbeHandler) Test(c echo.Context) error {
	resp := echo.Map{"backend": "running"}
	if h.DB == nil {
		resp["database"] = "not configured"
		return c.JSON(http.StatusOK, resp)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	names, err := database.CollectionNames(ctx, h.DB, 10)
	if err != nil {
		resp["database"] = "error: " + err.Error()
		return c.JSON(http.StatusOK, resp)
	}
	resp["database"] = "connected"
	resp["collections"] = names
	return c.JSON(http.StatusOK, resp)
}
