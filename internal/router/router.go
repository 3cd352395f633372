package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/agrimitra/smart-crop-advisory/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the API root, a health check and the
// database connectivity probe.
func RegisterRoutes(e *echo.Echo, probe *handler.ProbeHandler) {
	// The root responds with the API name so clients probing the base URL
	// get a recognizable answer.
	e.GET("/", handler.Root)
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	// The /test probe reports whether the document store is reachable and
	// lists a few collection names; it is intended for manual diagnosis.
	e.GET("/test", probe.Test)
}

// RegisterAuth registers the OTP authentication routes.  Both endpoints
// are unauthenticated by nature: they exist to produce the session token
// that every protected route requires.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/auth")
	// Request a one-time code for a phone number at /auth/request-otp.
	g.POST("/request-otp", a.RequestOTP)
	// Exchange a phone number and code for a bearer token at /auth/verify-otp.
	g.POST("/verify-otp", a.VerifyOTP)
}

// RegisterAdvisory registers the advisory endpoints.  The personalized
// routes (dashboard, calendar, disease detection) run behind the session
// middleware so handlers can read "farmer_id" from the context; the
// remaining routes serve the same data to everyone and stay public, with
// the read-mostly market updates sitting behind the Redis response cache.
func RegisterAdvisory(
	e *echo.Echo,
	d *handler.DashboardHandler,
	cal *handler.CalendarHandler,
	dis *handler.DiseaseHandler,
	session echo.MiddlewareFunc,
	cache echo.MiddlewareFunc,
) {
	// Protected group: every route validates the bearer token against the
	// session store before the handler runs.
	auth := e.Group("")
	auth.Use(session)
	auth.GET("/dashboard", d.Dashboard)
	auth.GET("/calendar", cal.Calendar)
	auth.POST("/disease-detect", dis.Detect)

	// Public advisory routes.
	e.POST("/schemes", handler.FindSchemes)
	e.GET("/market-updates", handler.MarketUpdates, cache)
	e.POST("/soil-analysis", handler.SoilAnalysis)
	e.POST("/irrigation-plan", handler.IrrigationPlan)
	e.POST("/chat", handler.Chat)
}
