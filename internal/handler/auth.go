package handler

import (
	"context"              // provides context with cancellation for store calls
	"errors"               // sentinel error matching
	"net/http"             // HTTP status codes and primitives
	"strings"              // string manipulation utilities
	"time"                 // timeouts for store calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/agrimitra/smart-crop-advisory/internal/queue"   // notification event payloads
	"github.com/agrimitra/smart-crop-advisory/internal/service" // OTP and session core
)

// AuthHandler bundles dependencies for the OTP auth endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(a *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: a}
}

// ----- DTOs -----

type otpStartReq struct {
	Phone    string `json:"phone"`
	FarmerID string `json:"farmer_id"`
}
type otpVerifyReq struct {
	Phone    string `json:"phone"`
	OTP      string `json:"otp"`
	FarmerID string `json:"farmer_id"`
	Aadhaar  string `json:"aadhaar"`
	Language string `json:"language"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type otpStartResp struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	DemoOTP string `json:"demo_otp"`
}
type tokenResp struct {
	Token     string `json:"token"`
	FarmerID  string `json:"farmer_id"`
	ExpiresIn int    `json:"expires_in"`
}

// RequestOTP: issue a fresh challenge for a phone number. The plaintext
// code is echoed in demo_otp instead of being sent over SMS; a production
// deployment hands it to an SMS provider and drops the field.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req otpStartReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	delivery, err := h.Auth.RequestOTP(ctx, req.Phone, strings.TrimSpace(req.FarmerID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue otp failed"})
	}

	return c.JSON(http.StatusOK, otpStartResp{
		Message: "OTP sent",
		Phone:   delivery.MaskedPhone,
		DemoOTP: delivery.Code,
	})
}

// VerifyOTP: check the code against the latest challenge, upsert the
// farmer profile and return a bearer token. Invalid and expired codes both
// answer 400 with distinct messages so clients can prompt for a re-issue.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req otpVerifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Phone = strings.TrimSpace(req.Phone)
	req.OTP = strings.TrimSpace(req.OTP)
	if req.Phone == "" || req.OTP == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone/otp required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	grant, err := h.Auth.VerifyOTP(ctx, service.Verification{
		Phone:    req.Phone,
		FarmerID: strings.TrimSpace(req.FarmerID),
		Aadhaar:  req.Aadhaar,
		Language: req.Language,
		Name:     req.Name,
		Location: req.Location,
	}, req.OTP)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid otp"})
		}
		if errors.Is(err, service.ErrCredentialExpired) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "otp expired"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "verification failed"})
	}

	// Let the notification consumer record the login; failures only cost
	// the in-app notification, never the session.
	ev := queue.FarmerNotificationEvent{
		FarmerID:  grant.FarmerID,
		Title:     "Welcome back",
		Message:   "You signed in to Smart Crop Advisory.",
		Level:     "info",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = service.PublishFarmerNotification(pubCtx, ev)
	}()

	return c.JSON(http.StatusOK, tokenResp{
		Token:     grant.Token,
		FarmerID:  grant.FarmerID,
		ExpiresIn: grant.ExpiresIn,
	})
}
