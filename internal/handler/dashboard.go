// This file defines the personalized dashboard endpoint. The dashboard
// aggregates the farmer's profile with rule-based crop recommendations and
// the soil, weather and irrigation advisories. The advisory blocks are
// curated demo data; the recommendation scores are derived from the
// farmer's registered crops.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
	"github.com/agrimitra/smart-crop-advisory/internal/repository"
)

// DashboardHandler aggregates the repositories backing the dashboard view.
type DashboardHandler struct {
	Farmers       *repository.FarmerRepo
	Notifications *repository.NotificationRepo
}

func NewDashboardHandler(f *repository.FarmerRepo, n *repository.NotificationRepo) *DashboardHandler {
	return &DashboardHandler{Farmers: f, Notifications: n}
}

// recommendation is one rule-based crop suggestion.
type recommendation struct {
	Crop   string  `json:"crop"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type weatherAlert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type activityEntry struct {
	Type string `json:"type"`
	Time string `json:"time"`
}

// Dashboard returns the farmer card, recommendations, advisory mocks and
// the latest notifications for the authenticated farmer.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	farmerID, _ := c.Get("farmer_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// A missing profile is not an error: a farmer who verified with only a
	// phone number gets a dashboard built from defaults.
	farmer, err := h.Farmers.ByFarmerID(ctx, farmerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}

	crops := farmer.Crops
	if len(crops) == 0 {
		crops = []string{"Paddy", "Wheat"}
	}
	if len(crops) > 2 {
		crops = crops[:2]
	}
	recs := make([]recommendation, 0, len(crops))
	for i, crop := range crops {
		recs = append(recs, recommendation{
			Crop:   crop,
			Score:  0.85 - float64(i)*0.1,
			Reason: "Based on seasonality and regional trends",
		})
	}

	notifications, err := h.Notifications.LatestForFarmer(ctx, farmerID, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load notifications failed"})
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}

	language := farmer.Language
	if language == "" {
		language = "en"
	}
	now := time.Now().UTC()

	return c.JSON(http.StatusOK, echo.Map{
		"farmer": echo.Map{
			"farmer_id": farmerID,
			"name":      farmer.Name,
			"location":  farmer.Location,
			"language":  language,
		},
		"recommendations": recs,
		"soil": echo.Map{
			"status":     "Moderate",
			"ph":         6.8,
			"nitrogen":   "Medium",
			"phosphorus": "Low",
			"potassium":  "Medium",
			"advice":     "Apply balanced NPK and add organic compost.",
		},
		"weather": echo.Map{
			"risk_level": "Medium",
			"alerts": []weatherAlert{
				{Type: "Rain", Message: "Light showers expected in 2 days."},
				{Type: "Heat", Message: "Afternoon temperature up to 34°C."},
			},
		},
		"irrigation_tips": []string{
			"Irrigate early morning to reduce evaporation",
			"Use mulching to retain soil moisture",
		},
		"notifications": notifications,
		"recent_activity": []activityEntry{
			{Type: "login", Time: now.Format(time.RFC3339)},
			{Type: "viewed_calendar", Time: now.Add(-2 * time.Hour).Format(time.RFC3339)},
		},
	})
}
