// This file defines the soil analysis and irrigation planning endpoints.
// Both accept typed request records with explicit defaults for omitted
// fields rather than open-ended key-value maps, so unrecognized fields are
// simply ignored by the JSON decoder.
package handler

import (
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// soilAnalysisReq carries the soil measurements. Pointer fields distinguish
// "omitted" from a literal zero so defaults only apply when a field is
// absent.
type soilAnalysisReq struct {
	PH       *float64 `json:"ph"`
	Moisture *float64 `json:"moisture"`
	Organic  *float64 `json:"organic"`
}

// SoilAnalysis applies threshold rules to the supplied measurements.
// Defaults: ph 6.8, moisture 45, organic 1.2.
func SoilAnalysis(c echo.Context) error {
	var req soilAnalysisReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ph := valueOr(req.PH, 6.8)
	moisture := valueOr(req.Moisture, 45)
	organic := valueOr(req.Organic, 1.2)

	var advice []string
	if ph < 6.5 {
		advice = append(advice, "Apply lime to raise pH")
	}
	if organic < 1.5 {
		advice = append(advice, "Incorporate farmyard manure/compost")
	}
	if moisture < 40 {
		advice = append(advice, "Schedule drip irrigation every 3 days")
	}
	if len(advice) == 0 {
		advice = []string{"Maintain current practices"}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "Moderate", "advice": advice})
}

// irrigationPlanReq carries the irrigation planning inputs. Defaults:
// crop Paddy, area 1, method drip.
type irrigationPlanReq struct {
	Crop   string   `json:"crop"`
	Area   *float64 `json:"area"`
	Method string   `json:"method"`
}

// IrrigationPlan estimates daily water demand in liters. Paddy needs 6
// liters per square unit, everything else 3; drip delivers at 90%
// efficiency, other methods at 70%.
func IrrigationPlan(c echo.Context) error {
	var req irrigationPlanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	crop := req.Crop
	if crop == "" {
		crop = "Paddy"
	}
	area := valueOr(req.Area, 1)
	method := req.Method
	if method == "" {
		method = "drip"
	}

	waterNeed := 3.0
	if strings.EqualFold(crop, "paddy") {
		waterNeed = 6.0
	}
	efficiency := 0.7
	if method == "drip" {
		efficiency = 0.9
	}
	dailyLiters := math.Round(area*waterNeed*1000/efficiency*10) / 10

	return c.JSON(http.StatusOK, echo.Map{
		"crop":         crop,
		"area":         area,
		"method":       method,
		"daily_liters": dailyLiters,
		"tips":         []string{"Irrigate at dawn", "Mulch to reduce evaporation"},
	})
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
