package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
)

// schemes is the curated list of government support schemes. An empty
// State or nil CropTypes means the scheme is not restricted on that axis.
var schemes = []model.Scheme{
	{
		Name:        "PM-KISAN Income Support",
		Description: "Direct income support to farmer families.",
		Benefit:     "Rs. 6,000/year",
		Link:        "https://pmkisan.gov.in",
	},
	{
		Name:        "Soil Health Card Scheme",
		Description: "Free soil testing and recommendations.",
		Benefit:     "Free soil testing",
		Link:        "https://soilhealth.dac.gov.in",
	},
	{
		Name:        "Interest Subvention for Short Term Crop Loans",
		Description: "Subsidized interest for crop loans.",
		Benefit:     "Up to 3% subsidy",
		Link:        "https://www.nabard.org",
	},
	{
		Name:        "State Micro Irrigation Subsidy",
		Description: "Drip/sprinkler irrigation subsidy.",
		State:       "Tamil Nadu",
		CropTypes:   []string{"Paddy", "Sugarcane", "Vegetables"},
		Benefit:     "Up to 55% subsidy",
		Link:        "https://tnhorticulture.tn.gov.in",
	},
}

type schemeQuery struct {
	State string `json:"state"`
	Crop  string `json:"crop"`
}

// FindSchemes filters the curated scheme list. A scheme is kept when it
// has no restriction on the queried axis or the restriction matches:
// states compare case-insensitively, crops by exact list membership.
func FindSchemes(c echo.Context) error {
	var q schemeQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res := make([]model.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if q.State != "" && s.State != "" && !strings.EqualFold(s.State, q.State) {
			continue
		}
		if q.Crop != "" && s.CropTypes != nil && !containsCrop(s.CropTypes, q.Crop) {
			continue
		}
		res = append(res, s)
	}
	return c.JSON(http.StatusOK, echo.Map{"schemes": res})
}

func containsCrop(crops []string, crop string) bool {
	for _, cr := range crops {
		if cr == crop {
			return true
		}
	}
	return false
}
