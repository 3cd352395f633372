package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// marketPrice is one mandi price row. The base rows are demo data; state
// and last_updated are stamped per request.
type marketPrice struct {
	Crop        string `json:"crop"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Unit        string `json:"unit"`
	State       string `json:"state"`
	LastUpdated string `json:"last_updated"`
}

var basePrices = []marketPrice{
	{Crop: "Paddy", Min: 1500, Max: 2100, Unit: "Rs/quintal"},
	{Crop: "Wheat", Min: 1700, Max: 2200, Unit: "Rs/quintal"},
	{Crop: "Tomato", Min: 10, Max: 30, Unit: "Rs/kg"},
}

// MarketUpdates returns mock mandi prices, optionally filtered by the
// ?crop= query parameter (case-insensitive). The ?state= parameter is
// echoed back on every row. Responses are cacheable, so this route sits
// behind the Redis response cache.
func MarketUpdates(c echo.Context) error {
	crop := c.QueryParam("crop")
	state := c.QueryParam("state")
	now := time.Now().UTC().Format(time.RFC3339)

	data := make([]marketPrice, 0, len(basePrices))
	for _, p := range basePrices {
		if crop != "" && !strings.EqualFold(p.Crop, crop) {
			continue
		}
		p.State = state
		p.LastUpdated = now
		data = append(data, p)
	}
	return c.JSON(http.StatusOK, echo.Map{"prices": data})
}
