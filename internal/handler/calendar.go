package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
	"github.com/agrimitra/smart-crop-advisory/internal/repository"
)

// CalendarHandler serves the per-farmer crop calendar.
type CalendarHandler struct {
	Repo *repository.CalendarRepo
}

func NewCalendarHandler(r *repository.CalendarRepo) *CalendarHandler {
	return &CalendarHandler{Repo: r}
}

// calendarItem is the wire shape of one calendar entry; dates go out as
// RFC 3339 strings.
type calendarItem struct {
	ID       string `json:"id,omitempty"`
	FarmerID string `json:"farmer_id"`
	Crop     string `json:"crop"`
	Phase    string `json:"phase"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
}

// Calendar lists the farmer's calendar sorted by date. A farmer with no
// calendar yet gets a starter paddy season seeded on first read so the
// mobile client always has something to render.
func (h *CalendarHandler) Calendar(c echo.Context) error {
	farmerID, _ := c.Get("farmer_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Repo.ListForFarmer(ctx, farmerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load calendar failed"})
	}
	if len(items) == 0 {
		seed := starterCalendar(farmerID, time.Now().UTC())
		if err := h.Repo.InsertMany(ctx, seed); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed calendar failed"})
		}
		items, err = h.Repo.ListForFarmer(ctx, farmerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load calendar failed"})
		}
	}

	out := make([]calendarItem, 0, len(items))
	for _, it := range items {
		id := ""
		if !it.ID.IsZero() {
			id = it.ID.Hex()
		}
		out = append(out, calendarItem{
			ID:       id,
			FarmerID: it.FarmerID,
			Crop:     it.Crop,
			Phase:    it.Phase,
			Date:     it.Date.Format(time.RFC3339),
			Note:     it.Note,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// starterCalendar builds the sample paddy season relative to now.
func starterCalendar(farmerID string, now time.Time) []model.CropCalendarItem {
	mk := func(phase string, days int, note string) model.CropCalendarItem {
		return model.CropCalendarItem{
			FarmerID: farmerID,
			Crop:     "Paddy",
			Phase:    phase,
			Date:     now.AddDate(0, 0, days),
			Note:     note,
		}
	}
	return []model.CropCalendarItem{
		mk("sowing", 1, "Prepare nursery bed"),
		mk("irrigation", 3, "Light irrigation"),
		mk("fertilizer", 7, "Apply DAP"),
		mk("pest", 12, "Monitor for leaf folder"),
		mk("harvest", 90, "Expected harvest"),
	}
}
