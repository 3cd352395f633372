package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type chatReq struct {
	Text string `json:"text"`
}

// faqEntry pairs a trigger keyword with its canned answer. Entries are
// checked in order so a message matching several keywords gets a stable
// reply.
type faqEntry struct {
	keyword string
	reply   string
}

var faq = []faqEntry{
	{"loan", "You can apply for subsidized crop loans at your nearest bank under the Interest Subvention scheme."},
	{"soil", "Use the Soil Health Card scheme to test your soil for free."},
	{"irrigation", "Micro-irrigation (drip/sprinkler) saves up to 40% water."},
}

// Chat answers farmer questions by keyword lookup against the FAQ list,
// falling back to a generic acknowledgement.
func Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	text := strings.ToLower(req.Text)
	for _, e := range faq {
		if strings.Contains(text, e.keyword) {
			return c.JSON(http.StatusOK, echo.Map{"reply": e.reply})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reply": "Thanks for your message. Our advisory team will get back. Meanwhile, check Dashboard and Calendar for guidance.",
	})
}
