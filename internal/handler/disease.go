package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DiseaseHandler implements the image-based disease detection demo. The
// diagnosis is a byte-pattern heuristic, not a model inference; it exists
// so the mobile flow can be exercised end to end before a real classifier
// is plugged in.
type DiseaseHandler struct{}

func NewDiseaseHandler() *DiseaseHandler { return &DiseaseHandler{} }

// Images below this size cannot carry enough detail to score.
const minImageBytes = 10000

// scoreWindow is how many leading bytes participate in the heuristic.
const scoreWindow = 5000

// Detect accepts a multipart image upload with an optional crop field and
// returns a diagnosis with a treatment suggestion.
func (h *DiseaseHandler) Detect(c echo.Context) error {
	crop := c.FormValue("crop")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}

	diagnosis, treatment := diagnose(content)
	return c.JSON(http.StatusOK, echo.Map{
		"crop":      crop,
		"diagnosis": diagnosis,
		"treatment": treatment,
	})
}

// diagnose scores the leading bytes of the image and maps the score onto
// one of three canned diagnoses. Small images short-circuit to a low
// confidence answer.
func diagnose(content []byte) (diagnosis, treatment string) {
	if len(content) < minImageBytes {
		return "Low confidence: image too small. Possible nutrient deficiency.",
			"Apply balanced micronutrient spray; retake a clearer photo."
	}
	window := content
	if len(window) > scoreWindow {
		window = window[:scoreWindow]
	}
	var sum int
	for _, b := range window {
		sum += int(b)
	}
	score := float64(sum%100) / 100

	switch {
	case score > 0.6:
		return "Likely Leaf Blight",
			"Remove affected leaves, apply recommended fungicide (mancozeb)."
	case score > 0.3:
		return "Possible Powdery Mildew",
			"Improve airflow, apply sulfur-based spray during evening."
	default:
		return "Aphid/Pest infestation suspected",
			"Use neem oil or appropriate insecticide; monitor sticky traps."
	}
}
