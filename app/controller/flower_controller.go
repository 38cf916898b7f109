package controller

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/service"
)

// FlowerController handles HTTP requests for the flower catalog
type FlowerController struct {
	flowers service.FlowerServiceInterface
	images  service.ImageServiceInterface
}

// NewFlowerController creates a new FlowerController
func NewFlowerController(flowers service.FlowerServiceInterface, images service.ImageServiceInterface) *FlowerController {
	return &FlowerController{
		flowers: flowers,
		images:  images,
	}
}

// ListFlowers handles GET /flowers?search=
func (c *FlowerController) ListFlowers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	flowers, err := c.flowers.SearchFlowers(r.Context(), search)
	if err != nil {
		writeError(w, r, "ListFlowers", err)
		return
	}

	logging.Ctx(r.Context()).Debug().Str("search", search).Int("count", len(flowers)).Msg("✅ ListFlowers")
	writeJSON(w, http.StatusOK, flowers)
}

// GetFlower handles GET /flowers/{flowerId}
func (c *FlowerController) GetFlower(w http.ResponseWriter, r *http.Request) {
	flower, err := c.flowers.GetFlower(r.Context(), chi.URLParam(r, "flowerId"))
	if err != nil {
		writeError(w, r, "GetFlower", err)
		return
	}

	writeJSON(w, http.StatusOK, flower)
}

// GetImage handles GET /flowers/{flowerId}/image?size=thumb|medium
// Returns an optimized JPEG, cached on disk
func (c *FlowerController) GetImage(w http.ResponseWriter, r *http.Request) {
	flowerID := chi.URLParam(r, "flowerId")

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = service.SizeMedium
	}
	if !service.IsValidImageSize(size) {
		logging.Ctx(r.Context()).Warn().Str("size", size).Msg("❌ GetImage: Invalid size")
		writeProblem(w, r, models.InvalidInputValue, "size 값은 thumb 또는 medium 이어야 합니다.")
		return
	}

	data, err := c.images.GetOptimizedImage(r.Context(), flowerID, size)
	if err != nil {
		writeError(w, r, "GetImage", err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("❌ GetImage: Error writing image")
	}
}
