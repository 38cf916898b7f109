package controller

import (
	"fmt"
	"net/http"
	"strings"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/service"
	"kkotdam/validation"
)

// RecommendationController handles HTTP requests for flower combinations
type RecommendationController struct {
	recommendations service.RecommendationServiceInterface
	cards           service.CardServiceInterface
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendations service.RecommendationServiceInterface, cards service.CardServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendations: recommendations,
		cards:           cards,
	}
}

// Recommend handles POST /recommendations
func (c *RecommendationController) Recommend(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())
	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("📥 Recommend: Received request")

	req, ok := c.readRequest(w, r, "Recommend")
	if !ok {
		return
	}

	response, err := c.recommendations.Recommend(r.Context(), req)
	if err != nil {
		writeError(w, r, "Recommend", err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RenderCard handles POST /recommendations/card?format=png|pdf
// Runs a recommendation and returns it as an image or PDF card
func (c *RecommendationController) RenderCard(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = service.CardFormatPNG
	}
	if format != service.CardFormatPNG && format != service.CardFormatPDF {
		log.Warn().Str("format", format).Msg("❌ RenderCard: Invalid format")
		writeProblem(w, r, models.InvalidInputValue, "format 값은 png 또는 pdf 이어야 합니다.")
		return
	}

	req, ok := c.readRequest(w, r, "RenderCard")
	if !ok {
		return
	}

	combination, err := c.recommendations.Recommend(r.Context(), req)
	if err != nil {
		writeError(w, r, "RenderCard", err)
		return
	}

	data, contentType, err := c.cards.Render(r.Context(), req, combination, format)
	if err != nil {
		writeError(w, r, "RenderCard", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, combination.CombinationID, format))
	w.Header().Set("X-Combination-Id", combination.CombinationID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("❌ RenderCard: Error writing card")
	}
}

// readRequest decodes and validates a recommendation request, writing a 400 problem on failure
func (c *RecommendationController) readRequest(w http.ResponseWriter, r *http.Request, handler string) (models.RecommendationRequest, bool) {
	var req models.RecommendationRequest
	if err := decodeBody(w, r, &req); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("handler", handler).Msg("❌ Failed to decode request body")
		writeProblem(w, r, models.InvalidInputValue, detailMalformedBody)
		return req, false
	}

	if err := validation.ValidateStruct(req); err != nil {
		writeError(w, r, handler, err)
		return req, false
	}

	req.Normalize()
	return req, true
}
