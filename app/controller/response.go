package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/recommendation"
	"kkotdam/service"
	"kkotdam/validation"
)

const (
	maxBodyBytes = 1 << 20

	detailMalformedBody = "요청 본문을 읽을 수 없습니다."
	detailImageMissing  = "요청하신 꽃의 이미지가 없습니다."
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("❌ Error encoding response")
	}
}

// writeProblem writes a problem document for code. An empty detail uses the code's default.
func writeProblem(w http.ResponseWriter, r *http.Request, code models.ErrorCode, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(code.Status)
	if err := json.NewEncoder(w).Encode(models.NewErrorResponse(code, r.URL.Path, detail)); err != nil {
		logging.Error().Err(err).Msg("❌ Error encoding problem response")
	}
}

// WriteProblem is writeProblem for handlers outside this package
func WriteProblem(w http.ResponseWriter, r *http.Request, code models.ErrorCode, detail string) {
	writeProblem(w, r, code, detail)
}

// writeError maps a service error to its problem document
func writeError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	log := logging.Ctx(r.Context())

	var validationErr *validation.RequestValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Warn().Str("handler", handler).Str("detail", validationErr.Error()).Msg("❌ Validation failed")
		writeProblem(w, r, models.InvalidInputValue, validationErr.Error())
	case errors.Is(err, recommendation.ErrNoRecommendationFound):
		writeProblem(w, r, models.NoRecommendationFound, "")
	case errors.Is(err, service.ErrFlowerNotFound):
		writeProblem(w, r, models.FlowerNotFound, "")
	case errors.Is(err, service.ErrFlowerImageMissing):
		writeProblem(w, r, models.FlowerNotFound, detailImageMissing)
	case errors.Is(err, service.ErrInvalidCardFormat),
		errors.Is(err, service.ErrFolderIDRequired),
		errors.Is(err, service.ErrInvalidSeed):
		log.Warn().Err(err).Str("handler", handler).Msg("❌ Invalid input")
		writeProblem(w, r, models.InvalidInputValue, err.Error())
	case errors.Is(err, service.ErrDriveNotConfigured),
		errors.Is(err, service.ErrImageSourceUnavailable),
		errors.Is(err, service.ErrRendererUnavailable),
		errors.Is(err, service.ErrSeedFileNotConfigured):
		log.Warn().Err(err).Str("handler", handler).Msg("⚠️  Dependency unavailable")
		writeProblem(w, r, models.ServiceUnavailable, "")
	default:
		log.Error().Err(err).Str("handler", handler).Msg("❌ Request failed")
		writeProblem(w, r, models.InternalServerError, "")
	}
}

// errTrailingData is returned when a request body holds more than one JSON value
var errTrailingData = errors.New("unexpected data after JSON body")

// decodeBody decodes a single JSON value from the request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
