package recommendation

import (
	"errors"

	"kkotdam/models"
)

// ErrNoRecommendationFound is returned when no catalog flower qualifies for a combination
var ErrNoRecommendationFound = errors.New("no recommendation found")

// Recommend selects up to TargetCount flowers from catalog for request and builds the combination.
// It returns ErrNoRecommendationFound when the selection is empty.
func Recommend(request models.RecommendationRequest, catalog []models.Flower, rnd Random) (models.RecommendationResponse, error) {
	selected := Select(catalog, request.IncludeFlowers, request.ExcludeFlowers, TargetCount, rnd)
	if len(selected) == 0 {
		return models.RecommendationResponse{}, ErrNoRecommendationFound
	}
	return Build(selected, request), nil
}
