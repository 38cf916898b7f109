package service

import (
	"context"
	"errors"
	"fmt"

	"kkotdam/logging"
	"kkotdam/metrics"
	"kkotdam/models"
	"kkotdam/recommendation"
	"kkotdam/repository"
)

// RecommendationServiceInterface defines the contract for recommendation operations
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, request models.RecommendationRequest) (models.RecommendationResponse, error)
}

// RecommendationService reads a catalog snapshot and runs the recommendation core on it
type RecommendationService struct {
	store repository.CatalogStore
	rnd   recommendation.Random
}

// NewRecommendationService creates a new RecommendationService.
// A nil rnd uses the shared global generator.
func NewRecommendationService(store repository.CatalogStore, rnd recommendation.Random) *RecommendationService {
	return &RecommendationService{
		store: store,
		rnd:   rnd,
	}
}

// Ensure RecommendationService implements RecommendationServiceInterface
var _ RecommendationServiceInterface = (*RecommendationService)(nil)

// Recommend selects a flower combination for the request.
// It returns recommendation.ErrNoRecommendationFound when nothing could be selected.
func (s *RecommendationService) Recommend(ctx context.Context, request models.RecommendationRequest) (models.RecommendationResponse, error) {
	request.Normalize()

	catalog, err := s.store.GetAll(ctx)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, 0)
		return models.RecommendationResponse{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	response, err := recommendation.Recommend(request, catalog, s.rnd)
	if err != nil {
		if errors.Is(err, recommendation.ErrNoRecommendationFound) {
			metrics.RecordRecommendation(metrics.OutcomeNoResult, 0)
			logging.Ctx(ctx).Info().
				Int("catalogSize", len(catalog)).
				Int("include", len(request.IncludeFlowers)).
				Int("exclude", len(request.ExcludeFlowers)).
				Msg("🌱 No flowers left to recommend")
		}
		return models.RecommendationResponse{}, err
	}

	metrics.RecordRecommendation(metrics.OutcomeOK, len(response.Flowers))
	logging.Ctx(ctx).Info().
		Str("combinationId", response.CombinationID).
		Int("flowers", len(response.Flowers)).
		Msg("💐 Combination recommended")
	return response, nil
}
