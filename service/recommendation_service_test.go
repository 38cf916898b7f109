package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kkotdam/models"
	"kkotdam/recommendation"
)

func recommendationRequest(include, exclude []string) models.RecommendationRequest {
	return models.RecommendationRequest{
		Occasion:       "LOVE",
		Recipient:      "PARTNER",
		Mood:           "BRIGHT",
		Size:           "M",
		IncludeFlowers: include,
		ExcludeFlowers: exclude,
	}
}

func TestRecommendationService_Recommend(t *testing.T) {
	svc := NewRecommendationService(&mockFlowerRepo{flowers: catalog()}, firstIndex{})

	resp, err := svc.Recommend(context.Background(), recommendationRequest([]string{"F2"}, nil))
	require.NoError(t, err)

	// F2 first, then the pool [F1, F3] drawn with swap-remove at index 0
	assert.Equal(t, "combo_F2_F1_F3", resp.CombinationID)
	assert.Equal(t, "튤립을(를) 위한 조합", resp.CombinationName)
	assert.Equal(t, "LOVE을(를) 위한 특별한 꽃 조합입니다.", resp.Description)
	assert.Equal(t, "https://img/f2.png", resp.CombinationImageURL)
	require.Len(t, resp.Flowers, 3)
}

func TestRecommendationService_NoRecommendation(t *testing.T) {
	svc := NewRecommendationService(&mockFlowerRepo{flowers: catalog()}, nil)

	_, err := svc.Recommend(context.Background(), recommendationRequest(nil, []string{"F1", "F2", "F3"}))

	assert.ErrorIs(t, err, recommendation.ErrNoRecommendationFound)
}

func TestRecommendationService_EmptyCatalog(t *testing.T) {
	svc := NewRecommendationService(&mockFlowerRepo{}, nil)

	_, err := svc.Recommend(context.Background(), recommendationRequest([]string{"F1"}, nil))

	assert.ErrorIs(t, err, recommendation.ErrNoRecommendationFound)
}

func TestRecommendationService_StoreError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewRecommendationService(&mockFlowerRepo{err: dbErr}, nil)

	_, err := svc.Recommend(context.Background(), recommendationRequest(nil, nil))

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, recommendation.ErrNoRecommendationFound)
}
