package recommendation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kkotdam/models"
)

func request(include, exclude []string) models.RecommendationRequest {
	return models.RecommendationRequest{
		Occasion:       "BIRTHDAY",
		Recipient:      "FRIEND",
		Mood:           "BRIGHT",
		Size:           "M",
		IncludeFlowers: include,
		ExcludeFlowers: exclude,
	}
}

func TestRecommend_FullCatalog(t *testing.T) {
	resp, err := Recommend(request(nil, nil), sampleCatalog(), seeded(9))
	require.NoError(t, err)

	require.Len(t, resp.Flowers, 3)
	assert.True(t, strings.HasPrefix(resp.CombinationID, "combo_"))

	selected := make([]string, len(resp.Flowers))
	for i, f := range resp.Flowers {
		selected[i] = f.FlowerID
	}
	assert.Equal(t, "combo_"+strings.Join(selected, "_"), resp.CombinationID)
	assert.ElementsMatch(t, []string{"F1", "F2", "F3"}, selected)
}

func TestRecommend_IncludeAndExclude(t *testing.T) {
	resp, err := Recommend(request([]string{"F2"}, []string{"F1"}), sampleCatalog(), seeded(1))
	require.NoError(t, err)

	assert.Equal(t, "combo_F2_F3", resp.CombinationID)
	assert.Equal(t, "Tulip을(를) 위한 조합", resp.CombinationName)
	assert.Equal(t, "https://img/tulip.jpg", resp.CombinationImageURL)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	_, err := Recommend(request(nil, nil), []models.Flower{}, seeded(1))

	assert.ErrorIs(t, err, ErrNoRecommendationFound)
}

func TestRecommend_NothingQualifies(t *testing.T) {
	_, err := Recommend(request([]string{"F9"}, []string{"F1", "F2", "F3"}), sampleCatalog(), seeded(1))

	assert.ErrorIs(t, err, ErrNoRecommendationFound)
}

func TestRecommend_UnknownIncludeFallsBackToRandomFill(t *testing.T) {
	resp, err := Recommend(request([]string{"F9"}, nil), sampleCatalog(), seeded(2))
	require.NoError(t, err)

	assert.Len(t, resp.Flowers, 3)
	assert.NotContains(t, resp.CombinationID, "F9")
}

func TestBuild(t *testing.T) {
	selected := []models.Flower{sampleCatalog()[2], sampleCatalog()[0]}

	resp := Build(selected, request(nil, nil))

	assert.Equal(t, "combo_F3_F1", resp.CombinationID)
	assert.Equal(t, "Lily을(를) 위한 조합", resp.CombinationName)
	assert.Equal(t, "BIRTHDAY을(를) 위한 특별한 꽃 조합입니다.", resp.Description)
	assert.Equal(t, "https://img/lily.jpg", resp.CombinationImageURL)
	assert.Equal(t, []models.FlowerInfo{
		{FlowerID: "F3", Name: "Lily", ImageURL: "https://img/lily.jpg", Meaning: "purity"},
		{FlowerID: "F1", Name: "Rose", ImageURL: "https://img/rose.jpg", Meaning: "love"},
	}, resp.Flowers)
}

func TestCombinationID_IsStableForSameOrder(t *testing.T) {
	selected := sampleCatalog()

	assert.Equal(t, CombinationID(selected), CombinationID(append([]models.Flower(nil), selected...)))
	assert.Equal(t, "combo_F1_F2_F3", CombinationID(selected))

	reversed := []models.Flower{selected[2], selected[1], selected[0]}
	assert.Equal(t, "combo_F3_F2_F1", CombinationID(reversed))
}
