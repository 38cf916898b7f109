package recommendation

import (
	"fmt"
	"strings"

	"kkotdam/models"
)

const (
	combinationIDPrefix = "combo_"
	combinationIDSep    = "_"

	combinationNameTemplate = "%s을(를) 위한 조합"
	descriptionTemplate     = "%s을(를) 위한 특별한 꽃 조합입니다."
)

// CombinationID derives the combination identifier from the ordered selection
func CombinationID(selected []models.Flower) string {
	ids := make([]string, len(selected))
	for i, flower := range selected {
		ids[i] = flower.FlowerID
	}
	return combinationIDPrefix + strings.Join(ids, combinationIDSep)
}

// Build describes a non-empty selection as a combination.
// Callers must not pass an empty selection; Recommend guarantees this.
func Build(selected []models.Flower, request models.RecommendationRequest) models.RecommendationResponse {
	first := selected[0]

	flowers := make([]models.FlowerInfo, len(selected))
	for i, flower := range selected {
		flowers[i] = models.FlowerInfo{
			FlowerID: flower.FlowerID,
			Name:     flower.Name,
			ImageURL: flower.ImageURL,
			Meaning:  flower.Meaning,
		}
	}

	return models.RecommendationResponse{
		CombinationID:       CombinationID(selected),
		CombinationName:     fmt.Sprintf(combinationNameTemplate, first.Name),
		Description:         fmt.Sprintf(descriptionTemplate, request.Occasion),
		CombinationImageURL: first.ImageURL,
		Flowers:             flowers,
	}
}
