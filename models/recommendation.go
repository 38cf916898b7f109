package models

// RecommendationRequest represents the request body for POST /recommendations
type RecommendationRequest struct {
	Occasion       string   `json:"occasion" validate:"required"`
	Recipient      string   `json:"recipient" validate:"required"`
	Mood           string   `json:"mood" validate:"required"`
	Size           string   `json:"size" validate:"required"`
	IncludeFlowers []string `json:"includeFlowers"`
	ExcludeFlowers []string `json:"excludeFlowers"`
}

// Normalize replaces absent include/exclude lists with empty ones
func (r *RecommendationRequest) Normalize() {
	if r.IncludeFlowers == nil {
		r.IncludeFlowers = []string{}
	}
	if r.ExcludeFlowers == nil {
		r.ExcludeFlowers = []string{}
	}
}

// RecommendationResponse is the combination returned for a recommendation request
type RecommendationResponse struct {
	CombinationID       string       `json:"combinationId"`
	CombinationName     string       `json:"combinationName"`
	Description         string       `json:"description"`
	CombinationImageURL string       `json:"combinationImageUrl"`
	Flowers             []FlowerInfo `json:"flowers"`
}

// FlowerInfo is the public projection of a flower inside a combination
type FlowerInfo struct {
	FlowerID string `json:"flowerId"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Meaning  string `json:"meaning"`
}
