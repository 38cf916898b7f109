package models

// Option is a selectable value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionResponse represents the response of GET /options
type OptionResponse struct {
	Occasions  []Option `json:"occasions"`
	Recipients []Option `json:"recipients"`
	Moods      []Option `json:"moods"`
	Sizes      []Option `json:"sizes"`
}
