package models

// Flower represents a flower in the catalog
type Flower struct {
	ID       int64  `json:"-"`
	FlowerID string `json:"flowerId"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Meaning  string `json:"meaning"`
	Color    string `json:"color"`
	Season   string `json:"season"`
}

// FlowerSummary is the list item returned by GET /flowers
type FlowerSummary struct {
	FlowerID string `json:"flowerId"`
	Name     string `json:"name"`
}

// FlowerSeed represents a single entry of a catalog seed file
type FlowerSeed struct {
	FlowerID string `json:"flowerId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl"`
	Meaning  string `json:"meaning"`
	Color    string `json:"color"`
	Season   string `json:"season"`
}

// ToFlower converts a seed entry into a catalog flower
func (s FlowerSeed) ToFlower() Flower {
	return Flower{
		FlowerID: s.FlowerID,
		Name:     s.Name,
		ImageURL: s.ImageURL,
		Meaning:  s.Meaning,
		Color:    s.Color,
		Season:   s.Season,
	}
}

// FlowerImage represents an image file found in Google Drive for a flower
type FlowerImage struct {
	FlowerID    string `json:"flowerId"`
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ImageURL    string `json:"imageUrl"`
}

// ImageSyncResult summarises a Drive image synchronization
type ImageSyncResult struct {
	Status    string   `json:"status"`
	Total     int      `json:"total"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Unmatched []string `json:"unmatched"`
}
