package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/repository"
	"kkotdam/validation"
)

var (
	// ErrSeedFileNotConfigured is returned when no catalog seed file is configured
	ErrSeedFileNotConfigured = errors.New("catalog seed file is not configured")
	// ErrInvalidSeed is returned when a seed file cannot be parsed or an entry is invalid
	ErrInvalidSeed = errors.New("invalid catalog seed")
)

// SeedServiceInterface defines the contract for catalog imports
type SeedServiceInterface interface {
	ImportFile(ctx context.Context, path string) (int, error)
	Import(ctx context.Context) (int, error)
}

// SeedService loads catalog flowers from a JSON seed file into the store
type SeedService struct {
	repository repository.FlowerRepositoryInterface
	seedFile   string
}

// NewSeedService creates a new SeedService. seedFile is the file Import reads and may be empty.
func NewSeedService(repo repository.FlowerRepositoryInterface, seedFile string) *SeedService {
	return &SeedService{
		repository: repo,
		seedFile:   seedFile,
	}
}

// Ensure SeedService implements SeedServiceInterface
var _ SeedServiceInterface = (*SeedService)(nil)

// Import imports the configured seed file
func (s *SeedService) Import(ctx context.Context) (int, error) {
	if s.seedFile == "" {
		return 0, ErrSeedFileNotConfigured
	}
	return s.ImportFile(ctx, s.seedFile)
}

// ImportFile reads a JSON array of flowers and upserts them by flowerId.
// Nothing is written when any entry is invalid.
func (s *SeedService) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []models.FlowerSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidSeed, path, err)
	}

	flowers := make([]models.Flower, 0, len(seeds))
	for i, seed := range seeds {
		if err := validation.ValidateStruct(seed); err != nil {
			return 0, fmt.Errorf("%w: entry %d: %v", ErrInvalidSeed, i, err)
		}
		flowers = append(flowers, seed.ToFlower())
	}

	n, err := s.repository.Upsert(ctx, flowers)
	if err != nil {
		return 0, fmt.Errorf("failed to import seed file: %w", err)
	}

	logging.Ctx(ctx).Info().Str("file", path).Int("flowers", n).Msg("🌸 Catalog seed imported")
	return n, nil
}
