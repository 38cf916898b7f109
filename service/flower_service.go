package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"kkotdam/models"
	"kkotdam/repository"
)

// ErrFlowerNotFound is returned when the requested flower is not in the catalog
var ErrFlowerNotFound = errors.New("flower not found")

// FlowerServiceInterface defines the contract for catalog browsing
type FlowerServiceInterface interface {
	SearchFlowers(ctx context.Context, search string) ([]models.FlowerSummary, error)
	GetFlower(ctx context.Context, flowerID string) (*models.Flower, error)
}

// FlowerService handles flower lookups
type FlowerService struct {
	repository repository.FlowerRepositoryInterface
}

// NewFlowerService creates a new FlowerService
func NewFlowerService(repo repository.FlowerRepositoryInterface) *FlowerService {
	return &FlowerService{repository: repo}
}

// Ensure FlowerService implements FlowerServiceInterface
var _ FlowerServiceInterface = (*FlowerService)(nil)

// SearchFlowers returns flowers whose name contains search. A blank search returns every flower.
func (s *FlowerService) SearchFlowers(ctx context.Context, search string) ([]models.FlowerSummary, error) {
	var (
		flowers []models.Flower
		err     error
	)

	search = strings.TrimSpace(search)
	if search == "" {
		flowers, err = s.repository.GetAll(ctx)
		if err == nil {
			slices.SortStableFunc(flowers, func(a, b models.Flower) int {
				return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.FlowerID, b.FlowerID))
			})
		}
	} else {
		flowers, err = s.repository.SearchByName(ctx, search)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]models.FlowerSummary, 0, len(flowers))
	for _, f := range flowers {
		summaries = append(summaries, models.FlowerSummary{FlowerID: f.FlowerID, Name: f.Name})
	}
	return summaries, nil
}

// GetFlower returns one flower or ErrFlowerNotFound
func (s *FlowerService) GetFlower(ctx context.Context, flowerID string) (*models.Flower, error) {
	flower, err := s.repository.GetByFlowerID(ctx, flowerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", flowerID, ErrFlowerNotFound)
		}
		return nil, err
	}
	return flower, nil
}
