package repository

import (
	"context"

	"kkotdam/models"
)

// CatalogStore is the read side the recommendation flow depends on
type CatalogStore interface {
	GetAll(ctx context.Context) ([]models.Flower, error)
}

// FlowerRepositoryInterface defines the contract for flower catalog operations
type FlowerRepositoryInterface interface {
	CatalogStore
	SearchByName(ctx context.Context, name string) ([]models.Flower, error)
	GetByFlowerID(ctx context.Context, flowerID string) (*models.Flower, error)
	UpdateImageURL(ctx context.Context, flowerID string, imageURL string) (bool, error)
	Upsert(ctx context.Context, flowers []models.Flower) (int, error)
}
