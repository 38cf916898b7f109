package service

import (
	"context"
	"errors"
	"fmt"

	"kkotdam/logging"
	"kkotdam/metrics"
)

// ErrFlowerImageMissing is returned when a flower has no image
var ErrFlowerImageMissing = errors.New("flower has no image")

// ImageServiceInterface defines the contract for serving optimized flower images
type ImageServiceInterface interface {
	GetOptimizedImage(ctx context.Context, flowerID string, size string) ([]byte, error)
}

// ImageService serves resized flower images from a disk cache
type ImageService struct {
	flowers FlowerServiceInterface
	fetcher ImageFetcherInterface
	cache   *ImageCache
}

// NewImageService creates a new ImageService
func NewImageService(flowers FlowerServiceInterface, fetcher ImageFetcherInterface, cache *ImageCache) *ImageService {
	return &ImageService{
		flowers: flowers,
		fetcher: fetcher,
		cache:   cache,
	}
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// GetOptimizedImage returns the JPEG for a flower at the given size, fetching and caching it on a miss
func (s *ImageService) GetOptimizedImage(ctx context.Context, flowerID string, size string) ([]byte, error) {
	flower, err := s.flowers.GetFlower(ctx, flowerID)
	if err != nil {
		return nil, err
	}
	if flower.ImageURL == "" {
		return nil, fmt.Errorf("%s: %w", flowerID, ErrFlowerImageMissing)
	}

	cachePath := s.cache.Path(flower.FlowerID, flower.ImageURL, size)
	cached, ok, err := s.cache.Read(cachePath)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("path", cachePath).Msg("⚠️  Failed to read cached image")
	}
	if ok {
		metrics.RecordImageCache(true)
		return cached, nil
	}
	metrics.RecordImageCache(false)

	raw, err := s.fetcher.Fetch(ctx, flower.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image for %s: %w", flowerID, err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize image for %s: %w", flowerID, err)
	}

	if err := s.cache.Write(cachePath, optimized); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("path", cachePath).Msg("⚠️  Failed to cache image")
	}

	return optimized, nil
}
