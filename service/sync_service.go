package service

import (
	"context"
	"errors"
	"fmt"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/repository"
)

var (
	// ErrDriveNotConfigured is returned when no Drive credentials were provided
	ErrDriveNotConfigured = errors.New("google drive is not configured")
	// ErrFolderIDRequired is returned when neither the request nor the config names a folder
	ErrFolderIDRequired = errors.New("drive folder id is required")
)

// ImageSyncServiceInterface defines the contract for flower image synchronization
type ImageSyncServiceInterface interface {
	SyncFlowerImages(ctx context.Context, folderID string) (models.ImageSyncResult, error)
}

// ImageSyncService links images in a Google Drive folder to catalog flowers
type ImageSyncService struct {
	driveService    DriveServiceInterface
	repository      repository.FlowerRepositoryInterface
	defaultFolderID string
}

// NewImageSyncService creates a new ImageSyncService. driveService may be nil when Drive is not configured.
func NewImageSyncService(driveService DriveServiceInterface, repo repository.FlowerRepositoryInterface, defaultFolderID string) *ImageSyncService {
	return &ImageSyncService{
		driveService:    driveService,
		repository:      repo,
		defaultFolderID: defaultFolderID,
	}
}

// Ensure ImageSyncService implements ImageSyncServiceInterface
var _ ImageSyncServiceInterface = (*ImageSyncService)(nil)

// SyncFlowerImages points each flower's image_url at the Drive file named after it.
// total = images seen in Drive, updated = flowers changed, skipped = images not applied.
// unmatched lists the names of images with no flower id or no matching flower.
func (s *ImageSyncService) SyncFlowerImages(ctx context.Context, folderID string) (models.ImageSyncResult, error) {
	if s.driveService == nil {
		return models.ImageSyncResult{}, ErrDriveNotConfigured
	}
	if folderID == "" {
		folderID = s.defaultFolderID
	}
	if folderID == "" {
		return models.ImageSyncResult{}, ErrFolderIDRequired
	}

	log := logging.Ctx(ctx)
	log.Info().Str("folderId", folderID).Msg("🔄 Starting flower image synchronization")

	images, err := s.driveService.ListFlowerImages(ctx, folderID)
	if err != nil {
		return models.ImageSyncResult{}, fmt.Errorf("failed to list flower images from Drive: %w", err)
	}

	result := models.ImageSyncResult{
		Status:    "success",
		Total:     len(images),
		Unmatched: make([]string, 0),
	}

	for _, image := range images {
		if image.FlowerID == "" {
			result.Skipped++
			result.Unmatched = append(result.Unmatched, image.FileName)
			continue
		}

		found, err := s.repository.UpdateImageURL(ctx, image.FlowerID, image.ImageURL)
		if err != nil {
			log.Error().Err(err).Str("flowerId", image.FlowerID).Msg("❌ Error updating flower image")
			result.Skipped++
			continue
		}
		if !found {
			log.Debug().Str("flowerId", image.FlowerID).Str("file", image.FileName).Msg("⏭️  No flower for image")
			result.Skipped++
			result.Unmatched = append(result.Unmatched, image.FileName)
			continue
		}

		result.Updated++
	}

	log.Info().
		Int("total", result.Total).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Msg("🎉 Flower image synchronization completed")
	return result, nil
}
