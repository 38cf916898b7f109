package service

import (
	"context"

	"kkotdam/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListFlowerImages(ctx context.Context, folderID string) ([]models.FlowerImage, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
