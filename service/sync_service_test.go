package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kkotdam/models"
)

func TestSyncFlowerImages(t *testing.T) {
	repo := &mockFlowerRepo{flowers: catalog()}
	drive := &mockDrive{images: []models.FlowerImage{
		{FlowerID: "F1", DriveFileID: "a1", FileName: "F1.png", ImageURL: "https://drive.google.com/uc?id=a1"},
		{FlowerID: "F3", DriveFileID: "a3", FileName: "F3__side.jpg", ImageURL: "https://drive.google.com/uc?id=a3"},
		{FlowerID: "F9", DriveFileID: "a9", FileName: "F9.png", ImageURL: "https://drive.google.com/uc?id=a9"},
		{DriveFileID: "zz", FileName: "cover.png", ImageURL: "https://drive.google.com/uc?id=zz"},
	}}
	svc := NewImageSyncService(drive, repo, "default-folder")

	result, err := svc.SyncFlowerImages(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, models.ImageSyncResult{
		Status:    "success",
		Total:     4,
		Updated:   2,
		Skipped:   2,
		Unmatched: []string{"F9.png", "cover.png"},
	}, result)
	assert.Equal(t, map[string]string{
		"F1": "https://drive.google.com/uc?id=a1",
		"F3": "https://drive.google.com/uc?id=a3",
	}, repo.updated)
}

func TestSyncFlowerImages_NoDrive(t *testing.T) {
	svc := NewImageSyncService(nil, &mockFlowerRepo{}, "folder")

	_, err := svc.SyncFlowerImages(context.Background(), "folder")

	assert.ErrorIs(t, err, ErrDriveNotConfigured)
}

func TestSyncFlowerImages_NoFolder(t *testing.T) {
	svc := NewImageSyncService(&mockDrive{}, &mockFlowerRepo{}, "")

	_, err := svc.SyncFlowerImages(context.Background(), "")

	assert.ErrorIs(t, err, ErrFolderIDRequired)
}

func TestSyncFlowerImages_ListError(t *testing.T) {
	listErr := errors.New("quota exceeded")
	svc := NewImageSyncService(&mockDrive{listErr: listErr}, &mockFlowerRepo{}, "folder")

	_, err := svc.SyncFlowerImages(context.Background(), "")

	assert.ErrorIs(t, err, listErr)
}

func TestSyncFlowerImages_EmptyFolder(t *testing.T) {
	svc := NewImageSyncService(&mockDrive{}, &mockFlowerRepo{}, "folder")

	result, err := svc.SyncFlowerImages(context.Background(), "")
	require.NoError(t, err)

	assert.Zero(t, result.Total)
	assert.NotNil(t, result.Unmatched)
}
