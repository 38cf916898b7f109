package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// driveImageURLFormat is the public URL stored for Drive hosted flower images
const driveImageURLFormat = "https://drive.google.com/uc?id=%s"

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	driveService, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// ListFlowerImages lists all image files in a Google Drive folder.
// Files whose name does not carry a flower id are returned with an empty FlowerID.
func (ds *DriveService) ListFlowerImages(ctx context.Context, folderID string) ([]models.FlowerImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", strings.ReplaceAll(folderID, "'", `\'`))

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	images := make([]models.FlowerImage, 0, len(allFiles))
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		image := models.FlowerImage{
			DriveFileID: file.Id,
			FileName:    file.Name,
			ImageURL:    fmt.Sprintf(driveImageURLFormat, file.Id),
		}

		flowerID, err := utils.ParseFlowerImageFileName(file.Name)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("file", file.Name).Msg("⚠️  Failed to parse filename")
		} else {
			image.FlowerID = flowerID
		}

		images = append(images, image)
	}

	logging.Ctx(ctx).Info().Str("folderId", folderID).Int("images", len(images)).Msg("📂 Drive folder listed")
	return images, nil
}

// DownloadImage downloads the raw bytes of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	return data, nil
}
