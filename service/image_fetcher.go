package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"

	"kkotdam/logging"
)

const defaultMaxImageBytes = 20 << 20

var (
	// ErrImageSourceUnavailable is returned while the image source circuit is open
	ErrImageSourceUnavailable = errors.New("image source unavailable")
	// ErrImageTooLarge is returned when a source image exceeds the size limit
	ErrImageTooLarge = errors.New("image too large")
)

// ImageFetcherInterface defines the contract for downloading source images
type ImageFetcherInterface interface {
	Fetch(ctx context.Context, imageURL string) ([]byte, error)
}

// ImageFetcherConfig configures an ImageFetcher
type ImageFetcherConfig struct {
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
	MaxBytes    int64
}

// ImageFetcher downloads flower images over HTTP, or through the Drive API for Drive hosted files.
// Calls go through a circuit breaker that opens after MaxFailures consecutive failures.
type ImageFetcher struct {
	client   *http.Client
	drive    DriveServiceInterface
	breaker  *gobreaker.CircuitBreaker[[]byte]
	maxBytes int64
}

// NewImageFetcher creates a new ImageFetcher. driveService may be nil.
func NewImageFetcher(cfg ImageFetcherConfig, driveService DriveServiceInterface) *ImageFetcher {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxImageBytes
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "flower-images",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// cancelled callers do not count against the source
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("⚡ Circuit breaker state changed")
		},
	})

	return &ImageFetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		drive:    driveService,
		breaker:  breaker,
		maxBytes: maxBytes,
	}
}

// Ensure ImageFetcher implements ImageFetcherInterface
var _ ImageFetcherInterface = (*ImageFetcher)(nil)

// Fetch downloads the image at imageURL
func (f *ImageFetcher) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	data, err := f.breaker.Execute(func() ([]byte, error) {
		if fileID, ok := driveFileID(imageURL); ok && f.drive != nil {
			return f.drive.DownloadImage(ctx, fileID)
		}
		return f.get(ctx, imageURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrImageSourceUnavailable, err)
		}
		return nil, err
	}
	return data, nil
}

func (f *ImageFetcher) get(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, f.maxBytes)
	}
	return data, nil
}

// driveFileID extracts the file id from a https://drive.google.com/uc?id=<id> URL
func driveFileID(imageURL string) (string, bool) {
	u, err := url.Parse(imageURL)
	if err != nil || u.Host != "drive.google.com" {
		return "", false
	}
	id := u.Query().Get("id")
	return id, id != ""
}
