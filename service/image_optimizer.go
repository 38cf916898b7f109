package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"

	"kkotdam/logging"
)

const (
	// Image sizes
	SizeThumb  = "thumb"
	SizeMedium = "medium"

	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// IsValidImageSize reports whether size is a supported image size
func IsValidImageSize(size string) bool {
	return size == SizeThumb || size == SizeMedium
}

// ImageCache stores optimized images on disk
type ImageCache struct {
	dir string
}

// NewImageCache creates an ImageCache rooted at dir
func NewImageCache(dir string) *ImageCache {
	return &ImageCache{dir: dir}
}

// EnsureDir ensures the cache directory exists, creates it if it doesn't
func (c *ImageCache) EnsureDir() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Path returns the cache file path for a flower image at a given size.
// The source URL is part of the key so a changed image_url misses the cache.
func (c *ImageCache) Path(flowerID string, imageURL string, size string) string {
	filename := fmt.Sprintf("flower_%s_%016x_%s.jpg", filepath.Base(flowerID), xxhash.Sum64String(imageURL), size)
	return filepath.Join(c.dir, filename)
}

// Read returns the cached image, or ok=false when it is not cached
func (c *ImageCache) Read(cachePath string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read from cache: %w", err)
	}
	return data, true, nil
}

// Write saves an image to the cache
func (c *ImageCache) Write(cachePath string, imageData []byte) error {
	dir := filepath.Dir(cachePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// write then rename so readers never see a partial file
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if _, err := tmp.Write(imageData); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), cachePath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	logging.Debug().Str("path", cachePath).Msg("✓ Image cached")
	return nil
}

// OptimizeImage optimizes an image by converting to JPEG and resizing
// imageData: raw image bytes (PNG, JPEG)
// size: "thumb" or "medium"
// Returns optimized JPEG image bytes
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var maxDim int
	var quality int

	switch size {
	case SizeThumb:
		maxDim = maxSizeThumb
		quality = qualityThumb
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		// 0 keeps the aspect ratio
		if width > height {
			resizedImg = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			resizedImg = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	logging.Debug().
		Str("format", format).
		Str("size", size).
		Int("width", resizedImg.Bounds().Dx()).
		Int("height", resizedImg.Bounds().Dy()).
		Int("bytes", buf.Len()).
		Msg("✓ Image optimized")
	return buf.Bytes(), nil
}
