package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	fetcher := NewImageFetcher(ImageFetcherConfig{Timeout: time.Second, MaxFailures: 3, OpenTimeout: time.Minute}, nil)

	data, err := fetcher.Fetch(context.Background(), srv.URL+"/rose.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestImageFetcher_OpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewImageFetcher(ImageFetcherConfig{Timeout: time.Second, MaxFailures: 2, OpenTimeout: time.Minute}, nil)

	for i := 0; i < 2; i++ {
		_, err := fetcher.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrImageSourceUnavailable)
	}

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrImageSourceUnavailable)
	assert.Equal(t, int32(2), hits.Load())
}

func TestImageFetcher_CancelledRequestsDoNotOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	fetcher := NewImageFetcher(ImageFetcherConfig{Timeout: time.Second, MaxFailures: 1, OpenTimeout: time.Minute}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		_, err := fetcher.Fetch(ctx, srv.URL)
		require.ErrorIs(t, err, context.Canceled)
	}

	data, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestImageFetcher_RejectsOversizedImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Query().Get("body")))
	}))
	defer srv.Close()

	fetcher := NewImageFetcher(ImageFetcherConfig{Timeout: time.Second, MaxBytes: 8}, nil)

	data, err := fetcher.Fetch(context.Background(), srv.URL+"?body=12345678")
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678"), data)

	_, err = fetcher.Fetch(context.Background(), srv.URL+"?body=123456789")
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestImageFetcher_UsesDriveForDriveURLs(t *testing.T) {
	drive := &mockDrive{files: map[string][]byte{"abc": []byte("from-drive")}}
	fetcher := NewImageFetcher(ImageFetcherConfig{Timeout: time.Second}, drive)

	data, err := fetcher.Fetch(context.Background(), "https://drive.google.com/uc?id=abc")
	require.NoError(t, err)

	assert.Equal(t, []byte("from-drive"), data)
	assert.Equal(t, []string{"abc"}, drive.downloaded)
}

func TestDriveFileID(t *testing.T) {
	id, ok := driveFileID("https://drive.google.com/uc?id=xyz")
	assert.True(t, ok)
	assert.Equal(t, "xyz", id)

	_, ok = driveFileID("https://example.com/uc?id=xyz")
	assert.False(t, ok)

	_, ok = driveFileID("https://drive.google.com/uc")
	assert.False(t, ok)
}
