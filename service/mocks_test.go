package service

import (
	"context"
	"sync"

	"kkotdam/models"
	"kkotdam/repository"
)

type mockFlowerRepo struct {
	mu        sync.Mutex
	flowers   []models.Flower
	err       error
	updated   map[string]string
	upserted  []models.Flower
	upsertErr error
	searched  string
}

func (m *mockFlowerRepo) GetAll(ctx context.Context) ([]models.Flower, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Flower(nil), m.flowers...), nil
}

func (m *mockFlowerRepo) SearchByName(ctx context.Context, name string) ([]models.Flower, error) {
	m.searched = name
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Flower(nil), m.flowers...), nil
}

func (m *mockFlowerRepo) GetByFlowerID(ctx context.Context, flowerID string) (*models.Flower, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, f := range m.flowers {
		if f.FlowerID == flowerID {
			f := f
			return &f, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockFlowerRepo) UpdateImageURL(ctx context.Context, flowerID string, imageURL string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, f := range m.flowers {
		if f.FlowerID == flowerID {
			if m.updated == nil {
				m.updated = make(map[string]string)
			}
			m.updated[flowerID] = imageURL
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFlowerRepo) Upsert(ctx context.Context, flowers []models.Flower) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return 0, m.upsertErr
	}
	m.upserted = append(m.upserted, flowers...)
	return len(flowers), nil
}

type mockDrive struct {
	images     []models.FlowerImage
	listErr    error
	files      map[string][]byte
	downloaded []string
}

func (m *mockDrive) ListFlowerImages(ctx context.Context, folderID string) ([]models.FlowerImage, error) {
	return m.images, m.listErr
}

func (m *mockDrive) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	m.downloaded = append(m.downloaded, fileID)
	return m.files[fileID], nil
}

// firstIndex always draws the first pool element
type firstIndex struct{}

func (firstIndex) IntN(n int) int { return 0 }

func catalog() []models.Flower {
	return []models.Flower{
		{ID: 1, FlowerID: "F1", Name: "장미", ImageURL: "https://img/f1.png", Meaning: "사랑"},
		{ID: 2, FlowerID: "F2", Name: "튤립", ImageURL: "https://img/f2.png", Meaning: "배려"},
		{ID: 3, FlowerID: "F3", Name: "백합", ImageURL: "", Meaning: "순수"},
	}
}
