package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kkotdam/models"
)

func TestSearchFlowers_BlankReturnsAllSortedByName(t *testing.T) {
	repo := &mockFlowerRepo{flowers: []models.Flower{
		{FlowerID: "F2", Name: "Tulip"},
		{FlowerID: "F3", Name: "Lily"},
		{FlowerID: "F1", Name: "Lily"},
	}}
	svc := NewFlowerService(repo)

	got, err := svc.SearchFlowers(context.Background(), "  ")
	require.NoError(t, err)

	assert.Equal(t, []models.FlowerSummary{
		{FlowerID: "F1", Name: "Lily"},
		{FlowerID: "F3", Name: "Lily"},
		{FlowerID: "F2", Name: "Tulip"},
	}, got)
	assert.Empty(t, repo.searched)
}

func TestSearchFlowers_DelegatesTrimmedSearch(t *testing.T) {
	repo := &mockFlowerRepo{flowers: []models.Flower{{FlowerID: "F1", Name: "장미"}}}
	svc := NewFlowerService(repo)

	got, err := svc.SearchFlowers(context.Background(), " 장 ")
	require.NoError(t, err)

	assert.Equal(t, "장", repo.searched)
	assert.Equal(t, []models.FlowerSummary{{FlowerID: "F1", Name: "장미"}}, got)
}

func TestSearchFlowers_EmptyIsNotNil(t *testing.T) {
	svc := NewFlowerService(&mockFlowerRepo{})

	got, err := svc.SearchFlowers(context.Background(), "none")
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetFlower(t *testing.T) {
	svc := NewFlowerService(&mockFlowerRepo{flowers: catalog()})

	flower, err := svc.GetFlower(context.Background(), "F2")
	require.NoError(t, err)
	assert.Equal(t, "튤립", flower.Name)

	_, err = svc.GetFlower(context.Background(), "F9")
	assert.ErrorIs(t, err, ErrFlowerNotFound)
}

func TestGetFlower_StorageError(t *testing.T) {
	dbErr := errors.New("timeout")
	svc := NewFlowerService(&mockFlowerRepo{err: dbErr})

	_, err := svc.GetFlower(context.Background(), "F1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrFlowerNotFound)
}
