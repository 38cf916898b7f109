package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kkotdam/models"
)

var columns = []string{"id", "flower_id", "name", "image_url", "meaning", "color", "season"}

func newMock(t *testing.T) (*FlowerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewFlowerRepository(db), mock
}

func TestGetAll(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM flowers ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "F1", "Rose", "https://img/rose.jpg", "love", "red", "spring").
			AddRow(2, "F2", "Tulip", "", "care", "yellow", "spring"))

	flowers, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Flower{
		{ID: 1, FlowerID: "F1", Name: "Rose", ImageURL: "https://img/rose.jpg", Meaning: "love", Color: "red", Season: "spring"},
		{ID: 2, FlowerID: "F2", Name: "Tulip", Meaning: "care", Color: "yellow", Season: "spring"},
	}, flowers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_EmptyIsNotNil(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM flowers`).WillReturnRows(sqlmock.NewRows(columns))

	flowers, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, flowers)
	assert.Empty(t, flowers)
}

func TestGetAll_PropagatesStorageError(t *testing.T) {
	repo, mock := newMock(t)
	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT (.+) FROM flowers`).WillReturnError(dbErr)

	_, err := repo.GetAll(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestSearchByName_EscapesWildcards(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`WHERE name ILIKE`).
		WithArgs(`100\%\_ro`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "F3", "100%_rose", "", "", "", ""))

	flowers, err := repo.SearchByName(context.Background(), "100%_ro")
	require.NoError(t, err)

	require.Len(t, flowers, 1)
	assert.Equal(t, "F3", flowers[0].FlowerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByFlowerID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM flowers WHERE flower_id = \$1`).
		WithArgs("F1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "F1", "Rose", "u", "love", "red", "spring"))

	flower, err := repo.GetByFlowerID(context.Background(), "F1")
	require.NoError(t, err)
	assert.Equal(t, "Rose", flower.Name)
}

func TestGetByFlowerID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM flowers WHERE flower_id = \$1`).
		WithArgs("F9").
		WillReturnRows(sqlmock.NewRows(columns))

	flower, err := repo.GetByFlowerID(context.Background(), "F9")

	assert.Nil(t, flower)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateImageURL(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE flowers SET image_url = \$1 WHERE flower_id = \$2`).
		WithArgs("https://drive.google.com/uc?id=abc", "F1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE flowers SET image_url`).
		WithArgs("x", "F9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := repo.UpdateImageURL(context.Background(), "F1", "https://drive.google.com/uc?id=abc")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.UpdateImageURL(context.Background(), "F9", "x")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO flowers`)
	prep.ExpectExec().WithArgs("F1", "Rose", "", "love", "red", "spring").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs("F2", "Tulip", "", "", "", "").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	n, err := repo.Upsert(context.Background(), []models.Flower{
		{FlowerID: "F1", Name: "Rose", Meaning: "love", Color: "red", Season: "spring"},
		{FlowerID: "F2", Name: "Tulip"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_RollsBackOnFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO flowers`)
	prep.ExpectExec().WithArgs("F1", "Rose", "", "", "", "").WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	_, err := repo.Upsert(context.Background(), []models.Flower{{FlowerID: "F1", Name: "Rose"}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_Empty(t *testing.T) {
	repo, mock := newMock(t)

	n, err := repo.Upsert(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
