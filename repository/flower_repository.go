package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kkotdam/logging"
	"kkotdam/models"
)

// ErrNotFound is returned when a flower does not exist
var ErrNotFound = errors.New("flower not found")

const flowerColumns = `id, flower_id, name, image_url, meaning, color, season`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FlowerRepository handles database operations for the flower catalog
type FlowerRepository struct {
	db *sql.DB
}

// NewFlowerRepository creates a new FlowerRepository
func NewFlowerRepository(db *sql.DB) *FlowerRepository {
	return &FlowerRepository{db: db}
}

// Ensure FlowerRepository implements FlowerRepositoryInterface
var _ FlowerRepositoryInterface = (*FlowerRepository)(nil)

// GetAll returns the full catalog snapshot
func (r *FlowerRepository) GetAll(ctx context.Context) ([]models.Flower, error) {
	query := `SELECT ` + flowerColumns + ` FROM flowers ORDER BY id ASC`

	flowers, err := r.queryFlowers(ctx, query)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("❌ Error fetching flower catalog")
		return nil, fmt.Errorf("failed to get flowers: %w", err)
	}

	logging.Ctx(ctx).Debug().Int("count", len(flowers)).Msg("✓ Flower catalog fetched")
	return flowers, nil
}

// SearchByName returns flowers whose name contains name, ignoring case.
// LIKE wildcards in name match literally.
func (r *FlowerRepository) SearchByName(ctx context.Context, name string) ([]models.Flower, error) {
	query := `
		SELECT ` + flowerColumns + `
		FROM flowers
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY name ASC, flower_id ASC
	`

	flowers, err := r.queryFlowers(ctx, query, likeEscaper.Replace(name))
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("search", name).Msg("❌ Error searching flowers")
		return nil, fmt.Errorf("failed to search flowers: %w", err)
	}

	logging.Ctx(ctx).Debug().Str("search", name).Int("count", len(flowers)).Msg("🔍 Flower search done")
	return flowers, nil
}

// GetByFlowerID returns one flower or ErrNotFound
func (r *FlowerRepository) GetByFlowerID(ctx context.Context, flowerID string) (*models.Flower, error) {
	query := `SELECT ` + flowerColumns + ` FROM flowers WHERE flower_id = $1`

	var flower models.Flower
	err := r.db.QueryRowContext(ctx, query, flowerID).Scan(
		&flower.ID,
		&flower.FlowerID,
		&flower.Name,
		&flower.ImageURL,
		&flower.Meaning,
		&flower.Color,
		&flower.Season,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("flower %s: %w", flowerID, ErrNotFound)
		}
		logging.Ctx(ctx).Error().Err(err).Str("flowerId", flowerID).Msg("❌ Error fetching flower")
		return nil, fmt.Errorf("failed to get flower: %w", err)
	}

	return &flower, nil
}

// UpdateImageURL sets the image of a flower. It reports whether the flower exists.
func (r *FlowerRepository) UpdateImageURL(ctx context.Context, flowerID string, imageURL string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE flowers SET image_url = $1 WHERE flower_id = $2`, imageURL, flowerID)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("flowerId", flowerID).Msg("❌ Error updating flower image")
		return false, fmt.Errorf("failed to update image url: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// Upsert inserts or updates flowers by flower_id in one transaction and returns how many were written
func (r *FlowerRepository) Upsert(ctx context.Context, flowers []models.Flower) (int, error) {
	if len(flowers) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO flowers (flower_id, name, image_url, meaning, color, season)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (flower_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			image_url = EXCLUDED.image_url,
			meaning = EXCLUDED.meaning,
			color = EXCLUDED.color,
			season = EXCLUDED.season
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, f := range flowers {
		if _, err := stmt.ExecContext(ctx, f.FlowerID, f.Name, f.ImageURL, f.Meaning, f.Color, f.Season); err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("flowerId", f.FlowerID).Msg("❌ Error upserting flower")
			return 0, fmt.Errorf("failed to upsert flower %s: %w", f.FlowerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logging.Ctx(ctx).Info().Int("count", len(flowers)).Msg("✓ Flowers upserted")
	return len(flowers), nil
}

func (r *FlowerRepository) queryFlowers(ctx context.Context, query string, args ...interface{}) ([]models.Flower, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flowers := make([]models.Flower, 0)
	for rows.Next() {
		var flower models.Flower
		if err := rows.Scan(
			&flower.ID,
			&flower.FlowerID,
			&flower.Name,
			&flower.ImageURL,
			&flower.Meaning,
			&flower.Color,
			&flower.Season,
		); err != nil {
			return nil, err
		}
		flowers = append(flowers, flower)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flowers, nil
}
