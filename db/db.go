package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"kkotdam/logging"
)

// DB holds the database connection
var DB *sql.DB

// Schema documents the table the repositories expect. It is not applied automatically.
const Schema = `
CREATE TABLE IF NOT EXISTS flowers (
	id         BIGSERIAL PRIMARY KEY,
	flower_id  TEXT UNIQUE NOT NULL,
	name       TEXT NOT NULL,
	image_url  TEXT NOT NULL DEFAULT '',
	meaning    TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	season     TEXT NOT NULL DEFAULT ''
)`

// InitDB opens the pgx connection pool and pings it
func InitDB(ctx context.Context, connStr string) error {
	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB = conn
	logging.Info().Msg("✓ Database connection established successfully")
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
