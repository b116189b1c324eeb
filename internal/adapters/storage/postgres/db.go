package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// last_seen_at / time quedan como TEXT: son fechas locales sin zona y se
// devuelven exactamente como se cargaron.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS lost_pets (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		species       TEXT NOT NULL,
		breed         TEXT NOT NULL DEFAULT '',
		color         TEXT NOT NULL DEFAULT '',
		size          TEXT NOT NULL DEFAULT '',
		age           TEXT NOT NULL DEFAULT '',
		last_seen_at  TEXT NOT NULL,
		lat           DOUBLE PRECISION NOT NULL,
		lng           DOUBLE PRECISION NOT NULL,
		gps_enabled   BOOLEAN NOT NULL DEFAULT FALSE,
		special_needs BOOLEAN NOT NULL DEFAULT FALSE,
		photo_ref     TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS lost_pets_owner_idx ON lost_pets (owner_user_id)`,
	`CREATE TABLE IF NOT EXISTS sightings (
		id               TEXT PRIMARY KEY,
		reporter_user_id TEXT NOT NULL,
		species          TEXT NOT NULL,
		breed            TEXT NOT NULL DEFAULT '',
		color            TEXT NOT NULL DEFAULT '',
		size             TEXT NOT NULL DEFAULT '',
		age              TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT '',
		seen_at          TEXT NOT NULL,
		lat              DOUBLE PRECISION NOT NULL,
		lng              DOUBLE PRECISION NOT NULL,
		photo_ref        TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		lat             DOUBLE PRECISION NOT NULL,
		lng             DOUBLE PRECISION NOT NULL,
		alert_radius_km DOUBLE PRECISION,
		frequency       TEXT NOT NULL DEFAULT 'immediate',
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		type       TEXT NOT NULL,
		urgency    TEXT NOT NULL,
		message    TEXT NOT NULL,
		payload    JSONB NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS notifications_user_idx ON notifications (user_id, created_at DESC)`,
}

// EnsureSchema crea tablas e índices si no existen. Idempotente.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema (stmt %d): %w", i, err)
		}
	}
	return nil
}
