package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/sightings"
)

type SightingsRepo struct {
	db *sql.DB
}

func NewSightingsRepo(db *sql.DB) *SightingsRepo {
	return &SightingsRepo{db: db}
}

const sightingColumns = `
	id, reporter_user_id, species, breed, color, size, age, notes,
	seen_at, lat, lng, photo_ref, created_at`

func (r *SightingsRepo) Create(ctx context.Context, s reports.Sighting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sightings (`+sightingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		s.ID,
		s.ReporterUserID,
		s.Species,
		s.Breed,
		s.Color,
		s.Size,
		s.Age,
		s.Notes,
		s.Time,
		s.Location.Lat,
		s.Location.Lng,
		s.PhotoRef,
		s.CreatedAt,
	)
	return err
}

func (r *SightingsRepo) GetByID(ctx context.Context, id string) (reports.Sighting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reports.Sighting{}, sightings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+sightingColumns+` FROM sightings WHERE id = $1`, id)
	s, err := scanSighting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return reports.Sighting{}, sightings.ErrNotFound
	}
	return s, err
}

// List devuelve los más nuevos primero (mismo orden que el repo en memoria).
func (r *SightingsRepo) List(ctx context.Context) ([]reports.Sighting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sightingColumns+` FROM sightings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.Sighting, 0)
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSighting(sc scanner) (reports.Sighting, error) {
	var s reports.Sighting
	err := sc.Scan(
		&s.ID,
		&s.ReporterUserID,
		&s.Species,
		&s.Breed,
		&s.Color,
		&s.Size,
		&s.Age,
		&s.Notes,
		&s.Time,
		&s.Location.Lat,
		&s.Location.Lng,
		&s.PhotoRef,
		&s.CreatedAt,
	)
	return s, err
}
