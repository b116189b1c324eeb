package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-finder/internal/domain/lostpets"
	"pet-finder/internal/domain/reports"
)

type LostPetsRepo struct {
	db *sql.DB
}

func NewLostPetsRepo(db *sql.DB) *LostPetsRepo {
	return &LostPetsRepo{db: db}
}

const lostPetColumns = `
	id, owner_user_id, name, species, breed, color, size, age,
	last_seen_at, lat, lng, gps_enabled, special_needs, photo_ref, created_at`

func (r *LostPetsRepo) Create(ctx context.Context, p reports.LostPet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lost_pets (`+lostPetColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Species,
		p.Breed,
		p.Color,
		p.Size,
		p.Age,
		p.LastSeenAt,
		p.Location.Lat,
		p.Location.Lng,
		p.GPSEnabled,
		p.SpecialNeeds,
		p.PhotoRef,
		p.CreatedAt,
	)
	return err
}

func (r *LostPetsRepo) GetByID(ctx context.Context, id string) (reports.LostPet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reports.LostPet{}, lostpets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+lostPetColumns+` FROM lost_pets WHERE id = $1`, id)
	p, err := scanLostPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return reports.LostPet{}, lostpets.ErrNotFound
	}
	return p, err
}

// List devuelve los más nuevos primero.
func (r *LostPetsRepo) List(ctx context.Context) ([]reports.LostPet, error) {
	return r.query(ctx, `SELECT `+lostPetColumns+` FROM lost_pets ORDER BY created_at DESC, id DESC`)
}

func (r *LostPetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]reports.LostPet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []reports.LostPet{}, nil
	}
	return r.query(ctx, `
		SELECT `+lostPetColumns+` FROM lost_pets
		WHERE owner_user_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerUserID)
}

func (r *LostPetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lost_pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return lostpets.ErrNotFound
	}
	return nil
}

func (r *LostPetsRepo) query(ctx context.Context, q string, args ...any) ([]reports.LostPet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.LostPet, 0)
	for rows.Next() {
		p, err := scanLostPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLostPet(s scanner) (reports.LostPet, error) {
	var p reports.LostPet
	err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Color,
		&p.Size,
		&p.Age,
		&p.LastSeenAt,
		&p.Location.Lat,
		&p.Location.Lng,
		&p.GPSEnabled,
		&p.SpecialNeeds,
		&p.PhotoRef,
		&p.CreatedAt,
	)
	return p, err
}
