package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-finder/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Get(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, lat, lng, alert_radius_km, frequency, updated_at
		FROM users WHERE id = $1
	`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

// Save hace upsert por id.
func (r *UsersRepo) Save(ctx context.Context, u users.User) error {
	var radius sql.NullFloat64
	if u.Preferences.AlertRadiusKm != nil {
		radius = sql.NullFloat64{Float64: *u.Preferences.AlertRadiusKm, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, lat, lng, alert_radius_km, frequency, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			alert_radius_km = EXCLUDED.alert_radius_km,
			frequency = EXCLUDED.frequency,
			updated_at = EXCLUDED.updated_at
	`,
		u.ID,
		u.Location.Lat,
		u.Location.Lng,
		radius,
		u.Preferences.Frequency,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, lat, lng, alert_radius_km, frequency, updated_at
		FROM users ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(s scanner) (users.User, error) {
	var (
		u      users.User
		radius sql.NullFloat64
	)
	if err := s.Scan(
		&u.ID,
		&u.Location.Lat,
		&u.Location.Lng,
		&radius,
		&u.Preferences.Frequency,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}
	if radius.Valid {
		u.Preferences.AlertRadiusKm = users.Radius(radius.Float64)
	}
	return u, nil
}
