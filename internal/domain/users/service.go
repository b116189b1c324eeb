package users

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"pet-finder/internal/domain/geo"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
)

type Service struct {
	repo     Repository
	now      func() time.Time
	defaults Preferences
}

// NewService usa defaultRadiusKm para usuarios sin preferencias guardadas
// (<= 0 deja el radio sin límite).
func NewService(repo Repository, defaultRadiusKm float64) *Service {
	d := Preferences{Frequency: FrequencyImmediate}
	if defaultRadiusKm > 0 {
		d.AlertRadiusKm = Radius(defaultRadiusKm)
	}
	return &Service{
		repo:     repo,
		now:      time.Now,
		defaults: d,
	}
}

func (s *Service) defaultUser(id string) User {
	p := s.defaults
	if p.AlertRadiusKm != nil {
		p.AlertRadiusKm = Radius(*p.AlertRadiusKm)
	}
	return User{
		ID:          id,
		Location:    DefaultLocation,
		Preferences: p,
	}
}

// Get devuelve el usuario guardado o uno con valores por defecto.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return s.defaultUser(id), nil
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Ensure persiste los defaults la primera vez que aparece un usuario, para
// que reciba alertas de otros.
func (s *Service) Ensure(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.repo.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u = s.defaultUser(id)
	u.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) SaveLocation(ctx context.Context, id string, loc geo.Location) (User, error) {
	if !validLocation(loc) {
		return User{}, fmt.Errorf("%w: location out of range", ErrInvalidInput)
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	u.Location = loc
	u.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) SavePreferences(ctx context.Context, id string, p Preferences) (User, error) {
	if p.Frequency == "" {
		p.Frequency = FrequencyImmediate
	}
	if p.Frequency != FrequencyImmediate && p.Frequency != FrequencyMute {
		return User{}, fmt.Errorf("%w: frequency must be immediate or mute", ErrInvalidInput)
	}
	if r := p.AlertRadiusKm; r != nil && (*r < 0 || math.IsNaN(*r) || math.IsInf(*r, 0)) {
		return User{}, fmt.Errorf("%w: alert_radius_km must be >= 0", ErrInvalidInput)
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	u.Preferences = p
	u.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// List devuelve los usuarios conocidos (observadores para alertas).
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func validLocation(l geo.Location) bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// WithClock reemplaza el reloj (tests, CLI, reloj fijo del router).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}
