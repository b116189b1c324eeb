package reports

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/platform/clock"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrFutureTimestamp = errors.New("timestamp is in the future")
)

// ValidateLostPet aplica las reglas de entrada. now define "el futuro".
func ValidateLostPet(p LostPet, now time.Time) error {
	if err := validateAttributes(p.Species, p.Breed, p.Size, p.Age); err != nil {
		return err
	}
	if err := validateLocation(p.Location); err != nil {
		return err
	}
	return validateTimestamp("last_seen_at", p.LastSeenAt, now)
}

func ValidateSighting(s Sighting, now time.Time) error {
	if err := validateAttributes(s.Species, s.Breed, s.Size, s.Age); err != nil {
		return err
	}
	if err := validateLocation(s.Location); err != nil {
		return err
	}
	return validateTimestamp("time", s.Time, now)
}

func validateAttributes(sp Species, breed string, size Size, age LifeStage) error {
	if sp != SpeciesDog && sp != SpeciesCat {
		return fmt.Errorf("%w: species must be dog or cat", ErrInvalidInput)
	}
	if b := strings.TrimSpace(breed); b != "" && !slices.Contains(BreedsFor(sp), b) {
		return fmt.Errorf("%w: unknown %s breed %q", ErrInvalidInput, sp, b)
	}
	switch size {
	case "", SizeSmall, SizeMedium, SizeLarge:
	default:
		return fmt.Errorf("%w: size must be small, medium or large", ErrInvalidInput)
	}
	if age != "" && !slices.Contains(LifeStagesFor(sp), age) {
		return fmt.Errorf("%w: age %q not valid for %s", ErrInvalidInput, age, sp)
	}
	return nil
}

func validateLocation(l geo.Location) error {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return fmt.Errorf("%w: coordinates must be finite", ErrInvalidInput)
	}
	if l.Lat < -90 || l.Lat > 90 || l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}
	return nil
}

func validateTimestamp(field, v string, now time.Time) error {
	t, ok := clock.Parse(v, now.Location())
	if !ok {
		return fmt.Errorf("%w: %s must be YYYY-MM-DDTHH:MM", ErrInvalidInput, field)
	}
	if t.After(now) {
		return fmt.Errorf("%w: %s", ErrFutureTimestamp, field)
	}
	return nil
}
