package lostpets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/matching"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/searchzone"
	"pet-finder/internal/metrics"
)

var (
	ErrInvalidInput = reports.ErrInvalidInput
	ErrNotFound     = errors.New("lost pet not found")
	ErrForbidden    = errors.New("only the owner can mark a pet as found")
)

// SightingLister es lo único que este módulo necesita de sightings.
type SightingLister interface {
	List(ctx context.Context) ([]reports.Sighting, error)
}

type Service struct {
	repo      Repository
	sightings SightingLister
	matcher   *matching.Engine
	zones     *searchzone.Engine
	photos    reports.PhotoStore
	listeners []reports.Listener
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewService(repo Repository, sightings SightingLister, matcher *matching.Engine, zones *searchzone.Engine) *Service {
	return &Service{
		repo:      repo,
		sightings: sightings,
		matcher:   matcher,
		zones:     zones,
		now:       time.Now,
	}
}

// WithPhotoStore sube las fotos data: URL al store en vez de guardarlas inline.
func (s *Service) WithPhotoStore(ps reports.PhotoStore) *Service {
	s.photos = ps
	return s
}

func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Subscribe agrega un listener que se invoca después de guardar cada reporte.
// Los listeners corren en orden dentro de Report: un sink lento demora la respuesta.
func (s *Service) Subscribe(l reports.Listener) {
	s.listeners = append(s.listeners, l)
}

type ReportInput struct {
	Name         string
	Species      reports.Species
	Breed        string
	Color        string
	Size         reports.Size
	Age          reports.LifeStage
	LastSeenAt   string
	Location     geo.Location
	GPSEnabled   bool
	SpecialNeeds bool
	Photo        string
}

// ReportResult es lo que el dueño ve al guardar: el registro, la zona de
// búsqueda sugerida y los avistamientos candidatos ya rankeados.
type ReportResult struct {
	LostPet reports.LostPet        `json:"lost_pet"`
	Zone    searchzone.Zone        `json:"zone"`
	Matches []matching.ScoredMatch `json:"matches"`
}

func (s *Service) Report(ctx context.Context, ownerUserID string, in ReportInput) (ReportResult, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return ReportResult{}, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}

	now := s.now()
	p := reports.LostPet{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         strings.TrimSpace(in.Name),
		Species:      reports.Species(strings.ToLower(strings.TrimSpace(string(in.Species)))),
		Breed:        strings.TrimSpace(in.Breed),
		Color:        strings.TrimSpace(in.Color),
		Size:         in.Size,
		Age:          in.Age,
		LastSeenAt:   strings.TrimSpace(in.LastSeenAt),
		Location:     in.Location,
		GPSEnabled:   in.GPSEnabled,
		SpecialNeeds: in.SpecialNeeds,
		CreatedAt:    now,
	}
	if err := reports.ValidateLostPet(p, now); err != nil {
		return ReportResult{}, err
	}

	ref, err := reports.StorePhoto(ctx, s.photos, "lost-pets/"+p.ID, in.Photo)
	if err != nil {
		return ReportResult{}, fmt.Errorf("store photo: %w", err)
	}
	p.PhotoRef = ref

	if err := s.repo.Create(ctx, p); err != nil {
		return ReportResult{}, err
	}

	matches, err := s.rank(ctx, p)
	if err != nil {
		return ReportResult{}, err
	}

	for _, l := range s.listeners {
		l.LostPetReported(ctx, p)
	}

	return ReportResult{
		LostPet: p,
		Zone:    s.zones.Compute(p.LastSeenAt, p.GPSEnabled, p.SpecialNeeds),
		Matches: matches,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (reports.LostPet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]reports.LostPet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]reports.LostPet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// MarkFound borra el reporte. Solo el dueño.
func (s *Service) MarkFound(ctx context.Context, id, userID string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerUserID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Matches recalcula el ranking contra todos los avistamientos actuales.
func (s *Service) Matches(ctx context.Context, id string) ([]matching.ScoredMatch, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.rank(ctx, p)
}

func (s *Service) Zone(ctx context.Context, id string) (searchzone.Zone, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return searchzone.Zone{}, err
	}
	return s.zones.Compute(p.LastSeenAt, p.GPSEnabled, p.SpecialNeeds), nil
}

func (s *Service) rank(ctx context.Context, p reports.LostPet) ([]matching.ScoredMatch, error) {
	all, err := s.sightings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := s.matcher.RankMatches(p, all)
	s.metrics.ObserveMatches(string(p.Species), len(out))
	return out, nil
}

// WithClock reemplaza el reloj (tests, CLI, reloj fijo del router).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}
