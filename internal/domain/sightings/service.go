package sightings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-finder/internal/domain/geo"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/risk"
)

var (
	ErrInvalidInput = reports.ErrInvalidInput
	ErrNotFound     = errors.New("sighting not found")
)

type Service struct {
	repo      Repository
	risk      *risk.Engine
	photos    reports.PhotoStore
	listeners []reports.Listener
	now       func() time.Time
}

func NewService(repo Repository, riskEngine *risk.Engine) *Service {
	return &Service{
		repo: repo,
		risk: riskEngine,
		now:  time.Now,
	}
}

func (s *Service) WithPhotoStore(ps reports.PhotoStore) *Service {
	s.photos = ps
	return s
}

// Subscribe agrega un listener que se invoca después de guardar cada avistamiento.
// Los listeners corren en orden dentro de Report: un sink lento demora la respuesta.
func (s *Service) Subscribe(l reports.Listener) {
	s.listeners = append(s.listeners, l)
}

type ReportInput struct {
	Species  reports.Species
	Breed    string
	Color    string
	Size     reports.Size
	Age      reports.LifeStage
	Notes    string
	Time     string
	Location geo.Location
	Photo    string
}

func (s *Service) Report(ctx context.Context, reporterUserID string, in ReportInput) (reports.Sighting, error) {
	if strings.TrimSpace(reporterUserID) == "" {
		return reports.Sighting{}, fmt.Errorf("%w: reporter required", ErrInvalidInput)
	}

	now := s.now()
	sg := reports.Sighting{
		ID:             uuid.NewString(),
		ReporterUserID: reporterUserID,
		Species:        reports.Species(strings.ToLower(strings.TrimSpace(string(in.Species)))),
		Breed:          strings.TrimSpace(in.Breed),
		Color:          strings.TrimSpace(in.Color),
		Size:           in.Size,
		Age:            in.Age,
		Notes:          strings.TrimSpace(in.Notes),
		Time:           strings.TrimSpace(in.Time),
		Location:       in.Location,
		CreatedAt:      now,
	}
	if err := reports.ValidateSighting(sg, now); err != nil {
		return reports.Sighting{}, err
	}

	ref, err := reports.StorePhoto(ctx, s.photos, "sightings/"+sg.ID, in.Photo)
	if err != nil {
		return reports.Sighting{}, fmt.Errorf("store photo: %w", err)
	}
	sg.PhotoRef = ref

	if err := s.repo.Create(ctx, sg); err != nil {
		return reports.Sighting{}, err
	}

	for _, l := range s.listeners {
		l.SightingReported(ctx, sg)
	}
	return sg, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (reports.Sighting, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]reports.Sighting, error) {
	return s.repo.List(ctx)
}

// RiskReport es la respuesta de /risk.
type RiskReport struct {
	Location     geo.Location `json:"location"`
	Level        risk.Level   `json:"level"`
	RecentNearby int          `json:"recent_nearby"`
}

// Risk evalúa la zona alrededor de loc con todos los avistamientos.
func (s *Service) Risk(ctx context.Context, loc geo.Location) (RiskReport, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return RiskReport{}, err
	}
	n := s.risk.CountRecentNearby(loc, all)
	return RiskReport{
		Location:     loc,
		Level:        risk.Classify(n),
		RecentNearby: n,
	}, nil
}

// WithClock reemplaza el reloj (tests, CLI, reloj fijo del router).
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}
