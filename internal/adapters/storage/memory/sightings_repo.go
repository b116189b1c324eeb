package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/sightings"
)

type sightingRepo struct {
	mu      sync.RWMutex
	items   []reports.Sighting // más nuevo primero
	byID    map[string]int
	persist *Persister
}

func NewSightingRepo(p *Persister) sightings.Repository {
	r := &sightingRepo{persist: p}
	var saved []reports.Sighting
	if p.load(KeySightings, &saved) {
		r.items = saved
	}
	r.reindex()
	return r
}

func (r *sightingRepo) Create(ctx context.Context, s reports.Sighting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sighting id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("sighting already exists")
	}

	r.items = append([]reports.Sighting{s}, r.items...)
	r.reindex()
	r.persist.save(KeySightings, r.items)
	return nil
}

func (r *sightingRepo) GetByID(ctx context.Context, id string) (reports.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return reports.Sighting{}, sightings.ErrNotFound
	}
	return r.items[i], nil
}

func (r *sightingRepo) List(ctx context.Context) ([]reports.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.Sighting, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *sightingRepo) reindex() {
	r.byID = make(map[string]int, len(r.items))
	for i, s := range r.items {
		r.byID[s.ID] = i
	}
}
