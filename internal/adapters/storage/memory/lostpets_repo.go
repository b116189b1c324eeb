package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-finder/internal/domain/lostpets"
	"pet-finder/internal/domain/reports"
)

// lostPetRepo guarda los reportes más nuevos primero.
type lostPetRepo struct {
	mu      sync.RWMutex
	items   []reports.LostPet
	persist *Persister
}

func NewLostPetRepo(p *Persister) lostpets.Repository {
	r := &lostPetRepo{persist: p}
	var saved []reports.LostPet
	if p.load(KeyLostPets, &saved) {
		r.items = saved
	}
	return r
}

func (r *lostPetRepo) Create(ctx context.Context, p reports.LostPet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("lost pet id required")
	}
	if r.indexOf(p.ID) >= 0 {
		return errors.New("lost pet already exists")
	}

	r.items = append([]reports.LostPet{p}, r.items...)
	r.persist.save(KeyLostPets, r.items)
	return nil
}

func (r *lostPetRepo) GetByID(ctx context.Context, id string) (reports.LostPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return reports.LostPet{}, lostpets.ErrNotFound
	}
	return r.items[i], nil
}

func (r *lostPetRepo) List(ctx context.Context) ([]reports.LostPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.LostPet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *lostPetRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]reports.LostPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.LostPet, 0)
	for _, p := range r.items {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *lostPetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return lostpets.ErrNotFound
	}
	r.items = append(r.items[:i:i], r.items[i+1:]...)
	r.persist.save(KeyLostPets, r.items)
	return nil
}

func (r *lostPetRepo) indexOf(id string) int {
	for i, p := range r.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
