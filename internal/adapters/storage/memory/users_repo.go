package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-finder/internal/domain/users"
)

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	persist *Persister
}

func NewUserRepo(p *Persister) users.Repository {
	r := &userRepo{byID: make(map[string]users.User), persist: p}
	var saved []users.User
	if p.load(KeyUsers, &saved) {
		for _, u := range saved {
			r.byID[u.ID] = u
		}
	}
	return r
}

func (r *userRepo) Get(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

// Save hace upsert.
func (r *userRepo) Save(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	r.byID[u.ID] = u
	r.persist.save(KeyUsers, r.sorted())
	return nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(), nil
}

// Orden estable por id (los observadores se evalúan siempre en el mismo orden).
func (r *userRepo) sorted() []users.User {
	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
