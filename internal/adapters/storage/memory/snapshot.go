package memory

import (
	"pet-finder/internal/metrics"
	"pet-finder/internal/platform/logger"
)

// Claves de snapshot (una colección completa por clave).
const (
	KeyLostPets      = "pf_lost"
	KeySightings     = "pf_sight"
	KeyUsers         = "pf_users"
	KeyNotifications = "pf_notifs"
)

// Snapshotter guarda y recupera colecciones enteras (p.ej. localkv).
type Snapshotter interface {
	Save(key string, v any) error
	Load(key string, v any) (bool, error)
}

// Persister escribe el snapshot después de cada mutación. Un fallo se
// loguea y se cuenta pero nunca llega al caller: la memoria manda.
// Un *Persister nil no persiste nada.
type Persister struct {
	store   Snapshotter
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewPersister(store Snapshotter, log logger.Logger, m *metrics.Metrics) *Persister {
	if log == nil {
		log = logger.Discard()
	}
	return &Persister{
		store:   store,
		log:     log.With(map[string]any{"component": "snapshot"}),
		metrics: m,
	}
}

func (p *Persister) save(key string, v any) {
	if p == nil || p.store == nil {
		return
	}
	if err := p.store.Save(key, v); err != nil {
		p.metrics.PersistenceFailed(key)
		p.log.Warn("snapshot write failed", map[string]any{"key": key, "err": err})
	}
}

// load devuelve false si no hay snapshot o si no se pudo leer.
func (p *Persister) load(key string, v any) bool {
	if p == nil || p.store == nil {
		return false
	}
	ok, err := p.store.Load(key, v)
	if err != nil {
		p.metrics.PersistenceFailed(key)
		p.log.Warn("snapshot read failed, starting empty", map[string]any{"key": key, "err": err})
		return false
	}
	return ok
}
