package alerts

import (
	"context"

	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/users"
	"pet-finder/internal/metrics"
	"pet-finder/internal/platform/logger"
)

// Interfaces chicas para no importar lostpets/sightings (evita ciclos).
type (
	UserDirectory interface {
		List(ctx context.Context) ([]users.User, error)
	}
	LostPetsByOwner interface {
		ListByOwner(ctx context.Context, ownerUserID string) ([]reports.LostPet, error)
	}
	SightingLister interface {
		List(ctx context.Context) ([]reports.Sighting, error)
	}
	Inbox interface {
		Push(ctx context.Context, n notifications.Notification) (notifications.Notification, error)
	}
)

// Sink recibe cada notificación ya guardada en el inbox (NATS, webhook).
type Sink interface {
	Name() string
	Deliver(ctx context.Context, n notifications.Notification) error
}

type Deps struct {
	Engine    *Engine
	Users     UserDirectory
	LostPets  LostPetsByOwner
	Sightings SightingLister
	Inbox     Inbox
	Sinks     []Sink
	Metrics   *metrics.Metrics
	Logger    logger.Logger
}

// Service implementa reports.Listener: evalúa cada reporte nuevo para
// todos los usuarios conocidos menos quien lo hizo.
type Service struct {
	engine    *Engine
	users     UserDirectory
	lost      LostPetsByOwner
	sightings SightingLister
	inbox     Inbox
	sinks     []Sink
	metrics   *metrics.Metrics
	log       logger.Logger
}

var _ reports.Listener = (*Service)(nil)

func NewService(d Deps) *Service {
	log := d.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		engine:    d.Engine,
		users:     d.Users,
		lost:      d.LostPets,
		sightings: d.Sightings,
		inbox:     d.Inbox,
		sinks:     d.Sinks,
		metrics:   d.Metrics,
		log:       log.With(map[string]any{"component": "alerts"}),
	}
}

func (s *Service) LostPetReported(ctx context.Context, p reports.LostPet) {
	observers, err := s.users.List(ctx)
	if err != nil {
		s.log.Error("list users failed", map[string]any{"err": err, "lost_pet_id": p.ID})
		return
	}
	sightings, err := s.sightings.List(ctx)
	if err != nil {
		s.log.Error("list sightings failed", map[string]any{"err": err, "lost_pet_id": p.ID})
		return
	}

	for _, u := range observers {
		if u.ID == p.OwnerUserID {
			continue
		}
		s.handle(ctx, notifications.TypeLostNearby, s.engine.LostAdded(p, u, sightings))
	}
}

func (s *Service) SightingReported(ctx context.Context, sg reports.Sighting) {
	observers, err := s.users.List(ctx)
	if err != nil {
		s.log.Error("list users failed", map[string]any{"err": err, "sighting_id": sg.ID})
		return
	}
	all, err := s.sightings.List(ctx)
	if err != nil {
		s.log.Error("list sightings failed", map[string]any{"err": err, "sighting_id": sg.ID})
		return
	}
	// el riesgo de zona se mide con la actividad previa, sin el avistamiento nuevo
	sightings := withoutSighting(all, sg.ID)

	for _, u := range observers {
		if u.ID == sg.ReporterUserID {
			continue
		}
		mine, err := s.lost.ListByOwner(ctx, u.ID)
		if err != nil {
			s.log.Warn("list lost pets failed", map[string]any{"err": err, "user_id": u.ID})
			continue
		}
		s.handle(ctx, notifications.TypeSightingMatch, s.engine.SightingAdded(sg, u, mine, sightings))
	}
}

func (s *Service) handle(ctx context.Context, typ notifications.Type, res Result) {
	if !res.Emit {
		s.metrics.NotificationSuppressed(string(typ), res.Reason)
		return
	}

	n, err := s.inbox.Push(ctx, res.Notification)
	if err != nil {
		s.log.Error("push notification failed", map[string]any{"err": err, "user_id": res.Notification.UserID, "type": typ})
		return
	}
	s.metrics.NotificationEmitted(string(n.Type), string(n.Urgency))
	s.log.Info("notification emitted", map[string]any{
		"notification_id": n.ID,
		"user_id":         n.UserID,
		"type":            n.Type,
		"urgency":         n.Urgency,
	})

	for _, sink := range s.sinks {
		if err := sink.Deliver(ctx, n); err != nil {
			s.metrics.DeliveryFailed(sink.Name())
			s.log.Warn("deliver notification failed", map[string]any{"err": err, "sink": sink.Name(), "notification_id": n.ID})
		}
	}
}

func withoutSighting(in []reports.Sighting, id string) []reports.Sighting {
	out := make([]reports.Sighting, 0, len(in))
	for _, s := range in {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
