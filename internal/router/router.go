package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-finder/docs"
	mem "pet-finder/internal/adapters/storage/memory"
	pg "pet-finder/internal/adapters/storage/postgres"
	"pet-finder/internal/domain/alerts"
	"pet-finder/internal/domain/lostpets"
	"pet-finder/internal/domain/matching"
	"pet-finder/internal/domain/notifications"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/domain/risk"
	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/domain/searchzone"
	"pet-finder/internal/domain/sightings"
	"pet-finder/internal/domain/users"
	"pet-finder/internal/metrics"
	"pet-finder/internal/middleware"
	"pet-finder/internal/platform/clock"
	"pet-finder/internal/platform/ids"
	"pet-finder/internal/platform/logger"
	"pet-finder/internal/seed"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
	// Opcional (solo in-memory): snapshot de cada colección tras cada cambio.
	Snapshots mem.Snapshotter

	Logger   logger.Logger       // default: discard
	Metrics  *metrics.Metrics    // default: metrics.Default()
	Gatherer prometheus.Gatherer // lo que expone /metrics; default el registry global
	Now      clock.Now           // default: time.Now

	Scoring       scoring.Config // zero value => scoring.DefaultConfig()
	AlertRadiusKm *float64       // nil => users.DefaultAlertRadiusKm

	PhotoStore reports.PhotoStore // nil => la foto queda inline
	Sinks      []alerts.Sink

	Seed bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.Default()
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sc := opts.Scoring
	if sc.Weights == (scoring.Weights{}) {
		sc = scoring.DefaultConfig()
	}
	if err := sc.Validate(); err != nil {
		log.Warn("invalid scoring config, using defaults", map[string]any{"err": err})
		sc = scoring.DefaultConfig()
	}
	radius := users.DefaultAlertRadiusKm
	if opts.AlertRadiusKm != nil {
		radius = *opts.AlertRadiusKm
	}

	var (
		lostRepo  lostpets.Repository
		sightRepo sightings.Repository
		userRepo  users.Repository
		notifRepo notifications.Repository
	)
	if opts.DB != nil {
		lostRepo = pg.NewLostPetsRepo(opts.DB)
		sightRepo = pg.NewSightingsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		notifRepo = pg.NewNotificationsRepo(opts.DB)
	} else {
		persist := mem.NewPersister(opts.Snapshots, log, m)
		lostRepo = mem.NewLostPetRepo(persist)
		sightRepo = mem.NewSightingRepo(persist)
		userRepo = mem.NewUserRepo(persist)
		notifRepo = mem.NewNotificationRepo(persist)
	}

	if opts.Seed {
		res, err := seed.Load(context.Background(), lostRepo, sightRepo)
		if err != nil {
			log.Error("seed failed", map[string]any{"err": err})
		} else {
			log.Info("seed loaded", map[string]any{"lost_pets": res.LostPets, "sightings": res.Sightings})
		}
	}

	// Engines (puros, comparten reloj)
	matcher := matching.NewEngine(sc, now)
	zones := searchzone.NewEngine(now)
	riskEng := risk.NewEngine(now)

	// Services por módulo
	usersSvc := users.NewService(userRepo, radius).WithClock(now)
	notifSvc := notifications.NewService(notifRepo, ids.NewGenerator(now)).WithClock(now)
	lostSvc := lostpets.NewService(lostRepo, sightRepo, matcher, zones).
		WithPhotoStore(opts.PhotoStore).
		WithMetrics(m).
		WithClock(now)
	sightSvc := sightings.NewService(sightRepo, riskEng).
		WithPhotoStore(opts.PhotoStore).
		WithClock(now)

	dispatcher := alerts.NewService(alerts.Deps{
		Engine:    alerts.NewEngine(sc, now),
		Users:     usersSvc,
		LostPets:  lostRepo,
		Sightings: sightRepo,
		Inbox:     notifSvc,
		Sinks:     opts.Sinks,
		Metrics:   m,
		Logger:    log,
	})
	lostSvc.Subscribe(dispatcher)
	sightSvc.Subscribe(dispatcher)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(m))

	r.Use(middleware.UserContext)
	r.Use(ensureUser(usersSvc, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	lostpets.RegisterRoutes(r, lostSvc)
	sightings.RegisterRoutes(r, sightSvc)
	users.RegisterRoutes(r, usersSvc)
	notifications.RegisterRoutes(r, notifSvc)

	return r
}

// ensureUser registra con valores por defecto a todo usuario que aparece
// con X-User-ID, así entra en la lista de observadores de alertas.
func ensureUser(svc *users.Service, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid, ok := middleware.UserID(r.Context()); ok {
				if _, err := svc.Ensure(r.Context(), uid); err != nil {
					log.Warn("ensure user failed", map[string]any{"err": err, "user_id": uid})
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
