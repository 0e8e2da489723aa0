package router

import (
	"context"
	"net/http"
	"time"

	"farm-records/internal/adapters/storage/memory"
	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/integrity"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/domain/reports"
	"farm-records/internal/graphql"
	"farm-records/internal/middleware"
	"farm-records/internal/platform/logger"
	"farm-records/internal/platform/metrics"
	"farm-records/internal/platform/respond"

	_ "farm-records/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Store es lo que el router necesita de un adapter de storage
// (memory, postgres o sqlite).
type Store interface {
	Clients() clients.Repository
	Feeds() feeds.Repository
	Livestock() livestock.Repository
	Ping(ctx context.Context) error
}

type Options struct {
	// Opcional: si es nil se usa el store in-memory.
	Store Store

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Origen permitido para CORS. Vacío permite cualquiera.
	FrontendURL string
	// Cero desactiva el timeout por request.
	RequestTimeout time.Duration
}

func NewRouter(opts Options) (http.Handler, error) {
	store := opts.Store
	if store == nil {
		store = memory.New()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	// Services por módulo; el guard comparte los repos del mismo store.
	guard := integrity.NewGuard(store.Clients(), store.Feeds(), store.Livestock(), m)
	clientsSvc := clients.NewService(store.Clients(), guard)
	feedsSvc := feeds.NewService(store.Feeds(), guard)
	livestockSvc := livestock.NewService(store.Livestock(), guard)
	reportsSvc := reports.NewService(clientsSvc, livestockSvc, feedsSvc)

	gql, err := graphql.NewHandler(graphql.Services{
		Clients:   clientsSvc,
		Feeds:     feedsSvc,
		Livestock: livestockSvc,
		Reports:   reportsSvc,
	}, log.With(map[string]any{"component": "graphql"}))
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.FrontendURL))
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := store.Ping(req.Context()); err != nil {
			log.Warn("health check failed", map[string]any{"err": err})
			respond.Fail(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Method(http.MethodPost, "/graphql", gql)

	// Rutas por módulo
	r.Route("/api/clients", func(r chi.Router) {
		reports.RegisterClientRoutes(r, reportsSvc, log)
		clients.RegisterRoutes(r, clientsSvc, log)
	})
	r.Route("/api/feed", func(r chi.Router) {
		feeds.RegisterRoutes(r, feedsSvc, log)
	})
	r.Route("/api/livestock", func(r chi.Router) {
		reports.RegisterLivestockRoutes(r, reportsSvc, log)
		livestock.RegisterRoutes(r, livestockSvc, log)
	})

	return r, nil
}
