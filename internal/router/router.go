package router

import (
	"context"
	"net/http"

	_ "zookeepr-api/docs"
	"zookeepr-api/internal/domain/animals"
	"zookeepr-api/internal/middleware"
	"zookeepr-api/internal/platform/logger"
	"zookeepr-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Service ya cargado (Load) con su repositorio.
	Service *animals.Service

	// Bus opcional: si viene, se suscriben el log y las métricas de altas.
	Bus *animals.Bus

	Logger  logger.Logger   // nil => Nop
	Metrics *metrics.Metrics // nil => sin /metrics

	Swagger bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
		opts.Metrics.AnimalsRecords.Set(float64(opts.Service.Count()))
	}

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	subscribe(opts.Bus, log, opts.Metrics)

	animals.RegisterRoutes(r, opts.Service, log)

	return r
}

// subscribe conecta los consumidores de animal.created.
func subscribe(bus *animals.Bus, log logger.Logger, m *metrics.Metrics) {
	if bus == nil {
		return
	}
	bus.Subscribe(animals.EventCreated, func(_ context.Context, e animals.Event) error {
		log.Info("animal created", map[string]any{
			"id":      e.Animal.ID,
			"name":    e.Animal.Name,
			"species": e.Animal.Species,
			"total":   e.Total,
		})
		return nil
	})
	if m != nil {
		bus.Subscribe(animals.EventCreated, func(_ context.Context, e animals.Event) error {
			m.AnimalsCreated.Inc()
			m.AnimalsRecords.Set(float64(e.Total))
			return nil
		})
	}
}
