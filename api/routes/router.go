// Package routes assembles the HTTP surface: the platform webhook, health
// probes, and the metrics endpoint.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/retailops/shiftbot/api/controllers"
	"github.com/retailops/shiftbot/api/middleware"
	"github.com/retailops/shiftbot/pkg/logger"
)

func NewRouter(
	logg *logger.Logger,
	dbP controllers.Pinger,
	dispatcher controllers.Dispatcher,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	updates := controllers.NewUpdates(dispatcher, logg)

	r.Get("/healthz", controllers.HealthLive())
	r.Get("/readyz", controllers.HealthReady(dbP, logg))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/updates", updates.Handle)
	})

	return r
}
