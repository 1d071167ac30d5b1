package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mercadoviva/shipping-backend/api/controllers"
	shippingcontrollers "github.com/mercadoviva/shipping-backend/api/controllers/shipping"
	"github.com/mercadoviva/shipping-backend/api/middleware"
	shippingsvc "github.com/mercadoviva/shipping-backend/internal/shipping"
	"github.com/mercadoviva/shipping-backend/pkg/config"
	"github.com/mercadoviva/shipping-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	cachePinger controllers.Pinger,
	shippingService shippingsvc.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": dbPinger,
			"cache":    cachePinger,
		}))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/shipping", func(r chi.Router) {
		r.Post("/quote", shippingcontrollers.CalculateCartQuote(shippingService, logg))
		r.Post("/sellers/{sellerId}/quote", shippingcontrollers.CalculateSellerQuote(shippingService, logg))
		r.Post("/summary", shippingcontrollers.QuoteSummary(logg))
	})

	return r
}
