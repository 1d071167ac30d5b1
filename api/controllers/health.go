package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mercadoviva/shipping-backend/api/responses"
	"github.com/mercadoviva/shipping-backend/pkg/config"
	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
	"github.com/mercadoviva/shipping-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger is any dependency the readiness probe should check.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MercadoViva-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and cache. Nil pingers are skipped so the
// probe keeps working when a dependency is not wired (tests, dev).
func HealthReady(cfg *config.Config, logg *logger.Logger, checks map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-MercadoViva-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		status := map[string]string{}
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check.Ping(ctx); err != nil {
				status[name] = "down"
				responses.WriteError(ctx, logg,
					w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unreachable").WithDetails(status))
				return
			}
			status[name] = "up"
		}

		status["status"] = "ready"
		responses.WriteSuccess(w, status)
	}
}
