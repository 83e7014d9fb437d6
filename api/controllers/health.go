package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/stockless/stockless-backend/api/responses"
	"github.com/stockless/stockless-backend/pkg/config"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/logger"
)

const readinessProbeTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stockless-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every hard dependency. A failed probe returns the
// dependency's name so operators see which backend is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP pinger, redisP pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Stockless-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessProbeTimeout)
		defer cancel()

		probes := []struct {
			name   string
			pinger pinger
		}{
			{"database", dbP},
			{"redis", redisP},
		}
		for _, probe := range probes {
			if probe.pinger == nil {
				continue
			}
			if err := probe.pinger.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, probe.name+" unavailable").
					WithDetails(map[string]string{"dependency": probe.name}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
