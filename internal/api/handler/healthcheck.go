package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// HealthcheckHandler é a sonda de liveness, não toca no banco
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// GetHealth verifica o banco de dados: 200 quando conectado, 503 caso contrário.
// O corpo traz os indicadores nos dois casos.
func GetHealth(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := service.GetHealth(r.Context())

		status := http.StatusOK
		if !health.Success {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, r, status, health)
	}
}
