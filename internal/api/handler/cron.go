package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// StockAlertTrigger é o agendador de alerta de estoque visto pela camada HTTP
type StockAlertTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunStockAlert dispara o alerta de estoque fora do agendamento.
// Responde 202 mesmo quando uma execução já está em andamento, informando em "started".
func RunStockAlert(job StockAlertTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := job.TriggerManualSync()

		message := "Alerta de estoque iniciado com sucesso"
		if !started {
			message = "Alerta de estoque já está em execução"
		}

		log.ForContext(r.Context()).WithField("job", "stock-alert").Info(message)

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"started": started,
		})
	}
}

// GetStockAlertStatus retorna o status do agendador de alerta de estoque
func GetStockAlertStatus(job StockAlertTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, job.GetStatus())
	}
}
