package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// GetTomorrowForecast retorna a previsão de vendas do dia seguinte.
// Falhas da previsão também respondem 200, o cliente decide pelo campo success.
func GetTomorrowForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forecast := service.GetTomorrowForecast(r.Context())
		annotateRequest(r, forecast.Success, forecast.Code, "")

		writeJSON(w, r, http.StatusOK, forecast)
	}
}

// GetStockForecast retorna o relatório de esgotamento de estoque,
// opcionalmente filtrado por categoria e urgência
func GetStockForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseStockFilter(r)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("forecast: filtro de estoque inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), map[string]any{
				"accepted_urgency": domain.Urgencies(),
			})
			return
		}

		report := service.GetStockForecastReport(r.Context(), filter)
		annotateRequest(r, report.Success, report.Code, report.AnalysisID)

		writeJSON(w, r, http.StatusOK, report)
	}
}

func parseStockFilter(r *http.Request) (domain.StockFilter, error) {
	query := r.URL.Query()

	filter := domain.StockFilter{
		Category: strings.TrimSpace(query.Get("category")),
	}

	if raw := strings.TrimSpace(query.Get("urgency")); raw != "" {
		urgency := domain.Urgency(raw)
		if !urgency.IsValid() {
			return domain.StockFilter{}, errors.Errorf("valor inválido para urgency: %q", raw)
		}
		filter.Urgency = urgency
	}

	return filter, nil
}

// annotateRequest leva o resultado da previsão para o log de fim da requisição
func annotateRequest(r *http.Request, success bool, code, analysisID string) {
	ctx := r.Context()
	log.AddRequestField(ctx, "forecast_success", success)
	if code != "" {
		log.AddRequestField(ctx, "forecast_code", code)
	}
	if analysisID != "" {
		log.AddRequestField(ctx, "analysis_id", analysisID)
	}
}
