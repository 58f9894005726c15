package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/middleware"
)

func Healthcheck(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: GetHealth(service),
		},
	}
}

func Forecasts(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast/tomorrow",
			Method:  http.MethodGet,
			Handler: GetTomorrowForecast(service),
		},
		{
			Path:    "/v1/forecast/stock",
			Method:  http.MethodGet,
			Handler: GetStockForecast(service),
		},
	}
}

// LegacyForecasts mantém os caminhos e o formato em turco usados pelo painel de gestão antigo
func LegacyForecasts(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/tahmin/yarin",
			Method:      http.MethodGet,
			Handler:     GetLegacyTomorrowForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Deprecated("/v1/forecast/tomorrow")},
		},
		{
			Path:        "/tahmin/stok",
			Method:      http.MethodGet,
			Handler:     GetLegacyStockForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Deprecated("/v1/forecast/stock")},
		},
	}
}

func Jobs(job StockAlertTrigger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/jobs/stock-alert/run",
			Method:  http.MethodPost,
			Handler: RunStockAlert(job),
		},
		{
			Path:    "/v1/jobs/stock-alert/status",
			Method:  http.MethodGet,
			Handler: GetStockAlertStatus(job),
		},
	}
}
