package forecasting

import (
	"context"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

// Forecaster expõe as operações consumidas pela camada HTTP.
// Nenhuma operação retorna erro: falhas viram respostas com success=false.
type Forecaster interface {
	// GetTomorrowForecast prevê unidades e faturamento do dia seguinte
	GetTomorrowForecast(ctx context.Context) domain.SalesForecast

	// GetStockForecastReport projeta o esgotamento de estoque de todos os produtos ativos
	GetStockForecastReport(ctx context.Context, filter domain.StockFilter) domain.StockForecastReport

	// GetHealth verifica a conexão com o banco de dados
	GetHealth(ctx context.Context) domain.HealthStatus
}
