package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-forecast-api/infrastructure/repository"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

type Service struct {
	dataSource repository.ForecastDataSource
	locale     string
	windowDays int
	now        func() time.Time
	generateID func() (string, error)
}

func NewService(dataSource repository.ForecastDataSource, cfg *config.Config) *Service {
	locale := cfg.Forecast.Locale
	if !SupportedLocale(locale) {
		log.L.Warnf("Idioma de previsão desconhecido: %q, usando %q", locale, defaultLocale)
		locale = defaultLocale
	}

	return &Service{
		dataSource: dataSource,
		locale:     locale,
		windowDays: cfg.Forecast.StockWindowDays,
		now:        time.Now,
		generateID: utils.GenerateID,
	}
}

// WithClock substitui o relógio usado para calcular "amanhã" e as datas de esgotamento
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetTomorrowForecast(ctx context.Context) (result domain.SalesForecast) {
	logger := log.ForContext(ctx)
	defer recoverFault(logger, "sales-forecast", func(err *ForecastError) {
		result = salesFailure(err)
	})

	rows, err := s.dataSource.FetchDailySales(ctx)
	if err != nil {
		forecastErr := classify(err)
		logger.WithError(err).Error("sales-forecast: erro ao buscar vendas diárias")
		return salesFailure(forecastErr)
	}

	forecast, err := ForecastTomorrow(rows, s.now(), s.locale)
	if err != nil {
		logger.WithFields(log.Fields{
			"days_available": len(rows),
		}).Info("sales-forecast: histórico insuficiente para previsão")
		return salesFailure(classify(err))
	}

	logger.WithFields(log.Fields{
		"target_date":       forecast.TargetDate,
		"method":            forecast.Method,
		"predicted_units":   forecast.PredictedUnits,
		"predicted_revenue": forecast.PredictedRevenue,
		"trend_factor":      forecast.TrendFactor,
	}).Info("sales-forecast: previsão gerada com sucesso")

	return *forecast
}

func (s *Service) GetStockForecastReport(ctx context.Context, filter domain.StockFilter) (result domain.StockForecastReport) {
	logger := log.ForContext(ctx)
	defer recoverFault(logger, "stock-forecast", func(err *ForecastError) {
		result = stockFailure(err)
	})

	products, err := s.dataSource.FetchProductSnapshots(ctx)
	if err != nil {
		logger.WithError(err).Error("stock-forecast: erro ao buscar produtos")
		return stockFailure(classify(err))
	}

	report, err := AnalyzeStock(products, s.now(), s.windowDays, filter)
	if err != nil {
		logger.Info("stock-forecast: nenhum produto ativo encontrado")
		return stockFailure(classify(err))
	}

	analysisID, err := s.generateID()
	if err != nil {
		// O identificador só serve para correlacionar logs, o relatório continua válido
		logger.WithError(err).Warn("stock-forecast: erro ao gerar identificador da análise")
	}
	report.AnalysisID = analysisID

	logger.WithFields(log.Fields{
		"analysis_id":    report.AnalysisID,
		"total_products": report.TotalProducts,
		"critical_count": report.CriticalCount,
		"depleted_count": report.DepletedCount,
	}).Info("stock-forecast: relatório gerado com sucesso")

	return *report
}

func (s *Service) GetHealth(ctx context.Context) (result domain.HealthStatus) {
	logger := log.ForContext(ctx)
	defer recoverFault(logger, "health", func(err *ForecastError) {
		result = unhealthy(err)
	})

	if err := s.dataSource.HealthCheck(ctx); err != nil {
		logger.WithError(err).Warn("health: banco de dados indisponível")
		return unhealthy(err)
	}

	return domain.HealthStatus{
		Success:  true,
		Status:   domain.HealthStatusHealthy,
		Database: domain.DatabaseConnected,
	}
}

// recoverFault transforma um panic durante o cálculo em ForecastError.
// Deve ser chamado com defer diretamente no método público.
func recoverFault(logger log.Logger, operation string, onFault func(*ForecastError)) {
	if r := recover(); r != nil {
		err := NewForecastError(ErrComputationFault, apiErrors.ErrInternalServer, fmt.Sprint(r))
		logger.WithFields(log.Fields{
			"error": err.Error(),
			"code":  err.Code,
		}).Errorf("%s: falha inesperada no cálculo", operation)
		onFault(err)
	}
}

func unhealthy(err error) domain.HealthStatus {
	return domain.HealthStatus{
		Success:  false,
		Status:   domain.HealthStatusUnhealthy,
		Database: domain.DatabaseDisconnected,
		Error:    err.Error(),
	}
}

func salesFailure(err *ForecastError) domain.SalesForecast {
	result := domain.SalesForecast{Success: false, Code: err.Code}
	if IsInsufficientData(err) {
		result.Message = err.Error()
	} else {
		result.Error = err.Error()
	}
	return result
}

func stockFailure(err *ForecastError) domain.StockForecastReport {
	result := domain.StockForecastReport{Success: false, Code: err.Code}
	if IsInsufficientData(err) {
		result.Message = err.Error()
	} else {
		result.Error = err.Error()
	}
	return result
}
