// Package scheduler contém os agendamentos em background do serviço de previsão
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
)

type StockAlertConfig struct {
	CronSchedule string
	Enabled      bool
}

// StockAlertJob gera periodicamente o relatório de estoque e registra os produtos críticos.
// Nada é persistido, o alerta existe apenas nos logs.
type StockAlertJob struct {
	scheduler          *gocron.Scheduler
	forecaster         forecasting.Forecaster
	config             StockAlertConfig
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastCriticalCount  int
}

func NewStockAlertJob(forecaster forecasting.Forecaster, cfg *config.Config) *StockAlertJob {
	alertConfig := StockAlertConfig{
		CronSchedule: cfg.StockAlert.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.StockAlert.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": alertConfig.CronSchedule,
		"enabled":       alertConfig.Enabled,
	}).Info("Configuração do alerta de estoque carregada")

	return &StockAlertJob{
		scheduler:  gocron.NewScheduler(time.Local),
		forecaster: forecaster,
		config:     alertConfig,
	}
}

func (j *StockAlertJob) Start(ctx context.Context) error {
	if !j.config.Enabled {
		logrus.Info("Cron de alerta de estoque desabilitada por configuração")
		return nil
	}

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		j.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar alerta de estoque: %w", err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de alerta de estoque")
		j.scheduler.Stop()
	}()

	return nil
}

// Run executa uma verificação completa. Retorna false quando outra execução já está em andamento.
func (j *StockAlertJob) Run(ctx context.Context) bool {
	if !j.claim() {
		logrus.Warn("Alerta de estoque já está em execução")
		return false
	}
	j.execute(ctx)
	return true
}

// claim marca o job como em execução. Retorna false se ele já estava.
func (j *StockAlertJob) claim() bool {
	j.runMutex.Lock()
	defer j.runMutex.Unlock()

	if j.running {
		return false
	}
	j.running = true
	j.lastRunStartedAt = time.Now()
	return true
}

// execute roda a verificação e libera o job ao final. Só deve ser chamado após claim.
func (j *StockAlertJob) execute(ctx context.Context) {
	criticalCount := 0
	defer func() {
		j.runMutex.Lock()
		j.running = false
		j.lastRunCompletedAt = time.Now()
		j.lastCriticalCount = criticalCount
		j.runMutex.Unlock()
	}()

	report := j.forecaster.GetStockForecastReport(ctx, domain.StockFilter{})
	if !report.Success {
		logrus.WithFields(logrus.Fields{
			"code":    report.Code,
			"message": report.Message,
			"error":   report.Error,
		}).Warn("Alerta de estoque: relatório indisponível")
		return
	}

	criticalCount = report.CriticalCount
	for _, entry := range report.TopCritical {
		logrus.WithFields(logrus.Fields{
			"analysis_id":    report.AnalysisID,
			"product_id":     entry.ProductID,
			"product":        entry.Name,
			"current_stock":  entry.CurrentStock,
			"days_remaining": *entry.DaysRemaining,
			"urgency":        entry.Urgency,
		}).Warn("Alerta de estoque: produto próximo do esgotamento")
	}

	logrus.WithFields(logrus.Fields{
		"analysis_id":    report.AnalysisID,
		"critical_count": report.CriticalCount,
		"depleted_count": report.DepletedCount,
	}).Info("Alerta de estoque concluído")
}

// TriggerManualSync inicia uma verificação fora do agendamento.
// Retorna false sem disparar nada se uma execução já estiver em andamento.
// O job é marcado como em execução antes de a goroutine começar, então duas
// solicitações seguidas nunca disparam duas verificações.
func (j *StockAlertJob) TriggerManualSync() bool {
	if !j.claim() {
		logrus.Info("Alerta de estoque já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando alerta de estoque manual")
	go j.execute(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (j *StockAlertJob) GetStatus() map[string]any {
	j.runMutex.Lock()
	defer j.runMutex.Unlock()

	return map[string]any{
		"enabled":               j.config.Enabled,
		"cron":                  j.config.CronSchedule,
		"running":               j.running,
		"last_run_started_at":   j.lastRunStartedAt,
		"last_run_completed_at": j.lastRunCompletedAt,
		"last_critical_count":   j.lastCriticalCount,
	}
}
