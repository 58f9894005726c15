package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int {
	return &v
}

func newTestJob(t *testing.T, enabled bool) (*StockAlertJob, *mocks.MockForecaster) {
	ctrl := gomock.NewController(t)
	forecaster := mocks.NewMockForecaster(ctrl)

	cfg := &config.Config{
		StockAlert: config.StockAlert{CronSchedule: "0 7 * * *", Enabled: enabled},
	}

	return NewStockAlertJob(forecaster, cfg), forecaster
}

func TestStockAlertJob_Run(t *testing.T) {
	tests := []struct {
		name          string
		report        domain.StockForecastReport
		expectedCount int
	}{
		{
			name: "Produtos críticos - deve registrar a quantidade",
			report: domain.StockForecastReport{
				Success:       true,
				AnalysisID:    "abc123",
				CriticalCount: 2,
				TopCritical: []domain.StockForecastEntry{
					{ProductID: 1, Name: "Ayran", DaysRemaining: intPtr(1), Urgency: domain.UrgencyCritical},
					{ProductID: 2, Name: "Baklava", DaysRemaining: intPtr(6), Urgency: domain.UrgencyWarning},
				},
			},
			expectedCount: 2,
		},
		{
			name:          "Relatório com falha - não deve contar críticos",
			report:        domain.StockForecastReport{Success: false, Error: "data source unavailable: timeout"},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, forecaster := newTestJob(t, false)
			forecaster.EXPECT().
				GetStockForecastReport(gomock.Any(), domain.StockFilter{}).
				Return(tt.report)

			assert.True(t, job.Run(context.Background()))

			status := job.GetStatus()
			assert.Equal(t, tt.expectedCount, status["last_critical_count"])
			assert.Equal(t, false, status["running"])
		})
	}
}

func TestStockAlertJob_RunSkipsWhenAlreadyRunning(t *testing.T) {
	job, _ := newTestJob(t, false)
	job.running = true

	assert.False(t, job.Run(context.Background()))
	assert.False(t, job.TriggerManualSync())
}

func TestStockAlertJob_TriggerManualSyncTwice(t *testing.T) {
	job, forecaster := newTestJob(t, false)

	release := make(chan struct{})
	forecaster.EXPECT().
		GetStockForecastReport(gomock.Any(), domain.StockFilter{}).
		DoAndReturn(func(context.Context, domain.StockFilter) domain.StockForecastReport {
			<-release
			return domain.StockForecastReport{Success: true, CriticalCount: 1}
		}).
		Times(1)

	assert.True(t, job.TriggerManualSync())
	// a segunda solicitação chega antes de a goroutine da primeira ser agendada
	assert.False(t, job.TriggerManualSync())
	assert.Equal(t, true, job.GetStatus()["running"])

	close(release)

	assert.Eventually(t, func() bool {
		return job.GetStatus()["running"] == false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, job.GetStatus()["last_critical_count"])
}

func TestStockAlertJob_StartDisabled(t *testing.T) {
	job, _ := newTestJob(t, false)

	assert.NoError(t, job.Start(context.Background()))
	assert.Empty(t, job.scheduler.Jobs())
}

func TestStockAlertJob_StartInvalidCron(t *testing.T) {
	job, _ := newTestJob(t, true)
	job.config.CronSchedule = "todo dia"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, job.Start(ctx))
}
