package forecasting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

const (
	minSalesHistoryDays = 3
	baselineWindow      = 7
	minWeekdaySamples   = 2
	trendWindow         = 3
	minUnitsForecast    = 1
)

var (
	minTrendFactor     = decimal.NewFromFloat(0.5)
	maxTrendFactor     = decimal.NewFromFloat(1.5)
	minRevenueForecast = decimal.NewFromInt(100)
	hundred            = decimal.NewFromInt(100)
)

// salesEstimate é a previsão antes da aplicação de tendência e pisos
type salesEstimate struct {
	units   int
	revenue decimal.Decimal
	method  string
}

// ForecastTomorrow prevê unidades e faturamento do dia seguinte a now.
//
// rows deve estar em ordem cronológica crescente, uma linha por dia com vendas.
// Usa a média dos mesmos dias da semana quando há ao menos duas amostras, senão a
// média dos últimos 7 dias, e ajusta pela tendência das últimas 3 vs 3 anteriores.
func ForecastTomorrow(rows []domain.DailySalesRow, now time.Time, locale string) (*domain.SalesForecast, error) {
	if len(rows) < minSalesHistoryDays {
		return nil, ErrInsufficientSalesData
	}

	target := now.AddDate(0, 0, 1)
	targetWeekday := ISOWeekday(target)

	avgUnits, avgRevenue := averages(lastN(rows, baselineWindow))

	estimate := weekdayEstimate(rows, targetWeekday)
	if estimate == nil {
		estimate = &salesEstimate{units: avgUnits, revenue: avgRevenue, method: domain.MethodSevenDayAverage}
	}

	factor := trendFactor(rows)
	units := int(decimal.NewFromInt(int64(estimate.units)).Mul(factor).IntPart())
	revenue := estimate.revenue.Mul(factor)

	if units < minUnitsForecast {
		units = minUnitsForecast
	}
	if revenue.LessThan(minRevenueForecast) {
		revenue = minRevenueForecast
	}

	return &domain.SalesForecast{
		Success:          true,
		TargetDate:       target.Format(time.DateOnly),
		Weekday:          targetWeekday,
		WeekdayName:      WeekdayName(targetWeekday, locale),
		Method:           estimate.method,
		PredictedUnits:   units,
		PredictedRevenue: revenue.Round(2).InexactFloat64(),
		AvgUnits7d:       avgUnits,
		AvgRevenue7d:     avgRevenue.Round(2).InexactFloat64(),
		PctChangeUnits:   percentChange(decimal.NewFromInt(int64(units)), decimal.NewFromInt(int64(avgUnits))),
		PctChangeRevenue: percentChange(revenue, avgRevenue),
		TrendFactor:      factor.Round(4).InexactFloat64(),
	}, nil
}

// weekdayEstimate calcula a média das linhas do mesmo dia da semana, ou nil se houver menos de duas
func weekdayEstimate(rows []domain.DailySalesRow, isoWeekday int) *salesEstimate {
	sameDay := make([]domain.DailySalesRow, 0, len(rows)/7+1)
	for _, row := range rows {
		if row.Weekday == isoWeekday {
			sameDay = append(sameDay, row)
		}
	}

	if len(sameDay) < minWeekdaySamples {
		return nil
	}

	units, revenue := averages(sameDay)
	return &salesEstimate{units: units, revenue: revenue, method: domain.MethodWeekdayAverage}
}

// trendFactor compara o faturamento médio das 3 últimas linhas com as 3 anteriores.
// Retorna 1 quando não há 6 linhas ou quando o período anterior não teve faturamento.
func trendFactor(rows []domain.DailySalesRow) decimal.Decimal {
	if len(rows) < 2*trendWindow {
		return decimal.NewFromInt(1)
	}

	recent := rows[len(rows)-trendWindow:]
	prior := rows[len(rows)-2*trendWindow : len(rows)-trendWindow]

	_, recentRevenue := averages(recent)
	_, priorRevenue := averages(prior)

	if !priorRevenue.IsPositive() {
		return decimal.NewFromInt(1)
	}

	factor := recentRevenue.Div(priorRevenue)
	if factor.LessThan(minTrendFactor) {
		return minTrendFactor
	}
	if factor.GreaterThan(maxTrendFactor) {
		return maxTrendFactor
	}
	return factor
}

// averages retorna a média de unidades (truncada) e de faturamento das linhas
func averages(rows []domain.DailySalesRow) (int, decimal.Decimal) {
	if len(rows) == 0 {
		return 0, decimal.Zero
	}

	totalUnits := 0
	totalRevenue := decimal.Zero
	for _, row := range rows {
		totalUnits += row.UnitsSold
		totalRevenue = totalRevenue.Add(row.Revenue)
	}

	return totalUnits / len(rows), totalRevenue.Div(decimal.NewFromInt(int64(len(rows))))
}

// percentChange retorna a variação percentual com uma casa decimal, ou 0 se a base for zero
func percentChange(value, base decimal.Decimal) float64 {
	if base.IsZero() {
		return 0
	}
	return value.Sub(base).Div(base).Mul(hundred).Round(1).InexactFloat64()
}

func lastN(rows []domain.DailySalesRow, n int) []domain.DailySalesRow {
	if len(rows) <= n {
		return rows
	}
	return rows[len(rows)-n:]
}
