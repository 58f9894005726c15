package domain

// Métodos de estimativa usados na previsão de vendas
const (
	MethodWeekdayAverage  = "weekday_average"
	MethodSevenDayAverage = "seven_day_average"
)

// SalesForecast é a resposta da previsão de vendas do dia seguinte.
// Em caso de falha apenas Success, Code, Message/Error e as previsões zeradas são preenchidos.
type SalesForecast struct {
	Success          bool    `json:"success"`
	TargetDate       string  `json:"target_date,omitempty"`
	Weekday          int     `json:"weekday,omitempty"` // ISO: 1 = segunda-feira, 7 = domingo
	WeekdayName      string  `json:"weekday_name,omitempty"`
	Method           string  `json:"method,omitempty"`
	PredictedUnits   int     `json:"predicted_units"`
	PredictedRevenue float64 `json:"predicted_revenue"`
	AvgUnits7d       int     `json:"avg_units_7d"`
	AvgRevenue7d     float64 `json:"avg_revenue_7d"`
	PctChangeUnits   float64 `json:"pct_change_units"`
	PctChangeRevenue float64 `json:"pct_change_revenue"`
	TrendFactor      float64 `json:"trend_factor"`
	Code             string  `json:"code,omitempty"`
	Message          string  `json:"message,omitempty"`
	Error            string  `json:"error,omitempty"`
}
