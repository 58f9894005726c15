package domain

// Urgency classifica a prioridade de reposição de um produto
type Urgency string

const (
	UrgencyDepleted  Urgency = "Depleted"
	UrgencyCritical  Urgency = "Critical"
	UrgencyWarning   Urgency = "Warning"
	UrgencyAttention Urgency = "Attention"
	UrgencyNormal    Urgency = "Normal"
)

// Color retorna a cor exibida no painel para o nível de urgência
func (u Urgency) Color() string {
	switch u {
	case UrgencyDepleted, UrgencyCritical:
		return "red"
	case UrgencyWarning:
		return "orange"
	case UrgencyAttention:
		return "yellow"
	default:
		return "green"
	}
}

// Urgencies lista os níveis do mais para o menos urgente
func Urgencies() []Urgency {
	return []Urgency{UrgencyDepleted, UrgencyCritical, UrgencyWarning, UrgencyAttention, UrgencyNormal}
}

// IsValid informa se o valor corresponde a um dos cinco níveis conhecidos
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyDepleted, UrgencyCritical, UrgencyWarning, UrgencyAttention, UrgencyNormal:
		return true
	}
	return false
}

type StockForecastEntry struct {
	ProductID     int64   `json:"product_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CurrentStock  int     `json:"current_stock"`
	AvgDailySales float64 `json:"avg_daily_sales"`
	DaysRemaining *int    `json:"days_remaining"` // nil quando não há vendas no período
	DepletionDate string  `json:"depletion_date"`
	Urgency       Urgency `json:"urgency"`
	UrgencyColor  string  `json:"urgency_color"`
}

type StockForecastReport struct {
	Success       bool                 `json:"success"`
	AnalysisID    string               `json:"analysis_id,omitempty"`
	AnalyzedAt    string               `json:"analyzed_at,omitempty"`
	TotalProducts int                  `json:"total_products"`
	CriticalCount int                  `json:"critical_count"`
	DepletedCount int                  `json:"depleted_count"`
	TopCritical   []StockForecastEntry `json:"top_critical"`
	AllEntries    []StockForecastEntry `json:"all_entries"`
	Code          string               `json:"code,omitempty"`
	Message       string               `json:"message,omitempty"`
	Error         string               `json:"error,omitempty"`
}

// StockFilter restringe o relatório a uma categoria e/ou nível de urgência
type StockFilter struct {
	Category string
	Urgency  Urgency
}
