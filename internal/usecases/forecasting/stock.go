package forecasting

import (
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

const (
	DefaultStockWindowDays = 30

	criticalDaysThreshold = 7
	topCriticalLimit      = 10

	analyzedAtLayout = "2006-01-02 15:04"

	// Uncategorized é a categoria de produtos sem categoria cadastrada
	Uncategorized = "Uncategorized"
	// UndeterminedDepletion é a data de esgotamento de produtos sem vendas na janela
	UndeterminedDepletion = "Undetermined (no sales)"
)

// AnalyzeStock projeta quando cada produto vai esgotar com base na venda média diária
// dos últimos windowDays dias e monta o relatório ordenado pelos dias restantes.
func AnalyzeStock(products []domain.ProductSnapshot, now time.Time, windowDays int, filter domain.StockFilter) (*domain.StockForecastReport, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	if windowDays <= 0 {
		windowDays = DefaultStockWindowDays
	}

	entries := make([]domain.StockForecastEntry, 0, len(products))
	for _, product := range products {
		entry := forecastProduct(product, now, windowDays)
		if !matchesFilter(filter, entry) {
			continue
		}
		entries = append(entries, entry)
	}

	sortByDaysRemaining(entries)

	critical := make([]domain.StockForecastEntry, 0)
	depleted := 0
	for _, entry := range entries {
		if IsCritical(entry) {
			critical = append(critical, entry)
		}
		if entry.CurrentStock == 0 {
			depleted++
		}
	}

	top := critical
	if len(top) > topCriticalLimit {
		top = top[:topCriticalLimit]
	}

	return &domain.StockForecastReport{
		Success:       true,
		AnalyzedAt:    now.Format(analyzedAtLayout),
		TotalProducts: len(entries),
		CriticalCount: len(critical),
		DepletedCount: depleted,
		TopCritical:   top,
		AllEntries:    entries,
	}, nil
}

// forecastProduct calcula dias restantes, data de esgotamento e urgência de um produto
func forecastProduct(product domain.ProductSnapshot, now time.Time, windowDays int) domain.StockForecastEntry {
	category := Uncategorized
	if product.Category != nil && *product.Category != "" {
		category = *product.Category
	}

	dailyRate := float64(product.UnitsSold30d) / float64(windowDays)

	var daysRemaining *int
	depletionDate := UndeterminedDepletion
	if product.UnitsSold30d > 0 {
		// floor(estoque / (vendas / janela)) em aritmética inteira
		days := product.CurrentStock * windowDays / product.UnitsSold30d
		daysRemaining = &days
		depletionDate = now.AddDate(0, 0, days).Format(time.DateOnly)
	}

	urgency := classifyUrgency(product.CurrentStock, daysRemaining)

	return domain.StockForecastEntry{
		ProductID:     product.ProductID,
		Name:          product.Name,
		Category:      category,
		CurrentStock:  product.CurrentStock,
		AvgDailySales: utils.RoundWithTwoDecimalPlace(dailyRate),
		DaysRemaining: daysRemaining,
		DepletionDate: depletionDate,
		Urgency:       urgency,
		UrgencyColor:  urgency.Color(),
	}
}

// classifyUrgency aplica as faixas na ordem: estoque zerado tem prioridade sobre a projeção
func classifyUrgency(currentStock int, daysRemaining *int) domain.Urgency {
	switch {
	case currentStock == 0:
		return domain.UrgencyDepleted
	case daysRemaining == nil:
		return domain.UrgencyNormal
	case *daysRemaining <= 3:
		return domain.UrgencyCritical
	case *daysRemaining <= 7:
		return domain.UrgencyWarning
	case *daysRemaining <= 14:
		return domain.UrgencyAttention
	default:
		return domain.UrgencyNormal
	}
}

// IsCritical usa apenas o limite de dias restantes, independente do rótulo de urgência.
// Produto sem vendas (dias indeterminados) nunca entra, mesmo com estoque zerado.
func IsCritical(entry domain.StockForecastEntry) bool {
	return entry.DaysRemaining != nil && *entry.DaysRemaining <= criticalDaysThreshold
}

// sortByDaysRemaining ordena de forma estável por dias restantes, indeterminados por último
func sortByDaysRemaining(entries []domain.StockForecastEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].DaysRemaining, entries[j].DaysRemaining
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}

// matchesFilter informa se a entrada passa pelo filtro; campos vazios não filtram
func matchesFilter(filter domain.StockFilter, entry domain.StockForecastEntry) bool {
	if filter.Category != "" && !strings.EqualFold(filter.Category, entry.Category) {
		return false
	}
	if filter.Urgency != "" && filter.Urgency != entry.Urgency {
		return false
	}
	return true
}
