package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesRow representa o total de vendas de um dia (apenas pedidos não cancelados)
type DailySalesRow struct {
	Date       time.Time       `json:"date"`
	Weekday    int             `json:"weekday"` // ISO: 1 = segunda-feira, 7 = domingo
	OrderCount int             `json:"order_count"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
}
