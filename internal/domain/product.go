package domain

// ProductSnapshot é a posição atual de estoque de um produto ativo junto com as
// unidades vendidas na janela recente (30 dias por padrão)
type ProductSnapshot struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	Category     *string `json:"category"`
	CurrentStock int     `json:"current_stock"`
	UnitsSold30d int     `json:"units_sold_30d"`
}
