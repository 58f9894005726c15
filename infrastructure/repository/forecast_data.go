package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

const (
	ordersTable     = "orders o"
	productsTable   = "products p"
	defaultTimeout  = 10 * time.Second
	dailySalesQuery = "daily_sales"
	snapshotsQuery  = "product_snapshots"
)

// ForecastDataSource fornece os dados já agregados usados pelas previsões
type ForecastDataSource interface {
	FetchDailySales(ctx context.Context) ([]domain.DailySalesRow, error)
	FetchProductSnapshots(ctx context.Context) ([]domain.ProductSnapshot, error)
	HealthCheck(ctx context.Context) error
}

type forecastDataRepository struct {
	conn              postgres.Queryer
	cancelledStatusID int
	windowDays        int
	timeout           time.Duration
}

func NewForecastDataRepository(conn postgres.Queryer, cfg *config.Config) ForecastDataSource {
	timeout := cfg.Database.QueryTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &forecastDataRepository{
		conn:              conn,
		cancelledStatusID: cfg.Forecast.CancelledStatusID,
		windowDays:        cfg.Forecast.StockWindowDays,
		timeout:           timeout,
	}
}

// buildDailySalesQuery agrega os pedidos não cancelados por dia, em ordem cronológica
func buildDailySalesQuery(cancelledStatusID int) (string, []interface{}, error) {
	return squirrel.
		Select(
			"o.created_at::date AS sale_date",
			"EXTRACT(ISODOW FROM o.created_at)::int AS weekday",
			"COUNT(DISTINCT o.order_id) AS order_count",
			"COALESCE(SUM(oi.quantity), 0) AS units_sold",
			"COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue",
		).
		From(ordersTable).
		Join("order_items oi ON oi.order_id = o.order_id").
		Where(squirrel.NotEq{"o.status_id": cancelledStatusID}).
		GroupBy("o.created_at::date", "EXTRACT(ISODOW FROM o.created_at)").
		OrderBy("sale_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildProductSnapshotsQuery lista os produtos ativos com as unidades vendidas na janela.
// Produtos sem venda no período aparecem com zero.
func buildProductSnapshotsQuery(cancelledStatusID, windowDays int) (string, []interface{}, error) {
	return squirrel.
		Select(
			"p.product_id",
			"p.name",
			"c.name AS category",
			"p.stock",
			"COALESCE(SUM(oi.quantity) FILTER (WHERE o.order_id IS NOT NULL), 0) AS units_sold_window",
		).
		From(productsTable).
		LeftJoin("categories c ON c.category_id = p.category_id").
		LeftJoin("order_items oi ON oi.product_id = p.product_id").
		LeftJoin(
			"orders o ON o.order_id = oi.order_id AND o.status_id <> ? AND o.created_at >= NOW() - make_interval(days => ?)",
			cancelledStatusID, windowDays,
		).
		Where(squirrel.Eq{"p.is_active": true}).
		GroupBy("p.product_id", "p.name", "c.name", "p.stock").
		OrderBy("p.stock ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *forecastDataRepository) FetchDailySales(ctx context.Context) ([]domain.DailySalesRow, error) {
	query, args, err := buildDailySalesQuery(r.cancelledStatusID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas diárias")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, dailySalesQuery)
	}
	defer rows.Close()

	sales := make([]domain.DailySalesRow, 0)
	for rows.Next() {
		var row domain.DailySalesRow
		if err := rows.Scan(&row.Date, &row.Weekday, &row.OrderCount, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear vendas diárias")
		}
		sales = append(sales, row)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func (r *forecastDataRepository) FetchProductSnapshots(ctx context.Context) ([]domain.ProductSnapshot, error) {
	query, args, err := buildProductSnapshotsQuery(r.cancelledStatusID, r.windowDays)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de estoque")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, snapshotsQuery)
	}
	defer rows.Close()

	products := make([]domain.ProductSnapshot, 0)
	for rows.Next() {
		product, err := scanProductSnapshot(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return products, nil
}

func (r *forecastDataRepository) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.conn.PingContext(ctx)
}

func scanProductSnapshot(rows *sql.Rows) (*domain.ProductSnapshot, error) {
	product := &domain.ProductSnapshot{}
	var category sql.NullString

	err := rows.Scan(
		&product.ProductID,
		&product.Name,
		&category,
		&product.CurrentStock,
		&product.UnitsSold30d,
	)
	if err != nil {
		return nil, err
	}

	if category.Valid {
		product.Category = &category.String
	}

	return product, nil
}

func wrapQueryError(err error, queryName string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(err, "erro no banco de dados em %s (código: %s)", queryName, pqErr.Code)
	}
	return errors.Wrapf(err, "erro ao executar a query %s", queryName)
}
