package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast-api/internal/config"
)

// fakeQueryer registra se o contexto recebido tinha prazo
type fakeQueryer struct {
	queryErr error
	deadline bool
}

func (f *fakeQueryer) QueryContext(ctx context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	_, f.deadline = ctx.Deadline()
	return nil, f.queryErr
}

func (f *fakeQueryer) PingContext(ctx context.Context) error {
	_, f.deadline = ctx.Deadline()
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Database: config.Database{QueryTimeout: 2 * time.Second},
		Forecast: config.Forecast{CancelledStatusID: 4, StockWindowDays: 30},
	}
}

func TestBuildDailySalesQuery(t *testing.T) {
	query, args, err := buildDailySalesQuery(4)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM orders o JOIN order_items oi ON oi.order_id = o.order_id")
	assert.Contains(t, query, "WHERE o.status_id <> $1")
	assert.Contains(t, query, "EXTRACT(ISODOW FROM o.created_at)::int AS weekday")
	assert.Contains(t, query, "GROUP BY o.created_at::date")
	assert.Contains(t, query, "ORDER BY sale_date ASC")
	assert.Equal(t, []interface{}{4}, args)
}

func TestBuildProductSnapshotsQuery(t *testing.T) {
	query, args, err := buildProductSnapshotsQuery(4, 30)
	require.NoError(t, err)

	assert.Contains(t, query, "LEFT JOIN categories c ON c.category_id = p.category_id")
	assert.Contains(t, query, "o.status_id <> $1 AND o.created_at >= NOW() - make_interval(days => $2)")
	assert.Contains(t, query, "WHERE p.is_active = $3")
	assert.Contains(t, query, "ORDER BY p.stock ASC")
	assert.Equal(t, []interface{}{4, 30, true}, args)
}

func TestFetchDailySales_QueryError(t *testing.T) {
	conn := &fakeQueryer{queryErr: errors.New("connection refused")}
	repo := NewForecastDataRepository(conn, testConfig())

	rows, err := repo.FetchDailySales(context.Background())

	assert.Nil(t, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), dailySalesQuery)
	assert.True(t, conn.deadline, "a consulta deve ter timeout")
}

func newMockRepository(t *testing.T) (ForecastDataSource, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewForecastDataRepository(db, testConfig()), mock
}

func dailySalesSQL(t *testing.T) string {
	query, _, err := buildDailySalesQuery(4)
	require.NoError(t, err)
	return query
}

func productSnapshotsSQL(t *testing.T) string {
	query, _, err := buildProductSnapshotsQuery(4, 30)
	require.NoError(t, err)
	return query
}

var dailySalesColumns = []string{"sale_date", "weekday", "order_count", "units_sold", "revenue"}

var snapshotColumns = []string{"product_id", "name", "category", "stock", "units_sold_window"}

func TestFetchDailySales_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	friday := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	saturday := friday.AddDate(0, 0, 1)

	mock.ExpectQuery(dailySalesSQL(t)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(dailySalesColumns).
			AddRow(friday, 5, 12, 40, "812.50").
			AddRow(saturday, 6, 3, 9, "120")).
		RowsWillBeClosed()

	sales, err := repo.FetchDailySales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)

	assert.True(t, friday.Equal(sales[0].Date))
	assert.Equal(t, 5, sales[0].Weekday)
	assert.Equal(t, 12, sales[0].OrderCount)
	assert.Equal(t, 40, sales[0].UnitsSold)
	assert.True(t, decimal.RequireFromString("812.50").Equal(sales[0].Revenue), "receita: %s", sales[0].Revenue)
	assert.Equal(t, 6, sales[1].Weekday)
	assert.True(t, decimal.NewFromInt(120).Equal(sales[1].Revenue))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchDailySales_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(dailySalesSQL(t)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(dailySalesColumns)).
		RowsWillBeClosed()

	sales, err := repo.FetchDailySales(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchDailySales_ScanError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(dailySalesSQL(t)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(dailySalesColumns).
			AddRow(time.Now(), 5, 1, 2, "10.00").
			AddRow(time.Now(), 6, 1, 2, "abc")).
		RowsWillBeClosed()

	sales, err := repo.FetchDailySales(context.Background())

	assert.Nil(t, sales)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao escanear vendas diárias")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchDailySales_RowError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(dailySalesSQL(t)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(dailySalesColumns).
			AddRow(time.Now(), 5, 1, 2, "10.00").
			AddRow(time.Now(), 6, 1, 2, "11.00").
			RowError(1, errors.New("conexão encerrada"))).
		RowsWillBeClosed()

	sales, err := repo.FetchDailySales(context.Background())

	assert.Nil(t, sales)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro durante a iteração de linhas")
	assert.Contains(t, err.Error(), "conexão encerrada")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchProductSnapshots_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(productSnapshotsSQL(t)).
		WithArgs(4, 30, true).
		WillReturnRows(sqlmock.NewRows(snapshotColumns).
			AddRow(int64(7), "Café 500g", "Bebidas", 4, 60).
			AddRow(int64(9), "Filtro de papel", nil, 30, 0)).
		RowsWillBeClosed()

	products, err := repo.FetchProductSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, int64(7), products[0].ProductID)
	assert.Equal(t, "Café 500g", products[0].Name)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Bebidas", *products[0].Category)
	assert.Equal(t, 4, products[0].CurrentStock)
	assert.Equal(t, 60, products[0].UnitsSold30d)

	assert.Equal(t, int64(9), products[1].ProductID)
	assert.Nil(t, products[1].Category, "categoria NULL deve virar ponteiro nil")
	assert.Equal(t, 0, products[1].UnitsSold30d)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchProductSnapshots_ScanError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(productSnapshotsSQL(t)).
		WithArgs(4, 30, true).
		WillReturnRows(sqlmock.NewRows(snapshotColumns).
			AddRow(int64(7), "Café 500g", "Bebidas", "muitos", 60)).
		RowsWillBeClosed()

	products, err := repo.FetchProductSnapshots(context.Background())

	assert.Nil(t, products)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao escanear produto")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchProductSnapshots_PostgresError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(productSnapshotsSQL(t)).
		WithArgs(4, 30, true).
		WillReturnError(&pq.Error{Code: "42P01", Message: "relation \"products\" does not exist"})

	products, err := repo.FetchProductSnapshots(context.Background())

	assert.Nil(t, products)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42P01")
	assert.Contains(t, err.Error(), snapshotsQuery)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("dial tcp: timeout"))

	assert.NoError(t, repo.HealthCheck(context.Background()))
	assert.EqualError(t, repo.HealthCheck(context.Background()), "dial tcp: timeout")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck_UsesTimeout(t *testing.T) {
	conn := &fakeQueryer{}
	repo := NewForecastDataRepository(conn, testConfig())

	assert.NoError(t, repo.HealthCheck(context.Background()))
	assert.True(t, conn.deadline)
}
