package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast-api/infrastructure/repository"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	keyPrefix       = "sales-forecast:"
	dailySalesKey   = keyPrefix + "daily_sales"
	productsKey     = keyPrefix + "product_snapshots"
	defaultCacheTTL = time.Minute
)

// forecastDataCache guarda por pouco tempo os dados brutos lidos do banco.
// As previsões são sempre recalculadas, só a leitura do banco é poupada.
type forecastDataCache struct {
	next   repository.ForecastDataSource
	client Client
	ttl    time.Duration
}

// NewForecastDataCache envolve a fonte de dados com um cache de leitura.
// Falhas do cache nunca interrompem a consulta, apenas geram aviso.
func NewForecastDataCache(next repository.ForecastDataSource, client Client, ttl time.Duration) repository.ForecastDataSource {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &forecastDataCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func (c *forecastDataCache) FetchDailySales(ctx context.Context) ([]domain.DailySalesRow, error) {
	var rows []domain.DailySalesRow
	if c.load(ctx, dailySalesKey, &rows) {
		return rows, nil
	}

	rows, err := c.next.FetchDailySales(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, dailySalesKey, rows)
	return rows, nil
}

func (c *forecastDataCache) FetchProductSnapshots(ctx context.Context) ([]domain.ProductSnapshot, error) {
	var products []domain.ProductSnapshot
	if c.load(ctx, productsKey, &products) {
		return products, nil
	}

	products, err := c.next.FetchProductSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, productsKey, products)
	return products, nil
}

// HealthCheck sempre consulta o banco, o cache não responde pela saúde do serviço
func (c *forecastDataCache) HealthCheck(ctx context.Context) error {
	return c.next.HealthCheck(ctx)
}

func (c *forecastDataCache) load(ctx context.Context, key string, target interface{}) bool {
	cached, err := c.client.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			log.ForContext(ctx).WithError(err).Warnf("cache: erro ao ler %s", key)
		}
		return false
	}

	if err := json.Unmarshal([]byte(cached), target); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: conteúdo inválido em %s", key)
		return false
	}

	return true
}

func (c *forecastDataCache) store(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: erro ao serializar %s", key)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("cache: erro ao gravar %s", key)
	}
}
