package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-forecast-api/internal/config"
)

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool sem exigir que o banco esteja no ar.
// Cada consulta pega uma conexão do pool e a devolve ao terminar, e /health reporta a indisponibilidade.
func NewConnection(cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	// O serviço só faz leituras curtas, um pool pequeno é suficiente
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
