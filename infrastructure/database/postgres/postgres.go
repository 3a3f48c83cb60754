package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/vfg2006/roas-api/internal/config"
	_ "modernc.org/sqlite"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Placeholder() squirrel.PlaceholderFormat
}

// Connection envolve o *sql.DB e guarda o formato de placeholder do driver
type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

// NewConnectionFromDB usa um *sql.DB já aberto (testes com sqlmock e sqlite)
func NewConnectionFromDB(db *sql.DB, driver string) *Connection {
	return &Connection{DB: db, driver: driver}
}

func (c *Connection) Driver() string { return c.driver }

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Placeholder retorna $n para postgres e pgx, ? para sqlite
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.DriverSQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

// Sqlx expõe a mesma conexão com o mapeamento de structs do sqlx
func (c *Connection) Sqlx() *sqlx.DB {
	return sqlx.NewDb(c.DB, c.driver)
}

// RunInTransaction executa fn dentro de uma transação. Qualquer erro (ou panic)
// desfaz a transação e o erro de fn é devolvido sem alteração.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}
