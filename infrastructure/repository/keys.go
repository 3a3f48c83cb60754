package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func validIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("identificador SQL inválido: %q", name)
	}
	return nil
}

// KeyRepository carrega as chaves existentes de uma tabela referenciada
type KeyRepository interface {
	ValidKeys(ctx context.Context, table, column string) (map[string]struct{}, error)
}

type keyRepository struct {
	conn *postgres.Connection
}

func NewKeyRepository(conn *postgres.Connection) KeyRepository {
	return &keyRepository{
		conn: conn,
	}
}

func (r *keyRepository) ValidKeys(ctx context.Context, table, column string) (map[string]struct{}, error) {
	if err := validIdentifier(table); err != nil {
		return nil, err
	}
	if err := validIdentifier(column); err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(column).
		Distinct().
		From(table).
		Where(squirrel.NotEq{column: nil}).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar chaves de %s: %w", table, err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key sql.NullString
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave: %w", err)
		}
		if key.Valid {
			keys[key.String] = struct{}{}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}
