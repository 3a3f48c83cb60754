// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
)

// maxParams é o limite de parâmetros por comando do protocolo do postgres
const maxParams = 65535

// UpsertStatement descreve uma gravação em lote. Rows segue a ordem de Columns.
type UpsertStatement struct {
	Table           string
	Columns         []string
	ConflictColumns []string
	UpdateColumns   []string
	Rows            [][]any
}

type UpsertRepository interface {
	Upsert(ctx context.Context, stmt UpsertStatement) (int64, error)
}

type upsertRepository struct {
	conn *postgres.Connection
}

func NewUpsertRepository(conn *postgres.Connection) UpsertRepository {
	return &upsertRepository{
		conn: conn,
	}
}

// Upsert grava todas as linhas em uma única transação com
// INSERT ... ON CONFLICT DO UPDATE. Lotes maiores que o limite de parâmetros
// são divididos em vários comandos dentro da mesma transação.
func (r *upsertRepository) Upsert(ctx context.Context, stmt UpsertStatement) (int64, error) {
	if len(stmt.Rows) == 0 {
		return 0, nil
	}

	if err := stmt.validate(); err != nil {
		return 0, err
	}

	var written int64
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, chunk := range stmt.chunks() {
			query, args, err := r.buildInsert(stmt, chunk)
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			// o erro do driver sobe sem embrulho; a tabela vai no log abaixo
			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}

			affected, err := result.RowsAffected()
			if err != nil {
				affected = int64(len(chunk))
			}
			written += affected
		}
		return nil
	})
	if err != nil {
		logrus.WithFields(storageErrorFields(err)).
			WithField("table", stmt.Table).
			Error("Erro ao gravar lote, transação desfeita")
		return 0, err
	}

	return written, nil
}

func (r *upsertRepository) buildInsert(stmt UpsertStatement, rows [][]any) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert(stmt.Table).
		Columns(stmt.Columns...).
		PlaceholderFormat(r.conn.Placeholder())

	for _, row := range rows {
		query = query.Values(row...)
	}

	return query.Suffix(onConflict(stmt.ConflictColumns, stmt.UpdateColumns)).ToSql()
}

func onConflict(conflict, update []string) string {
	target := strings.Join(conflict, ", ")
	if len(update) == 0 {
		return fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", target)
	}

	set := make([]string, len(update))
	for i, c := range update {
		set[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", target, strings.Join(set, ", "))
}

func (s UpsertStatement) validate() error {
	if err := validIdentifier(s.Table); err != nil {
		return err
	}
	if len(s.Columns) == 0 || len(s.ConflictColumns) == 0 {
		return fmt.Errorf("upsert em %s sem colunas ou chave de conflito", s.Table)
	}
	for _, group := range [][]string{s.Columns, s.ConflictColumns, s.UpdateColumns} {
		for _, c := range group {
			if err := validIdentifier(c); err != nil {
				return err
			}
		}
	}
	for i, row := range s.Rows {
		if len(row) != len(s.Columns) {
			return fmt.Errorf("linha %d tem %d valores, esperado %d", i, len(row), len(s.Columns))
		}
	}
	return nil
}

func (s UpsertStatement) chunks() [][][]any {
	size := maxParams / len(s.Columns)
	if size >= len(s.Rows) {
		return [][][]any{s.Rows}
	}

	chunks := make([][][]any, 0, len(s.Rows)/size+1)
	for start := 0; start < len(s.Rows); start += size {
		end := min(start+size, len(s.Rows))
		chunks = append(chunks, s.Rows[start:end])
	}
	return chunks
}

// storageErrorFields extrai o código SQLSTATE dos erros do lib/pq e do pgx
func storageErrorFields(err error) logrus.Fields {
	fields := logrus.Fields{"error": err}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		fields["pg_code"] = string(pqErr.Code)
		fields["pg_constraint"] = pqErr.Constraint
		return fields
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["pg_code"] = pgErr.Code
		fields["pg_constraint"] = pgErr.ConstraintName
	}
	return fields
}
