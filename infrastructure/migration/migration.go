// Package migration cria as tabelas de campanhas, ad groups e termos de busca.
// As instruções são idempotentes e rodam em uma única transação.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-api/internal/config"
)

const surrogateKeyPlaceholder = "{{surrogate_key}}"

var statements = []string{
	`CREATE TABLE IF NOT EXISTS campaigns (
	id BIGINT PRIMARY KEY,
	structure_value TEXT,
	status TEXT
)`,
	`CREATE TABLE IF NOT EXISTS ad_groups (
	id BIGINT PRIMARY KEY,
	campaign_id BIGINT NOT NULL REFERENCES campaigns (id),
	alias TEXT,
	status TEXT
)`,
	`CREATE TABLE IF NOT EXISTS search_terms (
	id ` + surrogateKeyPlaceholder + `,
	date DATE NOT NULL,
	ad_group_id BIGINT NOT NULL REFERENCES ad_groups (id),
	clicks BIGINT NOT NULL CHECK (clicks >= 0),
	cost NUMERIC(10,2) NOT NULL,
	conversion_value NUMERIC(10,2) NOT NULL,
	conversions BIGINT NOT NULL CHECK (conversions >= 0),
	search_term TEXT NOT NULL,
	roas NUMERIC(12,4) NOT NULL,
	UNIQUE (date, ad_group_id, search_term)
)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_groups_alias ON ad_groups (alias)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_structure_value ON campaigns (structure_value)`,
	`CREATE INDEX IF NOT EXISTS idx_search_terms_ad_group_roas ON search_terms (ad_group_id, roas DESC)`,
}

// Statements devolve o DDL no dialeto do driver
func Statements(driver string) []string {
	surrogateKey := "BIGSERIAL PRIMARY KEY"
	if driver == config.DriverSQLite {
		surrogateKey = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	out := make([]string, len(statements))
	for i, stmt := range statements {
		out[i] = strings.ReplaceAll(stmt, surrogateKeyPlaceholder, surrogateKey)
	}
	return out
}

// Apply cria as tabelas que ainda não existem
func Apply(ctx context.Context, conn *postgres.Connection) error {
	stmts := Statements(conn.Driver())

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro na instrução %d da migração: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"driver":     conn.Driver(),
		"statements": len(stmts),
	}).Info("Migração aplicada com sucesso")
	return nil
}
