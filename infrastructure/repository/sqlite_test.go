package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-api/infrastructure/migration"
	"github.com/vfg2006/roas-api/internal/config"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/schema"
	_ "modernc.org/sqlite"
)

func newSQLiteConn(t *testing.T) *postgres.Connection {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	conn := postgres.NewConnectionFromDB(db, config.DriverSQLite)
	require.NoError(t, migration.Apply(context.Background(), conn))

	return conn
}

func statementFor(s schema.Schema, rows ...[]any) UpsertStatement {
	return UpsertStatement{
		Table:           s.TargetTable,
		Columns:         s.InsertColumns,
		ConflictColumns: s.ConflictColumns,
		UpdateColumns:   s.UpdateColumns(),
		Rows:            rows,
	}
}

func seedHierarchy(t *testing.T, repo UpsertRepository) {
	ctx := context.Background()

	_, err := repo.Upsert(ctx, statementFor(schema.Campaign(),
		[]any{int64(1), "brand", "ENABLED"},
		[]any{int64(2), "generic", "ENABLED"},
	))
	require.NoError(t, err)

	_, err = repo.Upsert(ctx, statementFor(schema.AdGroup(),
		[]any{int64(50), int64(1), "shoes", "ENABLED"},
		[]any{int64(100), int64(2), "boots", "ENABLED"},
	))
	require.NoError(t, err)
}

func searchTermFixtureRow(date time.Time, adGroup int64, term string, cost, value string) []any {
	c := decimal.RequireFromString(cost)
	v := decimal.RequireFromString(value)
	return []any{date, adGroup, int64(1), c, v, int64(1), term, domain.CalcRoAS(c, v)}
}

func TestSQLite_UpsertIsIdempotentAndLaterRowWins(t *testing.T) {
	conn := newSQLiteConn(t)
	repo := NewUpsertRepository(conn)
	seedHierarchy(t, repo)
	ctx := context.Background()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := repo.Upsert(ctx, statementFor(schema.SearchTerm(),
		searchTermFixtureRow(day, 50, "tenis", "1.00", "2.00"),
	))
	require.NoError(t, err)

	// mesma chave com novos valores substitui a linha existente
	_, err = repo.Upsert(ctx, statementFor(schema.SearchTerm(),
		searchTermFixtureRow(day, 50, "tenis", "0.50", "2.00"),
	))
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM search_terms").Scan(&count))
	assert.Equal(t, 1, count)

	terms, err := NewSearchTermRepository(conn).RankByAlias(ctx, "shoes", nil)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.True(t, decimal.NewFromInt(4).Equal(terms[0].RoAS))
	assert.True(t, decimal.RequireFromString("0.5").Equal(terms[0].Cost))
	assert.True(t, day.Equal(terms[0].Date.UTC()))
}

func TestSQLite_RankingOrderAndLimit(t *testing.T) {
	conn := newSQLiteConn(t)
	repo := NewUpsertRepository(conn)
	seedHierarchy(t, repo)
	ctx := context.Background()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := repo.Upsert(ctx, statementFor(schema.SearchTerm(),
		searchTermFixtureRow(day, 50, "a", "1.00", "1.00"),
		searchTermFixtureRow(day, 50, "b", "1.00", "3.00"),
		searchTermFixtureRow(day, 50, "c", "1.00", "2.00"),
		searchTermFixtureRow(day, 50, "d", "1.00", "3.00"),
		searchTermFixtureRow(day, 100, "e", "1.00", "9.00"),
	))
	require.NoError(t, err)

	ranking := NewSearchTermRepository(conn)
	two := uint64(2)

	terms, err := ranking.RankByAlias(ctx, "shoes", nil)
	require.NoError(t, err)
	require.Len(t, terms, 4)

	names := make([]string, len(terms))
	for i, term := range terms {
		names[i] = term.SearchTerm
	}
	// empate em roas 3 resolvido pelo id: b foi inserido antes de d
	assert.Equal(t, []string{"b", "d", "c", "a"}, names)
	assert.Equal(t, "shoes", terms[0].AdGroup.Alias)
	assert.Equal(t, "brand", terms[0].AdGroup.Campaign.StructureValue)

	terms, err = ranking.RankByAlias(ctx, "shoes", &two)
	require.NoError(t, err)
	assert.Len(t, terms, 2)

	terms, err = ranking.RankByStructuredValue(ctx, "generic", nil)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "e", terms[0].SearchTerm)

	terms, err = ranking.RankByAlias(ctx, "inexistente", nil)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestSQLite_ValidKeys(t *testing.T) {
	conn := newSQLiteConn(t)
	seedHierarchy(t, NewUpsertRepository(conn))

	keys, err := NewKeyRepository(conn).ValidKeys(context.Background(), "ad_groups", "id")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"50": {}, "100": {}}, keys)
}
