package importing

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-api/infrastructure/migration"
	"github.com/vfg2006/roas-api/infrastructure/repository"
	"github.com/vfg2006/roas-api/internal/config"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	_ "modernc.org/sqlite"
)

func newSQLiteService(t *testing.T) (ImportService, *postgres.Connection) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	conn := postgres.NewConnectionFromDB(db, config.DriverSQLite)
	require.NoError(t, migration.Apply(context.Background(), conn))

	return NewService(repository.NewUpsertRepository(conn), repository.NewKeyRepository(conn)), conn
}

func TestLoad_SQLite_LastOccurrenceOverwritesPersistedRow(t *testing.T) {
	service, conn := newSQLiteService(t)
	ctx := context.Background()

	_, err := conn.ExecContext(ctx, `INSERT INTO campaigns (id, structure_value, status) VALUES (50, 'old', 'c')`)
	require.NoError(t, err)

	campaigns := dataset.MustNew(
		[]string{"campaign_id", "structure_value", "status"},
		[][]string{
			{"50", "brand", "ENABLED"},
			{"50", "brand", "ENABLED"},
			{"50", "brand", "DISABLED"},
			{"60", "generic", "ENABLED"},
		},
	)

	result, err := service.Load(ctx, campaigns, domain.EntityCampaign)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Received)
	assert.Equal(t, 2, result.Duplicates)

	var count int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&count))
	assert.Equal(t, 2, count)

	var status, structureValue string
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT status, structure_value FROM campaigns WHERE id = 50`).Scan(&status, &structureValue))
	assert.Equal(t, "DISABLED", status)
	assert.Equal(t, "brand", structureValue)
}

func TestLoad_SQLite_Hierarchy(t *testing.T) {
	service, conn := newSQLiteService(t)
	ctx := context.Background()

	_, err := service.Load(ctx, dataset.MustNew(
		[]string{"campaign_id", "structure_value", "status"},
		[][]string{{"50", "brand", "ENABLED"}, {"100", "generic", "ENABLED"}},
	), domain.EntityCampaign)
	require.NoError(t, err)

	adGroups, err := service.Load(ctx, dataset.MustNew(
		[]string{"ad_group_id", "campaign_id", "alias", "status"},
		[][]string{
			{"1", "50", "odd", "ENABLED"},
			{"2", "100", "even", "ENABLED"},
			{"3", "200", "odd", "ENABLED"},
		},
	), domain.EntityAdGroup)
	require.NoError(t, err)
	assert.Equal(t, 1, adGroups.Dropped)

	terms := dataset.MustNew(
		[]string{"date", "ad_group_id", "campaign_id", "clicks", "cost", "conversion_value", "conversions", "search_term"},
		[][]string{
			{"2024-01-15", "1", "50", "10", "0.5", "2.0", "1", "tenis"},
			{"2024-01-15", "1", "50", "4", "0.0", "2.0", "1", "bota"},
			{"2024-01-15", "2", "100", "7", "1.0", "1.0", "1", "sandalia"},
			{"2024-01-15", "3", "200", "7", "1.0", "9.0", "1", "órfão"},
		},
	)

	first, err := service.Load(ctx, terms, domain.EntitySearchTerm)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Dropped)

	// segunda carga do mesmo arquivo converge para o mesmo estado
	_, err = service.Load(ctx, terms, domain.EntitySearchTerm)
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM search_terms`).Scan(&count))
	assert.Equal(t, 3, count)

	ranked, err := repository.NewSearchTermRepository(conn).RankByAlias(ctx, "odd", nil)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "tenis", ranked[0].SearchTerm)
	assert.Equal(t, "4", ranked[0].RoAS.String())
	assert.Equal(t, "bota", ranked[1].SearchTerm)
	assert.Equal(t, "2", ranked[1].RoAS.String())
}
