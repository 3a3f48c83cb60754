package schema

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roas-api/internal/domain"
)

func TestFor(t *testing.T) {
	for _, entity := range domain.Entities() {
		s, err := For(entity)
		require.NoError(t, err)
		assert.Equal(t, entity, s.Entity)
		assert.NotEmpty(t, s.TargetTable)
		assert.NotEmpty(t, s.ConflictColumns)

		for _, c := range s.InsertColumns {
			_, typed := s.ColumnTypes[c]
			assert.True(t, typed || s.IsDerived(c), "coluna %s sem tipo", c)
		}
	}
}

func TestFor_Unsupported(t *testing.T) {
	_, err := For(domain.EntityType("keyword"))

	var unsupported *UnsupportedEntityError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, domain.EntityType("keyword"), unsupported.Entity)
}

func TestUpdateColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"clicks", "cost", "conversion_value", "conversions", "roas"},
		SearchTerm().UpdateColumns(),
	)
	assert.Equal(t, []string{"structure_value", "status"}, Campaign().UpdateColumns())
}

func TestSearchTermDedupCoversConflictKey(t *testing.T) {
	s := SearchTerm()
	for _, c := range s.ConflictColumns {
		assert.Contains(t, s.DedupKeys, c)
	}
}

func TestComputeRoAS(t *testing.T) {
	v, err := computeRoAS(map[string]any{
		"cost":             decimal.RequireFromString("0.5"),
		"conversion_value": decimal.RequireFromString("2.0"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4).Equal(v.(decimal.Decimal)))

	_, err = computeRoAS(map[string]any{"cost": decimal.Zero})
	assert.Error(t, err)
}
