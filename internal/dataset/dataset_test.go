package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Dataset {
	return MustNew(
		[]string{"campaign_id", "structure_value", "status"},
		[][]string{
			{"1", "a", "ENABLED"},
			{"2", "a", "ENABLED"},
			{"1", "a", "DISABLED"},
		},
	)
}

func TestNew_RejectsRaggedRows(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1"}})
	assert.Error(t, err)
}

func TestNew_RejectsDuplicateColumns(t *testing.T) {
	_, err := New([]string{"a", "a"}, nil)
	assert.Error(t, err)
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]string{{"1", "a", "ENABLED"}}
	ds := MustNew([]string{"campaign_id", "structure_value", "status"}, rows)

	rows[0][2] = "CHANGED"

	v, _ := ds.Value(0, "status")
	assert.Equal(t, "ENABLED", v)
}

func TestSelectRows(t *testing.T) {
	ds := sample()

	got := ds.SelectRows([]int{2, 0})

	require.Equal(t, 2, got.Len())
	assert.Equal(t, []string{"1", "a", "DISABLED"}, got.Row(0))
	assert.Equal(t, []string{"1", "a", "ENABLED"}, got.Row(1))
	assert.Equal(t, 3, ds.Len())
}

func TestRenameColumns(t *testing.T) {
	ds := sample()

	got, err := ds.RenameColumns(map[string]string{"campaign_id": "id", "missing": "x"})

	require.NoError(t, err)
	assert.Equal(t, []string{"id", "structure_value", "status"}, got.Columns())
	assert.Equal(t, ds.Row(2), got.Row(2))
	assert.True(t, ds.HasColumn("campaign_id"))
}

func TestRenameColumns_Collision(t *testing.T) {
	_, err := sample().RenameColumns(map[string]string{"campaign_id": "status"})
	assert.Error(t, err)
}

func TestDropColumns(t *testing.T) {
	ds := sample()

	got := ds.DropColumns("structure_value", "unknown")

	assert.Equal(t, []string{"campaign_id", "status"}, got.Columns())
	assert.Equal(t, []string{"1", "DISABLED"}, got.Row(2))
	assert.Len(t, ds.Columns(), 3)
}

func TestColumnAndValue(t *testing.T) {
	ds := sample()

	values, ok := ds.Column("status")
	require.True(t, ok)
	assert.Equal(t, []string{"ENABLED", "ENABLED", "DISABLED"}, values)

	_, ok = ds.Column("nope")
	assert.False(t, ok)

	_, ok = ds.Value(0, "nope")
	assert.False(t, ok)
}

func TestEqualAndClone(t *testing.T) {
	ds := sample()
	clone := ds.Clone()

	assert.True(t, ds.Equal(clone))
	assert.False(t, ds.Equal(ds.SelectRows([]int{0})))
}
