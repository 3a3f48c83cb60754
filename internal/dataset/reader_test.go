package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	in := "\uFEFFcampaign_id, structure_value,status\n50,a,ENABLED\n\n100, a ,DISABLED\n"

	ds, err := ReadCSV(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, []string{"campaign_id", "structure_value", "status"}, ds.Columns())
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"100", "a", "DISABLED"}, ds.Row(1))
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("campaign_id,structure_value,status\n"))

	require.NoError(t, err)
	assert.True(t, ds.IsEmpty())
	assert.Len(t, ds.Columns(), 3)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"ad_group_id", "campaign_id", "alias", "status"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"10", "1", "odd", "ENABLED"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"20", "1", "even"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	ds, err := ReadXLSX(buf, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"ad_group_id", "campaign_id", "alias", "status"}, ds.Columns())
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"20", "1", "even", ""}, ds.Row(1))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "campaigns.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("campaign_id,structure_value,status\n1,a,ENABLED\n"), 0o600))

	ds, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	_, err = ReadFile(filepath.Join(dir, "campaigns.json"))
	assert.Error(t, err)

	jsonPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{}"), 0o600))
	_, err = ReadFile(jsonPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
