package schema

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		typ      ColumnType
		raw      string
		expected any
		wantErr  bool
	}{
		{name: "inteiro", typ: Int, raw: "50", expected: int64(50)},
		{name: "inteiro exportado como float", typ: Int, raw: "50.0", expected: int64(50)},
		{name: "inteiro com fração", typ: Int, raw: "50.5", wantErr: true},
		{name: "contagem negativa", typ: Count, raw: "-1", wantErr: true},
		{name: "contagem", typ: Count, raw: "3", expected: int64(3)},
		{name: "texto em coluna numérica", typ: Count, raw: "abc", wantErr: true},
		{name: "célula vazia em coluna numérica", typ: Decimal, raw: "", wantErr: true},
		{name: "texto vazio é aceito", typ: Text, raw: "", expected: ""},
		{name: "data inválida", typ: Date, raw: "2024-13-45", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.typ, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	v, err := ParseValue(Decimal, "10.25")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.25").Equal(v.(decimal.Decimal)))
}

func TestCanonicalValue(t *testing.T) {
	tests := []struct {
		typ  ColumnType
		a, b string
	}{
		{typ: Int, a: "50", b: "50.0"},
		{typ: Int, a: "50", b: " 50 "},
		{typ: Date, a: "2024-01-05", b: "05/01/2024"},
		{typ: Date, a: "2024-01-05", b: "2024-01-05 13:45:00"},
		{typ: Decimal, a: "1.5", b: "1.50"},
		{typ: Text, a: "shoes", b: "shoes "},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, CanonicalValue(tt.typ, tt.a), CanonicalValue(tt.typ, tt.b))
		})
	}

	assert.NotEqual(t, CanonicalValue(Int, "50"), CanonicalValue(Int, "500"))
	assert.Equal(t, "abc", CanonicalValue(Int, " abc "), "célula inválida mantém o texto")
}

func TestTypeOf(t *testing.T) {
	s := Campaign()

	assert.Equal(t, Int, s.TypeOf("campaign_id"), "coluna antes da renomeação")
	assert.Equal(t, Int, s.TypeOf("id"))
	assert.Equal(t, Text, s.TypeOf("desconhecida"))
	assert.Equal(t, Date, SearchTerm().TypeOf("date"))
}
