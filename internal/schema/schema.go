// Package schema descreve, para cada tipo de entidade, como uma exportação
// tabular é limpa e gravada: chaves de deduplicação, renomeação de colunas,
// chaves estrangeiras, colunas descartadas e a tabela de destino.
package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/roas-api/internal/domain"
)

type ColumnType int

const (
	Text ColumnType = iota
	Int
	// Count é um inteiro não negativo (cliques, conversões)
	Count
	Decimal
	Date
)

func (t ColumnType) String() string {
	switch t {
	case Int:
		return "int"
	case Count:
		return "count"
	case Decimal:
		return "decimal"
	case Date:
		return "date"
	default:
		return "text"
	}
}

type ForeignKey struct {
	Column           string
	ReferencedTable  string
	ReferencedColumn string
}

// DerivedColumn é calculada por linha a partir dos valores já tipados
type DerivedColumn struct {
	Name    string
	Compute func(values map[string]any) (any, error)
}

type Schema struct {
	Entity          domain.EntityType
	DedupKeys       []string
	RenameMap       map[string]string
	ForeignKeys     []ForeignKey
	DropColumns     []string
	TargetTable     string
	InsertColumns   []string
	ConflictColumns []string
	ColumnTypes     map[string]ColumnType
	Derived         []DerivedColumn
}

// UnsupportedEntityError indica um tipo de entidade sem configuração registrada
type UnsupportedEntityError struct {
	Entity domain.EntityType
}

func (e *UnsupportedEntityError) Error() string {
	return fmt.Sprintf("entidade %q não possui configuração de limpeza", e.Entity)
}

// For retorna o descritor do tipo de entidade
func For(entity domain.EntityType) (Schema, error) {
	switch entity {
	case domain.EntityCampaign:
		return Campaign(), nil
	case domain.EntityAdGroup:
		return AdGroup(), nil
	case domain.EntitySearchTerm:
		return SearchTerm(), nil
	}
	return Schema{}, &UnsupportedEntityError{Entity: entity}
}

func Campaign() Schema {
	return Schema{
		Entity:          domain.EntityCampaign,
		DedupKeys:       []string{"campaign_id"},
		RenameMap:       map[string]string{"campaign_id": "id"},
		TargetTable:     "campaigns",
		InsertColumns:   []string{"id", "structure_value", "status"},
		ConflictColumns: []string{"id"},
		ColumnTypes: map[string]ColumnType{
			"id":              Int,
			"structure_value": Text,
			"status":          Text,
		},
	}
}

func AdGroup() Schema {
	return Schema{
		Entity:      domain.EntityAdGroup,
		DedupKeys:   []string{"ad_group_id"},
		RenameMap:   map[string]string{"ad_group_id": "id"},
		ForeignKeys: []ForeignKey{{Column: "campaign_id", ReferencedTable: "campaigns", ReferencedColumn: "id"}},
		TargetTable: "ad_groups",
		InsertColumns: []string{
			"id", "campaign_id", "alias", "status",
		},
		ConflictColumns: []string{"id"},
		ColumnTypes: map[string]ColumnType{
			"id":          Int,
			"campaign_id": Int,
			"alias":       Text,
			"status":      Text,
		},
	}
}

// SearchTerm deduplica pela mesma chave única da tabela, de modo que o
// upsert nunca receba duas linhas para a mesma chave no mesmo comando.
// campaign_id só existe no arquivo para validar a hierarquia e é descartada.
func SearchTerm() Schema {
	return Schema{
		Entity:    domain.EntitySearchTerm,
		DedupKeys: []string{"date", "ad_group_id", "search_term"},
		ForeignKeys: []ForeignKey{
			{Column: "ad_group_id", ReferencedTable: "ad_groups", ReferencedColumn: "id"},
			{Column: "campaign_id", ReferencedTable: "campaigns", ReferencedColumn: "id"},
		},
		DropColumns: []string{"campaign_id"},
		TargetTable: "search_terms",
		InsertColumns: []string{
			"date", "ad_group_id", "clicks", "cost", "conversion_value", "conversions", "search_term", "roas",
		},
		ConflictColumns: []string{"date", "ad_group_id", "search_term"},
		ColumnTypes: map[string]ColumnType{
			"date":             Date,
			"ad_group_id":      Int,
			"clicks":           Count,
			"cost":             Decimal,
			"conversion_value": Decimal,
			"conversions":      Count,
			"search_term":      Text,
		},
		Derived: []DerivedColumn{{Name: "roas", Compute: computeRoAS}},
	}
}

func computeRoAS(values map[string]any) (any, error) {
	cost, ok := values["cost"].(decimal.Decimal)
	if !ok {
		return nil, fmt.Errorf("coluna cost ausente para calcular roas")
	}
	conversionValue, ok := values["conversion_value"].(decimal.Decimal)
	if !ok {
		return nil, fmt.Errorf("coluna conversion_value ausente para calcular roas")
	}
	return domain.CalcRoAS(cost, conversionValue), nil
}

// IsDerived indica se a coluna de inserção é calculada
func (s Schema) IsDerived(column string) bool {
	for _, d := range s.Derived {
		if d.Name == column {
			return true
		}
	}
	return false
}

// UpdateColumns são as colunas atualizadas em caso de conflito: todas as
// colunas de inserção exceto a chave de conflito.
func (s Schema) UpdateColumns() []string {
	conflict := make(map[string]struct{}, len(s.ConflictColumns))
	for _, c := range s.ConflictColumns {
		conflict[c] = struct{}{}
	}

	cols := make([]string, 0, len(s.InsertColumns))
	for _, c := range s.InsertColumns {
		if _, ok := conflict[c]; ok {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}
