package cleaning

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/schema"
)

// RemoveDuplicates mantém uma linha por combinação de DedupKeys: a última
// ocorrência, que é o dado mais recente. A ordem relativa das linhas
// remanescentes é preservada. As chaves são comparadas pelo valor que será
// gravado, então "50" e "50.0" são a mesma chave.
type RemoveDuplicates struct{}

func (RemoveDuplicates) Name() string { return RemoveDuplicatesName }

func (RemoveDuplicates) CanApply(s schema.Schema) (bool, string) {
	if len(s.DedupKeys) == 0 {
		return false, "DedupKeys não configurado"
	}
	return true, ""
}

func (r RemoveDuplicates) Clean(_ context.Context, ds dataset.Dataset, s schema.Schema) (dataset.Dataset, error) {
	if err := requireColumns(r.Name(), ds, s.DedupKeys...); err != nil {
		return dataset.Dataset{}, err
	}

	seen := make(map[string]struct{}, ds.Len())
	keep := make([]int, 0, ds.Len())
	for i := ds.Len() - 1; i >= 0; i-- {
		key := tupleKey(ds, i, s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	slices.Reverse(keep)

	return ds.SelectRows(keep), nil
}

// tupleKey serializa os valores com prefixo de tamanho para evitar colisões
// entre tuplas como ("a,b", "c") e ("a", "b,c").
func tupleKey(ds dataset.Dataset, row int, s schema.Schema) string {
	var b strings.Builder
	for _, c := range s.DedupKeys {
		raw, _ := ds.Value(row, c)
		v := schema.CanonicalValue(s.TypeOf(c), raw)
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}

// RenameHeaders aplica RenameMap aos nomes das colunas
type RenameHeaders struct{}

func (RenameHeaders) Name() string { return RenameHeadersName }

func (RenameHeaders) CanApply(s schema.Schema) (bool, string) {
	if len(s.RenameMap) == 0 {
		return false, "RenameMap não configurado"
	}
	return true, ""
}

func (r RenameHeaders) Clean(_ context.Context, ds dataset.Dataset, s schema.Schema) (dataset.Dataset, error) {
	renamed, err := ds.RenameColumns(s.RenameMap)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("%s: %w", r.Name(), err)
	}
	return renamed, nil
}

// FilterValidForeignKeys remove, sem erro, as linhas cujas chaves estrangeiras
// não existem na tabela referenciada. Cada tabela é consultada uma única vez.
type FilterValidForeignKeys struct {
	Lookup KeyLookup
}

func NewFilterValidForeignKeys(lookup KeyLookup) FilterValidForeignKeys {
	return FilterValidForeignKeys{Lookup: lookup}
}

func (FilterValidForeignKeys) Name() string { return FilterValidForeignKeyName }

func (FilterValidForeignKeys) CanApply(s schema.Schema) (bool, string) {
	if len(s.ForeignKeys) == 0 {
		return false, "ForeignKeys não configurado"
	}
	for _, fk := range s.ForeignKeys {
		if fk.Column == "" || fk.ReferencedTable == "" || fk.ReferencedColumn == "" {
			return false, fmt.Sprintf("chave estrangeira incompleta: %+v", fk)
		}
	}
	return true, ""
}

func (f FilterValidForeignKeys) Clean(ctx context.Context, ds dataset.Dataset, s schema.Schema) (dataset.Dataset, error) {
	if f.Lookup == nil {
		return dataset.Dataset{}, errors.New("filter_valid_foreign_keys: KeyLookup não informado")
	}

	for _, fk := range s.ForeignKeys {
		if err := requireColumns(f.Name(), ds, fk.Column); err != nil {
			return dataset.Dataset{}, err
		}
	}

	if ds.IsEmpty() {
		return ds.Clone(), nil
	}

	valid := make([]map[string]struct{}, len(s.ForeignKeys))
	for i, fk := range s.ForeignKeys {
		keys, err := f.Lookup.ValidKeys(ctx, fk.ReferencedTable, fk.ReferencedColumn)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("erro ao carregar chaves de %s.%s: %w", fk.ReferencedTable, fk.ReferencedColumn, err)
		}
		valid[i] = keys
	}

	keep := make([]int, 0, ds.Len())
	for row := 0; row < ds.Len(); row++ {
		if f.rowIsValid(ds, row, s.ForeignKeys, valid) {
			keep = append(keep, row)
		}
	}

	if dropped := ds.Len() - len(keep); dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"entity":  s.Entity,
			"dropped": dropped,
		}).Info("Linhas com chave estrangeira inexistente descartadas")
	}

	return ds.SelectRows(keep), nil
}

func (FilterValidForeignKeys) rowIsValid(ds dataset.Dataset, row int, fks []schema.ForeignKey, valid []map[string]struct{}) bool {
	for i, fk := range fks {
		v, _ := ds.Value(row, fk.Column)
		if _, ok := valid[i][normalizeKey(v)]; !ok {
			return false
		}
	}
	return true
}

// normalizeKey trata ids exportados como float ("50.0") iguais a "50"
func normalizeKey(v string) string {
	v = strings.TrimSpace(v)
	if whole, found := strings.CutSuffix(v, ".0"); found {
		if _, err := strconv.ParseInt(whole, 10, 64); err == nil {
			return whole
		}
	}
	return v
}

// RemoveColumns descarta as colunas auxiliares listadas em DropColumns
type RemoveColumns struct{}

func (RemoveColumns) Name() string { return RemoveColumnsName }

func (RemoveColumns) CanApply(s schema.Schema) (bool, string) {
	if len(s.DropColumns) == 0 {
		return false, "DropColumns não configurado"
	}
	return true, ""
}

func (RemoveColumns) Clean(_ context.Context, ds dataset.Dataset, s schema.Schema) (dataset.Dataset, error) {
	return ds.DropColumns(s.DropColumns...), nil
}
