// Package dataset contém a representação em memória de uma exportação tabular:
// colunas nomeadas e linhas de células texto. Todas as operações devolvem um
// novo Dataset; o valor original nunca é alterado.
package dataset

import (
	"fmt"
	"slices"
)

type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New cria um Dataset copiando colunas e linhas.
// Todas as linhas precisam ter a mesma largura do cabeçalho.
func New(columns []string, rows [][]string) (Dataset, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return Dataset{}, fmt.Errorf("coluna duplicada: %q", c)
		}
		index[c] = i
	}

	copied := make([][]string, len(rows))
	for i, r := range rows {
		if len(r) != len(columns) {
			return Dataset{}, fmt.Errorf("linha %d tem %d campos, esperado %d", i+1, len(r), len(columns))
		}
		copied[i] = slices.Clone(r)
	}

	return Dataset{
		columns: slices.Clone(columns),
		index:   index,
		rows:    copied,
	}, nil
}

// MustNew é usado em testes e fixtures estáticas
func MustNew(columns []string, rows [][]string) Dataset {
	ds, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return ds
}

func (d Dataset) Columns() []string { return slices.Clone(d.columns) }

func (d Dataset) Len() int { return len(d.rows) }

func (d Dataset) IsEmpty() bool { return len(d.rows) == 0 }

func (d Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Row retorna uma cópia da linha i
func (d Dataset) Row(i int) []string { return slices.Clone(d.rows[i]) }

// Value retorna a célula da linha i na coluna informada
func (d Dataset) Value(i int, column string) (string, bool) {
	j, ok := d.index[column]
	if !ok {
		return "", false
	}
	return d.rows[i][j], true
}

// Column retorna todos os valores de uma coluna na ordem das linhas
func (d Dataset) Column(name string) ([]string, bool) {
	j, ok := d.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(d.rows))
	for i, r := range d.rows {
		values[i] = r[j]
	}
	return values, true
}

func (d Dataset) Clone() Dataset {
	ds, _ := New(d.columns, d.rows)
	return ds
}

// SelectRows monta um novo Dataset com as linhas nos índices informados, na ordem dada
func (d Dataset) SelectRows(indices []int) Dataset {
	rows := make([][]string, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, d.rows[i])
	}
	ds, _ := New(d.columns, rows)
	return ds
}

// RenameColumns aplica o mapa origem -> destino apenas aos nomes das colunas.
// Colunas fora do mapa permanecem iguais.
func (d Dataset) RenameColumns(renames map[string]string) (Dataset, error) {
	columns := make([]string, len(d.columns))
	for i, c := range d.columns {
		if to, ok := renames[c]; ok {
			columns[i] = to
			continue
		}
		columns[i] = c
	}
	return New(columns, d.rows)
}

// DropColumns remove as colunas informadas; nomes ausentes são ignorados
func (d Dataset) DropColumns(names ...string) Dataset {
	keep := make([]int, 0, len(d.columns))
	columns := make([]string, 0, len(d.columns))
	for i, c := range d.columns {
		if slices.Contains(names, c) {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, c)
	}

	rows := make([][]string, len(d.rows))
	for i, r := range d.rows {
		row := make([]string, len(keep))
		for k, j := range keep {
			row[k] = r[j]
		}
		rows[i] = row
	}

	ds, _ := New(columns, rows)
	return ds
}

// Equal compara colunas e linhas, respeitando a ordem
func (d Dataset) Equal(other Dataset) bool {
	if !slices.Equal(d.columns, other.columns) || len(d.rows) != len(other.rows) {
		return false
	}
	for i := range d.rows {
		if !slices.Equal(d.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}
