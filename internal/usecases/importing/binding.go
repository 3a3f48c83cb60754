package importing

import (
	"fmt"

	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/schema"
)

// bindRows converte as células texto nos tipos das colunas de inserção e
// calcula as colunas derivadas. A ordem dos valores segue InsertColumns.
func bindRows(ds dataset.Dataset, s schema.Schema) ([][]any, error) {
	for _, c := range s.InsertColumns {
		if s.IsDerived(c) {
			continue
		}
		if !ds.HasColumn(c) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	derived := make(map[string]schema.DerivedColumn, len(s.Derived))
	for _, d := range s.Derived {
		derived[d.Name] = d
	}

	rows := make([][]any, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		values := make(map[string]any, len(s.InsertColumns))
		for _, c := range s.InsertColumns {
			if _, ok := derived[c]; ok {
				continue
			}

			raw, _ := ds.Value(i, c)
			v, err := schema.ParseValue(s.ColumnTypes[c], raw)
			if err != nil {
				return nil, &RowError{Row: i + 1, Column: c, Value: raw, Err: err}
			}
			values[c] = v
		}

		row := make([]any, len(s.InsertColumns))
		for j, c := range s.InsertColumns {
			if d, ok := derived[c]; ok {
				v, err := d.Compute(values)
				if err != nil {
					return nil, &RowError{Row: i + 1, Column: c, Err: err}
				}
				values[c] = v
			}
			row[j] = values[c]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
