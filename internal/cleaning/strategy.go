// Package cleaning contém as estratégias de limpeza aplicadas a uma exportação
// antes da gravação em lote, e o pipeline que as executa em ordem.
package cleaning

import (
	"context"
	"fmt"

	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/schema"
)

const (
	RemoveDuplicatesName      = "remove_duplicates"
	RenameHeadersName         = "rename_headers"
	FilterValidForeignKeyName = "filter_valid_foreign_keys"
	RemoveColumnsName         = "remove_columns"
)

// Strategy transforma um Dataset segundo o descritor da entidade.
// Clean nunca altera o Dataset recebido.
type Strategy interface {
	Name() string
	CanApply(s schema.Schema) (bool, string)
	Clean(ctx context.Context, ds dataset.Dataset, s schema.Schema) (dataset.Dataset, error)
}

// KeyLookup carrega o conjunto de chaves primárias existentes em uma tabela
type KeyLookup interface {
	ValidKeys(ctx context.Context, table, column string) (map[string]struct{}, error)
}

// ConfigurationError indica que o descritor não tem um atributo exigido pela
// estratégia. É um erro de programação, nunca de dados.
type ConfigurationError struct {
	Strategy string
	Entity   domain.EntityType
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("estratégia %s não se aplica à entidade %q: %s", e.Strategy, e.Entity, e.Reason)
}

// MissingColumnError indica que o arquivo não tem uma coluna esperada
type MissingColumnError struct {
	Strategy string
	Column   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: coluna %q ausente no arquivo", e.Strategy, e.Column)
}

func requireColumns(strategy string, ds dataset.Dataset, columns ...string) error {
	for _, c := range columns {
		if !ds.HasColumn(c) {
			return &MissingColumnError{Strategy: strategy, Column: c}
		}
	}
	return nil
}
