package importing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/roas-api/internal/schema"
)

var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrInvalidValue  = schema.ErrInvalidValue
	ErrGenerateRunID = errors.New("erro ao gerar identificador da carga")
)

// RowError aponta a célula que não pôde ser convertida. A carga é abortada
// antes de qualquer escrita.
type RowError struct {
	Row    int // posição da linha de dados após a limpeza, a partir de 1
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("linha %d, coluna %s (%q): %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
