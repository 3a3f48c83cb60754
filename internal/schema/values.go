package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/roas-api/pkg/utils"
)

var ErrInvalidValue = errors.New("valor inválido")

// TypeOf devolve o tipo da coluna como ela aparece no arquivo, antes ou
// depois da renomeação. Colunas sem tipo declarado são texto.
func (s Schema) TypeOf(column string) ColumnType {
	if t, ok := s.ColumnTypes[column]; ok {
		return t
	}
	if renamed, ok := s.RenameMap[column]; ok {
		return s.ColumnTypes[renamed]
	}
	return Text
}

// ParseValue converte a célula no tipo da coluna
func ParseValue(t ColumnType, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if t != Text && raw == "" {
		return nil, fmt.Errorf("%w: célula vazia para coluna %s", ErrInvalidValue, t)
	}

	switch t {
	case Int:
		return parseInt(raw)
	case Count:
		n, err := parseInt(raw)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: contagem negativa", ErrInvalidValue)
		}
		return n, nil
	case Decimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return d, nil
	case Date:
		date, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return date, nil
	}
	return raw, nil
}

// CanonicalValue é a forma textual do valor que será gravado: "50" e "50.0",
// ou "2024-01-05" e "05/01/2024", resultam na mesma chave. Células que não
// convertem são devolvidas sem espaços nas bordas; a gravação as rejeita depois.
func CanonicalValue(t ColumnType, raw string) string {
	v, err := ParseValue(t, raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}

	switch val := v.(type) {
	case int64:
		return strconv.FormatInt(val, 10)
	case decimal.Decimal:
		return val.String()
	case time.Time:
		return val.Format(time.DateOnly)
	case string:
		return val
	}
	return fmt.Sprint(v)
}

// parseInt aceita ids exportados como float ("50.0") desde que sejam inteiros
func parseInt(raw string) (int64, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q não é inteiro", ErrInvalidValue, raw)
	}
	return d.IntPart(), nil
}
