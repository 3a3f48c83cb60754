package ranking

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	// AllKeyword remove o limite de resultados
	AllKeyword = "all"
)

type Limit struct {
	N   uint64
	All bool
}

// Rows devolve nil quando não há limite
func (l Limit) Rows() *uint64 {
	if l.All {
		return nil
	}
	n := l.N
	return &n
}

// ParseLimit aplica a política de limite: ausente retorna DefaultLimit,
// "all" remove o limite e dígitos decimais definem o limite.
// Qualquer outro valor é um ValidationError.
func ParseLimit(raw *string) (Limit, error) {
	if raw == nil {
		return Limit{N: DefaultLimit}, nil
	}

	value := *raw
	if value == AllKeyword {
		return Limit{All: true}, nil
	}

	if value == "" || strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Limit{}, &ValidationError{Field: "limit", Value: *raw, Reason: "use um número inteiro ou 'all'"}
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return Limit{}, &ValidationError{Field: "limit", Value: *raw, Reason: "número fora do intervalo"}
	}

	return Limit{N: n}, nil
}
