package ranking

import "fmt"

// ValidationError indica um parâmetro de consulta inválido. Nenhuma consulta
// é executada quando ele é devolvido.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s inválido (%q): %s", e.Field, e.Value, e.Reason)
}
