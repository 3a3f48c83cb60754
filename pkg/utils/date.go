package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts cobre as exportações em CSV e o formato padrão de datas do Excel
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01-02-06",
}

// ParseDate interpreta a data de uma exportação. O horário é descartado.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			y, m, d := date.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}
