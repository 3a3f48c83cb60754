package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoASPlaces é a escala usada para armazenar o RoAS (NUMERIC(12,4))
const RoASPlaces = 4

type SearchTerm struct {
	ID              int64           `json:"id"`
	Date            time.Time       `json:"date"`
	AdGroupID       int64           `json:"ad_group_id"`
	Clicks          int64           `json:"clicks"`
	Cost            decimal.Decimal `json:"cost"`
	ConversionValue decimal.Decimal `json:"conversion_value"`
	Conversions     int64           `json:"conversions"`
	SearchTerm      string          `json:"search_term"`
	RoAS            decimal.Decimal `json:"roas"`
	AdGroup         *AdGroup        `json:"ad_group,omitempty"`
}

// CalcRoAS calcula o retorno sobre o investimento em anúncios.
// Com custo zero o RoAS é o próprio valor de conversão.
func CalcRoAS(cost, conversionValue decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return conversionValue.Round(RoASPlaces)
	}
	return conversionValue.DivRound(cost, RoASPlaces)
}
