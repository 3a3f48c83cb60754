package domain

import "fmt"

// EntityType identifica o tipo de registro de uma exportação tabular
type EntityType string

const (
	EntityCampaign   EntityType = "campaign"
	EntityAdGroup    EntityType = "ad_group"
	EntitySearchTerm EntityType = "search_term"
)

// Entities retorna os tipos na ordem da hierarquia (pais primeiro)
func Entities() []EntityType {
	return []EntityType{EntityCampaign, EntityAdGroup, EntitySearchTerm}
}

// ParseEntityType aceita o nome canônico ou o plural usado nas rotas e na CLI
// (ex: "ad-groups", "search_terms").
func ParseEntityType(s string) (EntityType, error) {
	switch s {
	case "campaign", "campaigns":
		return EntityCampaign, nil
	case "ad_group", "ad_groups", "ad-group", "ad-groups":
		return EntityAdGroup, nil
	case "search_term", "search_terms", "search-term", "search-terms":
		return EntitySearchTerm, nil
	}
	return "", fmt.Errorf("tipo de entidade desconhecido: %q", s)
}
