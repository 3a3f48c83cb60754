package ranking

import (
	"context"
	"strings"

	"github.com/vfg2006/roas-api/infrastructure/repository"
	"github.com/vfg2006/roas-api/internal/domain"
)

type RankingService interface {
	RankByAlias(ctx context.Context, alias string, limit *string) ([]domain.SearchTerm, error)
	RankByStructuredValue(ctx context.Context, structuredValue string, limit *string) ([]domain.SearchTerm, error)
}

type SearchTermRankingService struct {
	SearchTermRepository repository.SearchTermRepository
}

func NewSearchTermRankingService(searchTermRepository repository.SearchTermRepository) RankingService {
	return &SearchTermRankingService{
		SearchTermRepository: searchTermRepository,
	}
}

// RankByAlias lista os termos de busca do ad group por roas decrescente
func (s *SearchTermRankingService) RankByAlias(ctx context.Context, alias string, limit *string) ([]domain.SearchTerm, error) {
	n, err := validate("alias", alias, limit)
	if err != nil {
		return nil, err
	}
	return s.SearchTermRepository.RankByAlias(ctx, alias, n.Rows())
}

// RankByStructuredValue lista os termos de busca da campanha por roas decrescente
func (s *SearchTermRankingService) RankByStructuredValue(ctx context.Context, structuredValue string, limit *string) ([]domain.SearchTerm, error) {
	n, err := validate("structured_value", structuredValue, limit)
	if err != nil {
		return nil, err
	}
	return s.SearchTermRepository.RankByStructuredValue(ctx, structuredValue, n.Rows())
}

func validate(field, value string, limit *string) (Limit, error) {
	if strings.TrimSpace(value) == "" {
		return Limit{}, &ValidationError{Field: field, Reason: "obrigatório"}
	}
	return ParseLimit(limit)
}
