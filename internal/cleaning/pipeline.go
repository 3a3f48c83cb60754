package cleaning

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/schema"
)

// Step registra o efeito de uma estratégia sobre o número de linhas
type Step struct {
	Strategy string `json:"strategy"`
	RowsIn   int    `json:"rows_in"`
	RowsOut  int    `json:"rows_out"`
}

func (s Step) Removed() int { return s.RowsIn - s.RowsOut }

type Report struct {
	Entity  domain.EntityType `json:"entity"`
	RowsIn  int               `json:"rows_in"`
	RowsOut int               `json:"rows_out"`
	Steps   []Step            `json:"steps"`
}

// Removed soma as linhas removidas pela estratégia informada
func (r Report) Removed(strategy string) int {
	total := 0
	for _, s := range r.Steps {
		if s.Strategy == strategy {
			total += s.Removed()
		}
	}
	return total
}

type Pipeline struct {
	strategies []Strategy
}

func NewPipeline(strategies ...Strategy) Pipeline {
	return Pipeline{strategies: strategies}
}

// ForEntity monta a sequência de estratégias do tipo de entidade
func ForEntity(entity domain.EntityType, lookup KeyLookup) (Pipeline, error) {
	switch entity {
	case domain.EntityCampaign:
		return NewPipeline(RemoveDuplicates{}, RenameHeaders{}), nil
	case domain.EntityAdGroup:
		return NewPipeline(RemoveDuplicates{}, RenameHeaders{}, NewFilterValidForeignKeys(lookup)), nil
	case domain.EntitySearchTerm:
		return NewPipeline(RemoveDuplicates{}, NewFilterValidForeignKeys(lookup), RemoveColumns{}), nil
	}
	return Pipeline{}, &schema.UnsupportedEntityError{Entity: entity}
}

func (p Pipeline) Strategies() []string {
	names := make([]string, len(p.strategies))
	for i, s := range p.strategies {
		names[i] = s.Name()
	}
	return names
}

// Clean aplica as estratégias em ordem sobre uma cópia do Dataset.
// Todas as estratégias são validadas contra o descritor antes de qualquer
// transformação.
func (p Pipeline) Clean(ctx context.Context, ds dataset.Dataset, s schema.Schema) (dataset.Dataset, Report, error) {
	report := Report{Entity: s.Entity, RowsIn: ds.Len()}

	for _, strategy := range p.strategies {
		if ok, reason := strategy.CanApply(s); !ok {
			return dataset.Dataset{}, report, &ConfigurationError{
				Strategy: strategy.Name(),
				Entity:   s.Entity,
				Reason:   reason,
			}
		}
	}

	current := ds.Clone()
	for _, strategy := range p.strategies {
		if err := ctx.Err(); err != nil {
			return dataset.Dataset{}, report, err
		}

		next, err := strategy.Clean(ctx, current, s)
		if err != nil {
			return dataset.Dataset{}, report, err
		}

		step := Step{Strategy: strategy.Name(), RowsIn: current.Len(), RowsOut: next.Len()}
		report.Steps = append(report.Steps, step)

		logrus.WithFields(logrus.Fields{
			"entity":   s.Entity,
			"strategy": step.Strategy,
			"rows_in":  step.RowsIn,
			"rows_out": step.RowsOut,
		}).Debug("Estratégia de limpeza aplicada")

		current = next
	}

	report.RowsOut = current.Len()
	return current, report, nil
}
