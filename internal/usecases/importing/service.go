// Package importing executa a carga de uma exportação: limpeza, conversão de
// tipos e gravação em lote em uma única transação.
package importing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/infrastructure/repository"
	"github.com/vfg2006/roas-api/internal/cleaning"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/schema"
	"github.com/vfg2006/roas-api/pkg/metrics"
	"github.com/vfg2006/roas-api/pkg/utils"
)

type ImportService interface {
	Load(ctx context.Context, ds dataset.Dataset, entity domain.EntityType) (*domain.ImportResult, error)
	LoadFile(ctx context.Context, path string, entity domain.EntityType) (*domain.ImportResult, error)
}

type Service struct {
	upsertRepository repository.UpsertRepository
	keyRepository    repository.KeyRepository
	metrics          *metrics.Metrics
	now              func() time.Time
}

func NewService(
	upsertRepository repository.UpsertRepository,
	keyRepository repository.KeyRepository,
) ImportService {
	return &Service{
		upsertRepository: upsertRepository,
		keyRepository:    keyRepository,
		metrics:          metrics.Get(),
		now:              time.Now,
	}
}

func (s *Service) LoadFile(ctx context.Context, path string, entity domain.EntityType) (*domain.ImportResult, error) {
	ds, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, ds, entity)
}

// Load limpa o Dataset conforme o descritor da entidade e grava o resultado.
// Um Dataset vazio após a limpeza não acessa o banco. Erros do banco são
// devolvidos envolvidos com %w e nenhuma linha é considerada gravada.
func (s *Service) Load(ctx context.Context, ds dataset.Dataset, entity domain.EntityType) (*domain.ImportResult, error) {
	desc, err := schema.For(entity)
	if err != nil {
		return nil, err
	}

	pipeline, err := cleaning.ForEntity(entity, s.keyRepository)
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateRunID, err)
	}

	result := &domain.ImportResult{
		RunID:     runID,
		Entity:    entity,
		Received:  ds.Len(),
		StartedAt: s.now(),
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"entity": entity,
		"rows":   ds.Len(),
	})
	logger.Info("Iniciando carga")

	written, err := s.load(ctx, ds, desc, pipeline, result)
	result.Written = written
	result.FinishedAt = s.now()

	s.metrics.ObserveLoad(string(entity), result.Received, result.Duplicates, result.Dropped, result.Written,
		result.FinishedAt.Sub(result.StartedAt), err)

	if err != nil {
		logger.WithError(err).Error("Erro na carga")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"written":    result.Written,
		"duplicates": result.Duplicates,
		"dropped":    result.Dropped,
	}).Info("Carga concluída")

	return result, nil
}

func (s *Service) load(ctx context.Context, ds dataset.Dataset, desc schema.Schema, pipeline cleaning.Pipeline, result *domain.ImportResult) (int64, error) {
	cleaned, report, err := pipeline.Clean(ctx, ds, desc)
	if err != nil {
		return 0, err
	}

	result.Duplicates = report.Removed(cleaning.RemoveDuplicatesName)
	result.Dropped = report.Removed(cleaning.FilterValidForeignKeyName)

	if cleaned.IsEmpty() {
		return 0, nil
	}

	rows, err := bindRows(cleaned, desc)
	if err != nil {
		return 0, err
	}

	written, err := s.upsertRepository.Upsert(ctx, repository.UpsertStatement{
		Table:           desc.TargetTable,
		Columns:         desc.InsertColumns,
		ConflictColumns: desc.ConflictColumns,
		UpdateColumns:   desc.UpdateColumns(),
		Rows:            rows,
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}
