package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/internal/config"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/usecases/importing"
	"github.com/zeebo/xxh3"
)

// ImportSyncConfig representa a configuração do agendador de cargas
type ImportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
	// Files na ordem da hierarquia: campanhas, ad groups, termos de busca
	Files map[domain.EntityType]string
}

// FileStatus guarda o resultado da última carga de um arquivo
type FileStatus struct {
	Path        string               `json:"path"`
	Fingerprint string               `json:"fingerprint,omitempty"`
	LastResult  *domain.ImportResult `json:"last_result,omitempty"`
	LastError   string               `json:"last_error,omitempty"`
	Skipped     bool                 `json:"skipped"`
}

// ImportSyncService recarrega periodicamente os arquivos configurados.
// Um arquivo cujo conteúdo não mudou desde a última carga bem-sucedida é ignorado,
// a menos que uma entidade acima dele na hierarquia tenha sido recarregada:
// linhas descartadas por falta do pai precisam de nova chance.
type ImportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ImportSyncConfig
	importService       importing.ImportService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	fingerprints        map[domain.EntityType]uint64
	files               map[domain.EntityType]*FileStatus
}

func NewImportSyncService(
	importService importing.ImportService,
	appConfig *config.Config,
) *ImportSyncService {
	syncConfig := ImportSyncConfig{
		CronSchedule: appConfig.Import.CronSchedule,
		SyncEnabled:  appConfig.Import.Enabled,
		Timeout:      appConfig.Import.Timeout,
		Files: map[domain.EntityType]string{
			domain.EntityCampaign:   appConfig.Import.CampaignsFile,
			domain.EntityAdGroup:    appConfig.Import.AdGroupsFile,
			domain.EntitySearchTerm: appConfig.Import.SearchTermsFile,
		},
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"timeout":       syncConfig.Timeout.String(),
	}).Info("Configuração do agendador de cargas carregada")

	return newImportSyncService(importService, syncConfig)
}

func newImportSyncService(importService importing.ImportService, syncConfig ImportSyncConfig) *ImportSyncService {
	return &ImportSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		importService: importService,
		fingerprints:  make(map[domain.EntityType]uint64),
		files:         make(map[domain.EntityType]*FileStatus),
	}
}

// Start inicia o agendador
func (s *ImportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de arquivos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de cargas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de arquivos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de cargas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAll carrega os arquivos na ordem da hierarquia
func (s *ImportSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de arquivos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de arquivos")

	for _, entity := range domain.Entities() {
		path := s.config.Files[entity]
		if path == "" {
			continue
		}
		if ctx.Err() != nil {
			logrus.WithError(ctx.Err()).Warn("Sincronização de arquivos interrompida")
			return
		}
		s.syncFile(ctx, entity, path)
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Sincronização de arquivos concluída")
}

func (s *ImportSyncService) syncFile(ctx context.Context, entity domain.EntityType, path string) {
	logger := logrus.WithFields(logrus.Fields{"entity": entity, "path": path})
	status := &FileStatus{Path: path}

	defer func() {
		s.syncMutex.Lock()
		s.files[entity] = status
		s.syncMutex.Unlock()
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler arquivo para sincronização")
		status.LastError = err.Error()
		return
	}

	fingerprint := xxh3.Hash(content)
	status.Fingerprint = fmt.Sprintf("%016x", fingerprint)

	s.syncMutex.Lock()
	previous, loaded := s.fingerprints[entity]
	s.syncMutex.Unlock()

	if loaded && previous == fingerprint {
		logger.Info("Arquivo sem alterações desde a última carga, ignorando")
		status.Skipped = true
		return
	}

	ds, err := dataset.Read(bytes.NewReader(content), path)
	if err != nil {
		logger.WithError(err).Error("Erro ao interpretar arquivo")
		status.LastError = err.Error()
		return
	}

	result, err := s.importService.Load(ctx, ds, entity)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar arquivo")
		status.LastError = err.Error()
		return
	}

	status.LastResult = result

	s.syncMutex.Lock()
	s.fingerprints[entity] = fingerprint
	s.invalidateDependents(entity)
	s.syncMutex.Unlock()
}

// invalidateDependents esquece as impressões digitais das entidades que vêm
// depois de entity em domain.Entities(). Chamado com syncMutex travado.
func (s *ImportSyncService) invalidateDependents(entity domain.EntityType) {
	entities := domain.Entities()
	for i, e := range entities {
		if e != entity {
			continue
		}
		for _, child := range entities[i+1:] {
			delete(s.fingerprints, child)
		}
		return
	}
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false
// quando já existe uma em andamento.
func (s *ImportSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de arquivos já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de arquivos")
	go s.syncAll(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ImportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	files := make(map[string]FileStatus, len(s.files))
	for entity, status := range s.files {
		files[string(entity)] = *status
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"files":                  files,
	}
}
