package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/roas-api/pkg/apiErrors"
	"github.com/vfg2006/roas-api/pkg/log"
)

// SyncService é o agendador de cargas visto pelos handlers
type SyncService interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunSync dispara manualmente a carga dos arquivos configurados
func RunSync(service SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunSync")

		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização de arquivos já em andamento", nil)
			return
		}

		writeSuccess(w, r, http.StatusAccepted, map[string]any{
			"message": "Sincronização de arquivos iniciada com sucesso",
		}, nil)
	}
}

// GetSyncStatus retorna o status do agendador de cargas
func GetSyncStatus(service SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, http.StatusOK, service.GetStatus(), nil)
	}
}
