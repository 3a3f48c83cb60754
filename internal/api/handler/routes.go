package handler

import (
	"net/http"

	"github.com/vfg2006/roas-api/internal/api/handler/router"
	"github.com/vfg2006/roas-api/internal/usecases/importing"
	"github.com/vfg2006/roas-api/internal/usecases/ranking"
	"github.com/vfg2006/roas-api/pkg/metrics"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// RoAS registra as consultas com e sem o valor na rota. Sem ele o valor vem do corpo JSON.
func RoAS(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/roas/by-alias/",
			Method:  http.MethodGet,
			Handler: RoASByAlias(service),
		},
		{
			Path:    "/v1/roas/by-alias/:alias",
			Method:  http.MethodGet,
			Handler: RoASByAlias(service),
		},
		{
			Path:    "/v1/roas/by-structured-value/",
			Method:  http.MethodGet,
			Handler: RoASByStructuredValue(service),
		},
		{
			Path:    "/v1/roas/by-structured-value/:structured_value",
			Method:  http.MethodGet,
			Handler: RoASByStructuredValue(service),
		},
	}
}

func Imports(service importing.ImportService, maxUploadMB int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/imports/:entity",
			Method:  http.MethodPost,
			Handler: ImportFile(service, maxUploadMB),
		},
	}
}

func Sync(service SyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunSync(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}

func Metrics(path string) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
