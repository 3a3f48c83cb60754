// Package metrics registra as métricas prometheus das cargas e da API
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roas"

type Metrics struct {
	rowsTotal    *prometheus.CounterVec
	loadsTotal   *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *Metrics {
	return &Metrics{
		rowsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Linhas processadas por entidade e etapa (received, duplicate, dropped, written).",
		}, []string{"entity", "stage"}),
		loadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_loads_total",
			Help:      "Cargas executadas por entidade e resultado.",
		}, []string{"entity", "result"}),
		loadDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_load_duration_seconds",
			Help:      "Duração das cargas, da limpeza ao commit.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"entity", "result"}),
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por rota e status.",
		}, []string{"method", "path", "status"}),
	}
})

func Get() *Metrics {
	return metricsSingleton()
}

// ObserveLoad registra uma carga concluída (com sucesso ou não)
func (m *Metrics) ObserveLoad(entity string, received, duplicates, dropped int, written int64, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}

	m.loadsTotal.WithLabelValues(entity, result).Inc()
	m.loadDuration.WithLabelValues(entity, result).Observe(elapsed.Seconds())

	m.rowsTotal.WithLabelValues(entity, "received").Add(float64(received))
	m.rowsTotal.WithLabelValues(entity, "duplicate").Add(float64(duplicates))
	m.rowsTotal.WithLabelValues(entity, "dropped").Add(float64(dropped))
	m.rowsTotal.WithLabelValues(entity, "written").Add(float64(written))
}

func (m *Metrics) ObserveRequest(method, path string, status int) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Handler expõe o registro padrão no formato do prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
