package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestObserveLoad(t *testing.T) {
	m := Get()

	m.ObserveLoad("campaign", 3, 1, 0, 2, time.Second, nil)
	m.ObserveLoad("search_term", 1, 0, 0, 0, time.Second, errors.New("falha"))

	body := scrape(t)
	assert.Contains(t, body, `roas_import_rows_total{entity="campaign",stage="written"}`)
	assert.Contains(t, body, `roas_import_loads_total{entity="search_term",result="failure"} 1`)
	assert.Contains(t, body, "roas_import_load_duration_seconds_bucket")
}

func TestObserveRequest(t *testing.T) {
	Get().ObserveRequest(http.MethodGet, "/healthcheck", http.StatusOK)

	assert.Contains(t, scrape(t), `roas_http_requests_total{method="GET",path="/healthcheck",status="200"} 1`)
}

func TestGet_Singleton(t *testing.T) {
	assert.Same(t, Get(), Get())
}
