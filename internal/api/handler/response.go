package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é o formato de toda resposta de sucesso
type Envelope struct {
	Metadata map[string]any `json:"metadata"`
	Data     any            `json:"data"`
}

// queryParams devolve os parâmetros da query string. Para chaves repetidas vale o primeiro valor.
func queryParams(r *http.Request) map[string]string {
	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}

func buildMetadata(r *http.Request, extra map[string]any) map[string]any {
	metadata := map[string]any{"query_params": queryParams(r)}
	for key, value := range extra {
		metadata[key] = value
	}
	return metadata
}

// writeSuccess escreve o envelope com o status informado
func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any, extra map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Metadata: buildMetadata(r, extra), Data: data}); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}
