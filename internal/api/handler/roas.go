package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/usecases/ranking"
	"github.com/vfg2006/roas-api/pkg/apiErrors"
	"github.com/vfg2006/roas-api/pkg/log"
)

// rankingRequest é o corpo opcional das consultas de RoAS
type rankingRequest struct {
	Alias           *string `json:"alias"`
	StructuredValue *string `json:"structured_value"`
	// Limit aceita número ou texto ("all", "5")
	Limit any `json:"limit"`
}

type rankFunc func(ctx context.Context, value string, limit *string) ([]domain.SearchTerm, error)

// RoASByAlias lista os termos de busca de um ad group ordenados por RoAS
func RoASByAlias(service ranking.RankingService) http.HandlerFunc {
	return rankingHandler("alias", func(body rankingRequest) *string { return body.Alias }, service.RankByAlias)
}

// RoASByStructuredValue lista os termos de busca de uma campanha ordenados por RoAS
func RoASByStructuredValue(service ranking.RankingService) http.HandlerFunc {
	return rankingHandler("structured_value", func(body rankingRequest) *string { return body.StructuredValue }, service.RankByStructuredValue)
}

func rankingHandler(field string, fromBody func(rankingRequest) *string, rank rankFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("filter", field)
		logger.Debug("INIT - Ranking de RoAS")

		body, err := decodeRankingRequest(r)
		if err != nil {
			logger.WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", map[string]any{"query_params": queryParams(r)})
			return
		}

		// O valor da rota tem precedência sobre o corpo
		value := httprouter.ParamsFromContext(r.Context()).ByName(field)
		if value == "" {
			if v := fromBody(body); v != nil {
				value = *v
			}
		}

		limit, err := resolveLimit(r, body)
		if err != nil {
			writeRankingError(w, r, err)
			return
		}

		results, err := rank(r.Context(), value, limit)
		if err != nil {
			writeRankingError(w, r, err)
			return
		}

		if results == nil {
			results = []domain.SearchTerm{}
		}

		writeSuccess(w, r, http.StatusOK, results, nil)
	}
}

// decodeRankingRequest lê o corpo JSON, que é opcional
func decodeRankingRequest(r *http.Request) (rankingRequest, error) {
	var body rankingRequest
	if r.Body == nil || r.Body == http.NoBody {
		return body, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return rankingRequest{}, nil
		}
		return rankingRequest{}, pkgerrors.Wrap(err, "erro ao decodificar corpo da consulta")
	}
	return body, nil
}

// resolveLimit usa a query string e, quando vazia, o corpo da requisição
func resolveLimit(r *http.Request, body rankingRequest) (*string, error) {
	if limit := r.URL.Query().Get("limit"); limit != "" {
		return &limit, nil
	}

	switch v := body.Limit.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s, nil
	default:
		return nil, &ranking.ValidationError{Field: "limit", Reason: "deve ser um inteiro ou \"all\""}
	}
}

func writeRankingError(w http.ResponseWriter, r *http.Request, err error) {
	details := map[string]any{"query_params": queryParams(r)}

	var validation *ranking.ValidationError
	if errors.As(err, &validation) {
		code := apiErrors.ErrMissingRequiredData
		if validation.Field == "limit" {
			code = apiErrors.ErrInvalidRequest
		}
		apiErrors.WriteError(w, code, validation.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar ranking de RoAS")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar ranking de RoAS", details)
}
