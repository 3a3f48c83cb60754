package handler

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roas-api/internal/api/handler/router"
	"github.com/vfg2006/roas-api/internal/cleaning"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/usecases/importing"
	"github.com/vfg2006/roas-api/internal/usecases/importing/mocks"
	"go.uber.org/mock/gomock"
)

const campaignsCSV = "campaign_id,structure_value,status\n1,brand,ENABLED\n2,generic,PAUSED\n"

func multipartRequest(t *testing.T, target, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(uploadField, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	rt := router.New(router.WithRoutes(Imports(service, 1)...))

	result := &domain.ImportResult{RunID: "run-1", Entity: domain.EntityCampaign, Received: 2, Written: 2}

	tests := []struct {
		name    string
		request func() *http.Request
	}{
		{
			name: "multipart",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports/campaigns", "campaigns.csv", campaignsCSV)
			},
		},
		{
			name: "csv no corpo",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/v1/imports/campaign", strings.NewReader(campaignsCSV))
				req.Header.Set("Content-Type", "text/csv")
				return req
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().
				Load(gomock.Any(), gomock.Any(), domain.EntityCampaign).
				DoAndReturn(func(_ context.Context, ds dataset.Dataset, _ domain.EntityType) (*domain.ImportResult, error) {
					assert.Equal(t, 2, ds.Len())
					assert.Equal(t, []string{"campaign_id", "structure_value", "status"}, ds.Columns())
					return result, nil
				})

			rec := serve(rt, tt.request())

			require.Equal(t, http.StatusOK, rec.Code)
			data := decodeBody(t, rec)["data"].(map[string]any)
			assert.Equal(t, "run-1", data["run_id"])
			assert.Equal(t, float64(2), data["written"])
		})
	}
}

func TestImportFile_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockImportService(ctrl)
	rt := router.New(router.WithRoutes(Imports(service, 1)...))

	tests := []struct {
		name           string
		request        func() *http.Request
		loadErr        error
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "entidade desconhecida",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/imports/keywords", strings.NewReader(campaignsCSV))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "IMP_001",
		},
		{
			name: "arquivo acima do limite",
			request: func() *http.Request {
				big := campaignsCSV + strings.Repeat("3,brand,ENABLED\n", 1<<17)
				return httptest.NewRequest(http.MethodPost, "/v1/imports/campaigns", strings.NewReader(big))
			},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedCode:   "IMP_003",
		},
		{
			name: "formato não suportado",
			request: func() *http.Request {
				return multipartRequest(t, "/v1/imports/campaigns", "campaigns.json", "{}")
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VAL_003",
		},
		{
			name: "corpo vazio",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/imports/campaigns", strings.NewReader(""))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "IMP_002",
		},
		{
			name: "célula inválida",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/imports/campaigns", strings.NewReader(campaignsCSV))
			},
			loadErr:        fmt.Errorf("erro ao converter: %w", &importing.RowError{Row: 1, Column: "clicks", Value: "abc", Err: importing.ErrInvalidValue}),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "IMP_002",
		},
		{
			name: "coluna ausente",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/imports/campaigns", strings.NewReader(campaignsCSV))
			},
			loadErr:        &cleaning.MissingColumnError{Strategy: cleaning.RemoveDuplicatesName, Column: "status"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "IMP_002",
		},
		{
			name: "erro do banco",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/v1/imports/campaigns", strings.NewReader(campaignsCSV))
			},
			loadErr:        assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "SRV_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.loadErr != nil {
				service.EXPECT().Load(gomock.Any(), gomock.Any(), domain.EntityCampaign).Return(nil, tt.loadErr)
			}

			rec := serve(rt, tt.request())

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeBody(t, rec)["code"])
		})
	}
}
