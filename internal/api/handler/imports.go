package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/roas-api/internal/cleaning"
	"github.com/vfg2006/roas-api/internal/dataset"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/schema"
	"github.com/vfg2006/roas-api/internal/usecases/importing"
	"github.com/vfg2006/roas-api/pkg/apiErrors"
	"github.com/vfg2006/roas-api/pkg/log"
)

const uploadField = "file"

// ImportFile recebe uma exportação (multipart no campo "file" ou CSV no corpo)
// e executa a carga da entidade informada na rota.
func ImportFile(service importing.ImportService, maxUploadMB int64) http.HandlerFunc {
	maxBytes := maxUploadMB << 20

	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entity, err := domain.ParseEntityType(httprouter.ParamsFromContext(r.Context()).ByName("entity"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedEntity, err.Error(), nil)
			return
		}
		logger = logger.WithField("entity", entity)
		logger.Info("INIT - Importação de arquivo")

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		ds, err := readUpload(r)
		if err != nil {
			writeUploadError(w, err)
			return
		}

		result, err := service.Load(r.Context(), ds, entity)
		if err != nil {
			writeImportError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, result, nil)
	}
}

func readUpload(r *http.Request) (dataset.Dataset, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		file, header, err := r.FormFile(uploadField)
		if err != nil {
			return dataset.Dataset{}, err
		}
		defer file.Close()

		return dataset.Read(file, header.Filename)
	}

	return dataset.ReadCSV(r.Body)
}

func writeUploadError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo acima do limite permitido", map[string]any{"limit_bytes": tooLarge.Limit})
	case errors.Is(err, http.ErrMissingFile):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo \"file\" obrigatório", nil)
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, io.ErrUnexpectedEOF):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição incompleto", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidFileData, err.Error(), nil)
	}
}

func writeImportError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unsupported   *schema.UnsupportedEntityError
		rowErr        *importing.RowError
		missingColumn *cleaning.MissingColumnError
	)

	switch {
	case errors.As(err, &unsupported):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedEntity, err.Error(), nil)
	case errors.As(err, &rowErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFileData, err.Error(), map[string]any{
			"row":    rowErr.Row,
			"column": rowErr.Column,
			"value":  rowErr.Value,
		})
	case errors.As(err, &missingColumn), errors.Is(err, importing.ErrMissingColumn):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFileData, err.Error(), nil)
	case errors.Is(err, context.Canceled):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Requisição cancelada", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao importar arquivo")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar os dados importados", nil)
	}
}
