package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\uFEFF"

var (
	ErrEmptyFile         = errors.New("arquivo sem cabeçalho")
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
)

// ReadFile lê um arquivo .csv ou .xlsx e devolve o Dataset correspondente
func ReadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read escolhe o leitor pela extensão do nome informado
func Read(r io.Reader, name string) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r, "")
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ReadCSV lê um CSV com cabeçalho. Espaços nas bordas das células são removidos.
func ReadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	return fromRecords(records)
}

// ReadXLSX lê a planilha informada (ou a primeira, se sheet for vazio)
func ReadXLSX(r io.Reader, sheet string) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Dataset{}, ErrEmptyFile
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return Dataset{}, fmt.Errorf("erro ao ler planilha %q: %w", sheet, err)
	}

	// o excelize corta células vazias no fim da linha
	if len(records) > 0 {
		width := len(records[0])
		for i := 1; i < len(records); i++ {
			for len(records[i]) < width {
				records[i] = append(records[i], "")
			}
		}
	}

	return fromRecords(records)
}

func fromRecords(records [][]string) (Dataset, error) {
	if len(records) == 0 {
		return Dataset{}, ErrEmptyFile
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		header[i] = strings.TrimSpace(h)
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make([]string, len(rec))
		for j, v := range rec {
			row[j] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}

	return New(header, rows)
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
