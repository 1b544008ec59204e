package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Limite de caracteres do nome de uma aba no Excel
const maxSheetName = 31

var (
	ErrEmptyWorkbook = errors.New("planilha sem abas")
	ErrMissingHeader = errors.New("planilha sem linha de cabeçalho")
)

// Excel lê e escreve planilhas .xlsx
type Excel struct{}

func NewExcel() *Excel {
	return &Excel{}
}

// Decode lê a primeira aba: a primeira linha é o cabeçalho e as demais
// viram a grade, ajustadas à largura do cabeçalho.
func (e *Excel) Decode(r io.Reader) ([]string, domain.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler aba %s", sheets[0])
	}
	if len(rows) == 0 {
		return nil, nil, ErrMissingHeader
	}

	headers := trimTrailingEmpty(rows[0])
	if len(headers) == 0 {
		return nil, nil, ErrMissingHeader
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	grid := domain.GridFromStrings(rows[1:]).Normalize(len(headers))

	return headers, grid, nil
}

// Encode escreve uma aba por Sheet, na ordem recebida
func (e *Excel) Encode(w io.Writer, sheets []domain.Sheet) error {
	if len(sheets) == 0 {
		return ErrEmptyWorkbook
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)

	for i, sheet := range sheets {
		name := sheetName(sheet.Name, i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return errors.Wrap(err, "erro ao renomear aba")
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return errors.Wrapf(err, "erro ao criar aba %s", name)
		}

		if err := writeSheet(f, name, sheet); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	return errors.Wrap(f.Write(w), "erro ao gravar planilha")
}

func writeSheet(f *excelize.File, name string, sheet domain.Sheet) error {
	headers := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		return errors.Wrapf(err, "erro ao gravar cabeçalho da aba %s", name)
	}

	for i, row := range sheet.Rows {
		values := make([]any, len(row))
		for j, cell := range row {
			values[j] = cell.String()
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha %d da aba %s", i+2, name)
		}
	}

	return nil
}

func sheetName(name string, index int) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Hoja%d", index+1)
	}
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

func trimTrailingEmpty(row []string) []string {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	out := make([]string, end)
	copy(out, row[:end])
	return out
}
