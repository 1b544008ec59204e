package spreadsheet

import (
	"bytes"
	"html/template"

	wkhtml "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

var pdfTemplate = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; font-size: 9px; }
h1 { font-size: 14px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 3px; text-align: left; }
th { background: #e8e8e8; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>`))

// PDF converte uma aba em PDF usando o wkhtmltopdf instalado no sistema
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

// RenderHTML monta o HTML da tabela; linhas sem nenhum valor são omitidas
func (p *PDF) RenderHTML(title string, sheet domain.Sheet) ([]byte, error) {
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		values := make([]string, len(row))
		blank := true
		for i, cell := range row {
			values[i] = cell.String()
			if !cell.IsBlank() {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, values)
		}
	}

	var buf bytes.Buffer
	err := pdfTemplate.Execute(&buf, map[string]any{
		"Title":   title,
		"Headers": sheet.Headers,
		"Rows":    rows,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar html do pdf")
	}

	return buf.Bytes(), nil
}

func (p *PDF) Render(title string, sheet domain.Sheet) ([]byte, error) {
	html, err := p.RenderHTML(title, sheet)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtml.NewPDFGenerator()
	if err != nil {
		return nil, errors.Wrap(err, "wkhtmltopdf indisponível")
	}

	pdfg.AddPage(wkhtml.NewPageReader(bytes.NewReader(html)))
	pdfg.PageSize.Set(wkhtml.PageSizeA4)
	pdfg.Orientation.Set(wkhtml.OrientationLandscape)

	if err := pdfg.Create(); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar pdf")
	}

	return pdfg.Bytes(), nil
}
