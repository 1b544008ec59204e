package domain

import (
	"encoding/json"
	"errors"
	"sort"
	"time"
)

const (
	// DefaultGridRows é o número de linhas de um documento recém-criado
	DefaultGridRows = 50
	// DefaultGridCols é o número de colunas de um documento recém-criado
	DefaultGridCols = 11
)

// CanonicalHeaders é o cabeçalho padrão de 11 colunas da planilha de empréstimos
var CanonicalHeaders = []string{
	"Fecha",
	"Mes",
	"DNI",
	"Nombre",
	"Celular",
	"Producto",
	"Monto",
	"Tasa",
	"Lugar",
	"Obs",
	"Ganancias",
}

// ErrInvalidCoordinate indica linha ou coluna negativa em uma edição
var ErrInvalidCoordinate = errors.New("coordenada de célula inválida")

// Document é a planilha mensal de um cliente
type Document struct {
	ID           string    `json:"id"`
	ClientID     int       `json:"client_id"`
	Month        Month     `json:"month"`
	Year         int       `json:"year"`
	Headers      []string  `json:"headers"`
	BaseGrid     Grid      `json:"base_grid"`
	Overrides    Overrides `json:"-"`
	LastModified time.Time `json:"last_modified"`
	UploadedAt   time.Time `json:"uploaded_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewDocument cria um documento com o cabeçalho canônico e a grade vazia padrão
func NewDocument(clientID int, month Month, year int) *Document {
	headers := make([]string, len(CanonicalHeaders))
	copy(headers, CanonicalHeaders)

	return &Document{
		ClientID:  clientID,
		Month:     month,
		Year:      year,
		Headers:   headers,
		BaseGrid:  NewEmptyGrid(DefaultGridRows, DefaultGridCols),
		Overrides: NewOverrides(),
	}
}

// Merged retorna a grade efetiva do documento
func (d *Document) Merged() Grid {
	return Merge(d.BaseGrid, d.Overrides)
}

// MergedDocument é a visão do documento entregue ao cliente
type MergedDocument struct {
	ID            string     `json:"id"`
	ClientID      int        `json:"client_id"`
	Month         Month      `json:"month"`
	Year          int        `json:"year"`
	Headers       []string   `json:"headers"`
	Rows          Grid       `json:"rows"`
	OverrideCount int        `json:"override_count"`
	LastModified  time.Time  `json:"last_modified"`
	UploadedAt    time.Time  `json:"uploaded_at"`
	Edits         []CellEdit `json:"edits,omitempty"`
}

// View monta a visão mesclada do documento
func (d *Document) View() *MergedDocument {
	return &MergedDocument{
		ID:            d.ID,
		ClientID:      d.ClientID,
		Month:         d.Month,
		Year:          d.Year,
		Headers:       d.Headers,
		Rows:          d.Merged(),
		OverrideCount: d.Overrides.Len(),
		LastModified:  d.LastModified,
		UploadedAt:    d.UploadedAt,
	}
}

// DocumentSummary resume um documento para listagens
type DocumentSummary struct {
	ID            string    `json:"id"`
	Month         Month     `json:"month"`
	Year          int       `json:"year"`
	RowCount      int       `json:"row_count"`
	OverrideCount int       `json:"override_count"`
	LastModified  time.Time `json:"last_modified"`
}

// DocumentPatch descreve uma substituição integral de cabeçalho e grade base
type DocumentPatch struct {
	Headers  []string
	BaseGrid Grid
}

// ClientDocumentCount é a quantidade de documentos de um cliente
type ClientDocumentCount struct {
	ClientID  int `json:"client_id"`
	Documents int `json:"documents"`
}

// MonthDocumentCount é a quantidade de documentos de um mês
type MonthDocumentCount struct {
	Month     Month `json:"month"`
	Documents int   `json:"documents"`
}

// DocumentStats é o resumo administrativo do armazenamento
type DocumentStats struct {
	Year     int                   `json:"year"`
	ByClient []ClientDocumentCount `json:"by_client"`
	ByMonth  []MonthDocumentCount  `json:"by_month"`
}

// CellEdit é uma edição de célula enviada pelo cliente
type CellEdit struct {
	Row   int    `json:"row" validate:"min=0"`
	Col   int    `json:"col" validate:"min=0"`
	Value string `json:"value"`
}

// UnmarshalJSON lê value com as mesmas regras de Cell (texto, número, booleano ou null)
func (e *CellEdit) UnmarshalJSON(data []byte) error {
	var raw struct {
		Row   int  `json:"row"`
		Col   int  `json:"col"`
		Value Cell `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = CellEdit{Row: raw.Row, Col: raw.Col, Value: raw.Value.String()}
	return nil
}

type cellKey struct {
	row int
	col int
}

// Overrides guarda os valores digitados pelo usuário por coordenada,
// no máximo um por (linha, coluna).
type Overrides struct {
	cells map[cellKey]string
}

// NewOverrides cria um conjunto vazio
func NewOverrides() Overrides {
	return Overrides{cells: make(map[cellKey]string)}
}

// OverridesFrom cria o conjunto a partir de edições, aplicadas em ordem
func OverridesFrom(edits []CellEdit) (Overrides, error) {
	o := NewOverrides()
	err := o.Apply(edits)
	return o, err
}

// Set grava ou substitui o valor de uma coordenada
func (o *Overrides) Set(row, col int, value string) error {
	if row < 0 || col < 0 {
		return ErrInvalidCoordinate
	}
	if o.cells == nil {
		o.cells = make(map[cellKey]string)
	}
	o.cells[cellKey{row: row, col: col}] = value
	return nil
}

// Apply aplica as edições na ordem do slice; a última edição de uma mesma
// célula prevalece. Em caso de erro as edições anteriores permanecem aplicadas.
func (o *Overrides) Apply(edits []CellEdit) error {
	for _, edit := range edits {
		if err := o.Set(edit.Row, edit.Col, edit.Value); err != nil {
			return err
		}
	}
	return nil
}

// Get retorna o valor de uma coordenada e se ele existe
func (o Overrides) Get(row, col int) (string, bool) {
	value, ok := o.cells[cellKey{row: row, col: col}]
	return value, ok
}

// Len retorna a quantidade de coordenadas sobrescritas
func (o Overrides) Len() int {
	return len(o.cells)
}

// Edits retorna as sobrescritas ordenadas por linha e coluna
func (o Overrides) Edits() []CellEdit {
	edits := make([]CellEdit, 0, len(o.cells))
	for key, value := range o.cells {
		edits = append(edits, CellEdit{Row: key.row, Col: key.col, Value: value})
	}

	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Row != edits[j].Row {
			return edits[i].Row < edits[j].Row
		}
		return edits[i].Col < edits[j].Col
	})

	return edits
}

// Merge sobrepõe as sobrescritas à grade base. A grade base não é alterada e
// a saída tem sempre as mesmas dimensões dela.
func Merge(base Grid, overrides Overrides) Grid {
	out := base.Clone()
	if overrides.Len() == 0 {
		return out
	}

	for i, row := range out {
		for j := range row {
			if value, ok := overrides.Get(i, j); ok {
				row[j] = TextCell(value)
			}
		}
	}

	return out
}

// Sheet é uma aba de planilha exportada
type Sheet struct {
	Name    string
	Headers []string
	Rows    Grid
}
