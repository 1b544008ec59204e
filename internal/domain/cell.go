package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cell é o valor de uma célula da grade: texto ou vazio.
// O valor zero é uma célula vazia.
type Cell struct {
	text string
}

// EmptyCell é a célula vazia.
var EmptyCell = Cell{}

// TextCell cria uma célula com texto. Texto vazio resulta em célula vazia.
func TextCell(s string) Cell {
	return Cell{text: s}
}

// String retorna o texto da célula ("" quando vazia)
func (c Cell) String() string {
	return c.text
}

// IsEmpty informa se a célula está vazia
func (c Cell) IsEmpty() bool {
	return c.text == ""
}

// IsBlank informa se a célula está vazia ou contém apenas espaços
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.text) == ""
}

// MarshalJSON codifica célula vazia como null
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(c.text)
}

// UnmarshalJSON aceita string, número, booleano ou null.
// Números e booleanos são convertidos para texto na fronteira.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = EmptyCell
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TextCell(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*c = TextCell(strconv.FormatBool(b))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("valor de célula inválido: %s", data)
		}
		*c = TextCell(n.String())
	}

	return nil
}

// Row é uma linha da grade
type Row []Cell

// Grid é a grade completa de um documento, linha a linha
type Grid []Row

// NewEmptyGrid cria uma grade rows x cols com células vazias
func NewEmptyGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for i := range grid {
		grid[i] = make(Row, cols)
	}
	return grid
}

// GridFromStrings converte linhas de texto em uma grade
func GridFromStrings(rows [][]string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		grid[i] = make(Row, len(row))
		for j, value := range row {
			grid[i][j] = TextCell(value)
		}
	}
	return grid
}

// Strings converte a grade em linhas de texto
func (g Grid) Strings() [][]string {
	out := make([][]string, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.String()
		}
	}
	return out
}

// Clone retorna uma cópia profunda da grade
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}

// Normalize retorna uma cópia da grade com todas as linhas do tamanho width.
// Linhas curtas são completadas com células vazias e linhas longas são truncadas.
func (g Grid) Normalize(width int) Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make(Row, width)
		copy(out[i], row)
	}
	return out
}
