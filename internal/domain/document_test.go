package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrides_Set(t *testing.T) {
	o := NewOverrides()

	require.NoError(t, o.Set(2, 3, "X"))
	require.NoError(t, o.Set(2, 3, "Y"))

	value, ok := o.Get(2, 3)
	assert.True(t, ok)
	assert.Equal(t, "Y", value)
	assert.Equal(t, 1, o.Len(), "a mesma coordenada nunca pode aparecer duas vezes")

	_, ok = o.Get(0, 0)
	assert.False(t, ok)

	assert.ErrorIs(t, o.Set(-1, 0, "Z"), ErrInvalidCoordinate)
}

func TestOverrides_Apply(t *testing.T) {
	tests := []struct {
		name    string
		edits   []CellEdit
		want    []CellEdit
		wantErr bool
	}{
		{
			name:  "Última edição do lote prevalece",
			edits: []CellEdit{{Row: 0, Col: 0, Value: "A"}, {Row: 0, Col: 0, Value: "B"}},
			want:  []CellEdit{{Row: 0, Col: 0, Value: "B"}},
		},
		{
			name:  "Edições em células distintas ficam ordenadas",
			edits: []CellEdit{{Row: 3, Col: 1, Value: "c"}, {Row: 0, Col: 5, Value: "a"}, {Row: 0, Col: 2, Value: "b"}},
			want:  []CellEdit{{Row: 0, Col: 2, Value: "b"}, {Row: 0, Col: 5, Value: "a"}, {Row: 3, Col: 1, Value: "c"}},
		},
		{
			name:    "Coordenada inválida interrompe o lote mantendo as anteriores",
			edits:   []CellEdit{{Row: 1, Col: 1, Value: "ok"}, {Row: -1, Col: 0, Value: "x"}, {Row: 2, Col: 2, Value: "nunca"}},
			want:    []CellEdit{{Row: 1, Col: 1, Value: "ok"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOverrides()
			err := o.Apply(tt.edits)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, o.Edits())
		})
	}
}

func TestMerge(t *testing.T) {
	base := NewEmptyGrid(4, 5)
	base[2][3] = TextCell("X")
	base[1][1] = TextCell("base")

	overrides, err := OverridesFrom([]CellEdit{
		{Row: 2, Col: 3, Value: "Y"},
		{Row: 1, Col: 1, Value: ""},
		{Row: 10, Col: 10, Value: "fora"},
	})
	require.NoError(t, err)

	first := Merge(base, overrides)
	second := Merge(base, overrides)

	assert.Equal(t, first, second, "merge deve ser determinístico")
	assert.Equal(t, "Y", first[2][3].String())
	assert.True(t, first[1][1].IsEmpty(), "sobrescrita vazia limpa a célula")
	assert.Len(t, first, 4)
	for _, row := range first {
		assert.Len(t, row, 5)
	}

	assert.Equal(t, "X", base[2][3].String(), "a grade base não pode ser alterada")
	assert.Equal(t, "base", base[1][1].String())
}

func TestMerge_WithoutOverrides(t *testing.T) {
	base := GridFromStrings([][]string{{"a", "b"}, {"c", "d"}})

	merged := Merge(base, NewOverrides())
	merged[0][0] = TextCell("z")

	assert.Equal(t, "a", base[0][0].String())
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(7, March, 2026)

	assert.Equal(t, CanonicalHeaders, doc.Headers)
	assert.Len(t, doc.BaseGrid, DefaultGridRows)
	for _, row := range doc.BaseGrid {
		assert.Len(t, row, DefaultGridCols)
	}
	assert.Equal(t, 0, doc.Overrides.Len())
}

func TestGrid_Normalize(t *testing.T) {
	grid := GridFromStrings([][]string{{"a"}, {"a", "b", "c", "d"}})

	out := grid.Normalize(3)

	assert.Equal(t, [][]string{{"a", "", ""}, {"a", "b", "c"}}, out.Strings())
	assert.Len(t, grid[1], 4)
}

func TestCell_JSON(t *testing.T) {
	var row Row
	require.NoError(t, json.Unmarshal([]byte(`["texto", null, 1500.5, true, ""]`), &row))

	assert.Equal(t, "texto", row[0].String())
	assert.True(t, row[1].IsEmpty())
	assert.Equal(t, "1500.5", row[2].String())
	assert.Equal(t, "true", row[3].String())
	assert.True(t, row[4].IsEmpty())

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `["texto", null, "1500.5", "true", null]`, string(out))
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("marzo")
	require.NoError(t, err)
	assert.Equal(t, March, month)
	assert.Equal(t, 2, month.Index())

	_, err = ParseMonth("marzo 2026")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestMatchProduct(t *testing.T) {
	product, ok := MatchProduct("PRÉSTAMO PERSONAL")
	assert.True(t, ok)
	assert.Equal(t, "Préstamo personal", product)

	_, ok = MatchProduct("Tarjeta")
	assert.False(t, ok)
}

func TestCellEdit_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want CellEdit
	}{
		{body: `{"row":1,"col":6,"value":"1500"}`, want: CellEdit{Row: 1, Col: 6, Value: "1500"}},
		{body: `{"row":1,"col":6,"value":100}`, want: CellEdit{Row: 1, Col: 6, Value: "100"}},
		{body: `{"row":1,"col":6,"value":12.5}`, want: CellEdit{Row: 1, Col: 6, Value: "12.5"}},
		{body: `{"row":0,"col":9,"value":true}`, want: CellEdit{Row: 0, Col: 9, Value: "true"}},
		{body: `{"row":3,"col":2,"value":null}`, want: CellEdit{Row: 3, Col: 2, Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var edit CellEdit
			require.NoError(t, json.Unmarshal([]byte(tt.body), &edit))
			assert.Equal(t, tt.want, edit)
		})
	}

	var edits []CellEdit
	require.NoError(t, json.Unmarshal([]byte(`[{"row":0,"col":0,"value":7}]`), &edits))
	assert.Equal(t, "7", edits[0].Value)

	var edit CellEdit
	assert.Error(t, json.Unmarshal([]byte(`{"row":0,"col":0,"value":[1]}`), &edit))
}
