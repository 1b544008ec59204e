package summarizing

import (
	"strings"
	"unicode"

	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ColumnMap liga cada papel da planilha ao índice da coluna
type ColumnMap struct {
	Date       int
	Month      int
	Identifier int
	Name       int
	Phone      int
	Product    int
	Amount     int
	Rate       int
	Place      int
	Remark     int
	Profit     int
}

// DefaultColumnMap segue a ordem do cabeçalho canônico
var DefaultColumnMap = ColumnMap{
	Date:       0,
	Month:      1,
	Identifier: 2,
	Name:       3,
	Phone:      4,
	Product:    5,
	Amount:     6,
	Rate:       7,
	Place:      8,
	Remark:     9,
	Profit:     10,
}

var headerAliases = map[string][]string{
	"date":       {"fecha"},
	"month":      {"mes"},
	"identifier": {"dni", "documento", "identificacion"},
	"name":       {"nombre", "cliente"},
	"phone":      {"celular", "telefono"},
	"product":    {"producto"},
	"amount":     {"monto", "importe"},
	"rate":       {"tasa", "interes"},
	"place":      {"lugar"},
	"remark":     {"obs", "observacion", "observaciones", "estado"},
	"profit":     {"ganancias", "ganancia", "utilidad"},
}

// ColumnMapFromHeaders resolve os papéis pelo nome do cabeçalho, sem
// diferenciar maiúsculas nem acentos. Papéis não encontrados ficam na
// posição padrão, desde que nenhum outro papel já ocupe aquela coluna;
// caso contrário ficam sem coluna (-1).
func ColumnMapFromHeaders(headers []string) ColumnMap {
	m := DefaultColumnMap
	if len(headers) == 0 {
		return m
	}

	index := make(map[string]int, len(headers))
	for i, header := range headers {
		key := normalizeHeader(header)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	roles := []struct {
		name  string
		field *int
	}{
		{"date", &m.Date},
		{"month", &m.Month},
		{"identifier", &m.Identifier},
		{"name", &m.Name},
		{"phone", &m.Phone},
		{"product", &m.Product},
		{"amount", &m.Amount},
		{"rate", &m.Rate},
		{"place", &m.Place},
		{"remark", &m.Remark},
		{"profit", &m.Profit},
	}

	claimed := make(map[int]bool, len(roles))
	unresolved := roles[:0:0]
	for _, role := range roles {
		found := false
		for _, alias := range headerAliases[role.name] {
			if i, ok := index[alias]; ok && !claimed[i] {
				*role.field = i
				claimed[i] = true
				found = true
				break
			}
		}
		if !found {
			unresolved = append(unresolved, role)
		}
	}

	for _, role := range unresolved {
		fallback := *role.field
		if claimed[fallback] {
			*role.field = -1
			continue
		}
		claimed[fallback] = true
	}

	return m
}

func normalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// LoanEntry é uma linha da planilha com os campos nomeados
type LoanEntry struct {
	Date       string
	Month      string
	Identifier string
	Name       string
	Phone      string
	Product    string
	Amount     string
	Rate       string
	Place      string
	Remark     string
	Profit     string
}

// IsPopulated informa se a linha tem identificador preenchido
func (e LoanEntry) IsPopulated() bool {
	return strings.TrimSpace(e.Identifier) != ""
}

// Entry projeta uma linha da grade no registro nomeado
func (m ColumnMap) Entry(row domain.Row) LoanEntry {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i].String()
	}

	return LoanEntry{
		Date:       cell(m.Date),
		Month:      cell(m.Month),
		Identifier: cell(m.Identifier),
		Name:       cell(m.Name),
		Phone:      cell(m.Phone),
		Product:    cell(m.Product),
		Amount:     cell(m.Amount),
		Rate:       cell(m.Rate),
		Place:      cell(m.Place),
		Remark:     cell(m.Remark),
		Profit:     cell(m.Profit),
	}
}
