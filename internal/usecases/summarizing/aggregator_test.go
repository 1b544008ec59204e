package summarizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

func canonicalHeaders() []string {
	headers := make([]string, len(domain.CanonicalHeaders))
	copy(headers, domain.CanonicalHeaders)
	return headers
}

func TestAggregate_SingleRow(t *testing.T) {
	grid := MonthGrid{
		Month:   "marzo",
		Headers: canonicalHeaders(),
		Rows: domain.GridFromStrings([][]string{
			{"2026-03-05", "marzo 2026", "123", "Juan", "999", "Préstamo personal", "1.000", "15", "Lima", "Pendiente", "150"},
			{"", "", "", "", "", "", "", "", "", "", ""},
		}),
	}

	result := Aggregate([]MonthGrid{grid})

	assert.Equal(t, 1, result.TotalClients)
	assert.Equal(t, 1000.0, result.TotalAmount)
	assert.Equal(t, 15.0, result.WeightedAverageRate)
	assert.Equal(t, 150.0, result.TotalProfit)

	require.Len(t, result.ByMonth, 12)
	assert.Equal(t, domain.March, result.ByMonth[2].Month)
	assert.Equal(t, 1, result.ByMonth[2].Clients)
	assert.Equal(t, 1000.0, result.ByMonth[2].Amount)
	assert.Equal(t, 15.0, result.ByMonth[2].AvgRate)
	assert.Equal(t, 0, result.ByMonth[0].Clients)

	require.Len(t, result.ByProduct, 6)
	assert.Equal(t, "Préstamo personal", result.ByProduct[0].Product)
	assert.Equal(t, 1, result.ByProduct[0].Clients)
	assert.Equal(t, 1000.0, result.ByProduct[0].Amount)

	require.Len(t, result.ByDay, 1)
	assert.Equal(t, domain.DayBucket{Day: "05", Clients: 1, Amount: 1000, Profit: 150}, result.ByDay[0])
}

func TestAggregate_WeightedAverageRate(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want float64
	}{
		{
			name: "Taxa ponderada pelo valor",
			rows: [][]string{
				{"2026-01-02", "", "1", "", "", "", "1000", "10", "", "", ""},
				{"2026-01-03", "", "2", "", "", "", "3000", "20", "", "", ""},
			},
			want: 17.5,
		},
		{
			name: "Sem taxa informada o resultado é zero",
			rows: [][]string{
				{"2026-01-02", "", "1", "", "", "", "1000", "", "", "", ""},
			},
			want: 0,
		},
		{
			name: "Linhas sem valor não entram no denominador",
			rows: [][]string{
				{"2026-01-02", "", "1", "", "", "", "abc", "50", "", "", ""},
				{"2026-01-03", "", "2", "", "", "", "2000", "12", "", "", ""},
			},
			want: 12,
		},
		{
			name: "Soma dos valores igual a zero",
			rows: [][]string{
				{"2026-01-02", "", "1", "", "", "", "0", "30", "", "", ""},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate([]MonthGrid{{
				Month:   "Enero",
				Headers: canonicalHeaders(),
				Rows:    domain.GridFromStrings(tt.rows),
			}})
			assert.Equal(t, tt.want, result.WeightedAverageRate)
		})
	}
}

func TestAggregate_IgnoresUnpopulatedRows(t *testing.T) {
	result := Aggregate([]MonthGrid{{
		Month:   "Abril",
		Headers: canonicalHeaders(),
		Rows: domain.GridFromStrings([][]string{
			{"2026-04-01", "", "   ", "Sem DNI", "", "", "5000", "10", "", "", "100"},
			{"2026-04-02", "", "77", "Ana", "", "Préstamo vehicular", "2.500", "12", "", "", "300,50"},
		}),
	}})

	assert.Equal(t, 1, result.TotalClients)
	assert.Equal(t, 2500.0, result.TotalAmount)
	assert.Equal(t, 300.5, result.TotalProfit)
	assert.Equal(t, 1, result.ByProduct[2].Clients)
}

func TestAggregate_Empty(t *testing.T) {
	result := Aggregate(nil)

	assert.Equal(t, domain.Summary{}, result.Summary)
	assert.Len(t, result.ByMonth, 12)
	assert.Len(t, result.ByProduct, 6)
	assert.Empty(t, result.ByDay)
}

func TestAggregate_ByDayOrdering(t *testing.T) {
	result := Aggregate([]MonthGrid{{
		Month:   "Mayo",
		Headers: canonicalHeaders(),
		Rows: domain.GridFromStrings([][]string{
			{"2026-05-10", "", "1", "", "", "", "100", "", "", "", ""},
			{"sin fecha", "", "2", "", "", "", "100", "", "", "", ""},
			{"2026-05-02", "", "3", "", "", "", "100", "", "", "", ""},
			{"2026-05-10", "", "4", "", "", "", "50", "", "", "", "5"},
		}),
	}})

	require.Len(t, result.ByDay, 3)
	assert.Equal(t, "02", result.ByDay[0].Day)
	assert.Equal(t, "10", result.ByDay[1].Day)
	assert.Equal(t, 2, result.ByDay[1].Clients)
	assert.Equal(t, 150.0, result.ByDay[1].Amount)
	assert.Equal(t, "sin fecha", result.ByDay[2].Day)
}

func TestAggregate_MultipleMonths(t *testing.T) {
	grids := []MonthGrid{
		{Month: "enero", Headers: canonicalHeaders(), Rows: domain.GridFromStrings([][]string{
			{"2026-01-05", "", "1", "", "", "Préstamo personal", "1000", "10", "", "", "100"},
		})},
		{Month: "DICIEMBRE", Headers: canonicalHeaders(), Rows: domain.GridFromStrings([][]string{
			{"2026-12-05", "", "2", "", "", "Préstamo personal", "1000", "20", "", "", "200"},
		})},
		{Month: "desconocido", Headers: canonicalHeaders(), Rows: domain.GridFromStrings([][]string{
			{"2026-12-06", "", "3", "", "", "Otro", "1000", "30", "", "", "300"},
		})},
	}

	result := Aggregate(grids)

	assert.Equal(t, 3, result.TotalClients)
	assert.Equal(t, 20.0, result.WeightedAverageRate)
	assert.Equal(t, 1, result.ByMonth[0].Clients)
	assert.Equal(t, 1, result.ByMonth[11].Clients)
	assert.Equal(t, 2, result.ByProduct[0].Clients)
	assert.Equal(t, 2000.0, result.ByProduct[0].Amount)
}

func TestAggregate_RoundsAtOutput(t *testing.T) {
	result := Aggregate([]MonthGrid{{
		Month:   "Junio",
		Headers: canonicalHeaders(),
		Rows: domain.GridFromStrings([][]string{
			{"2026-06-01", "", "1", "", "", "", "0.005", "", "", "", "0,333"},
			{"2026-06-01", "", "2", "", "", "", "0.005", "", "", "", "0,333"},
		}),
	}})

	assert.Equal(t, 0.01, result.TotalAmount)
	assert.Equal(t, 0.67, result.TotalProfit)
}
