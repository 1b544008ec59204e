package summarizing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

// MonthGrid é uma grade já mesclada, marcada com o mês de origem
type MonthGrid struct {
	Month   string
	Headers []string
	Rows    domain.Grid
}

// GridFromDocument monta a entrada do agregador a partir de um documento
func GridFromDocument(doc *domain.Document) MonthGrid {
	return MonthGrid{
		Month:   string(doc.Month),
		Headers: doc.Headers,
		Rows:    doc.Merged(),
	}
}

// Estrutura para acumular totais em precisão total; o arredondamento
// acontece apenas na montagem do resultado
type accumulator struct {
	clients      int
	amount       decimal.Decimal
	profit       decimal.Decimal
	rateByAmount decimal.Decimal
	rateWeight   decimal.Decimal
}

func (a *accumulator) add(entry LoanEntry) {
	amount, amountOK := ParseAmount(entry.Amount)
	rate, rateOK := ParseAmount(entry.Rate)
	profit := ParseAmountOrZero(entry.Profit)

	a.clients++
	a.amount = a.amount.Add(amount)
	a.profit = a.profit.Add(profit)

	if amountOK && rateOK {
		a.rateByAmount = a.rateByAmount.Add(rate.Mul(amount))
		a.rateWeight = a.rateWeight.Add(amount)
	}
}

func (a *accumulator) weightedRate() decimal.Decimal {
	if a.rateWeight.IsZero() {
		return decimal.Zero
	}
	return a.rateByAmount.Div(a.rateWeight)
}

func round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Aggregate calcula os totais e agrupamentos das linhas preenchidas.
// É uma função pura: as mesmas entradas produzem sempre o mesmo resultado.
func Aggregate(grids []MonthGrid) domain.Aggregation {
	var total accumulator
	months := make([]accumulator, len(domain.Months))
	products := make([]accumulator, len(domain.Products))
	days := make(map[string]*accumulator)

	for _, grid := range grids {
		columns := ColumnMapFromHeaders(grid.Headers)

		monthIdx := -1
		if month, err := domain.ParseMonth(grid.Month); err == nil {
			monthIdx = month.Index()
		}

		for _, row := range grid.Rows {
			entry := columns.Entry(row)
			if !entry.IsPopulated() {
				continue
			}

			total.add(entry)

			if monthIdx >= 0 {
				months[monthIdx].add(entry)
			}

			if idx := productIndex(entry.Product); idx >= 0 {
				products[idx].add(entry)
			}

			key := dayKey(entry.Date)
			acc, ok := days[key]
			if !ok {
				acc = &accumulator{}
				days[key] = acc
			}
			acc.add(entry)
		}
	}

	return domain.Aggregation{
		Summary:   summaryOf(&total),
		ByMonth:   monthBuckets(months),
		ByProduct: productBuckets(products),
		ByDay:     dayBuckets(days),
	}
}

func summaryOf(acc *accumulator) domain.Summary {
	return domain.Summary{
		TotalClients:        acc.clients,
		TotalAmount:         round(acc.amount),
		WeightedAverageRate: round(acc.weightedRate()),
		TotalProfit:         round(acc.profit),
	}
}

func monthBuckets(months []accumulator) []domain.MonthBucket {
	out := make([]domain.MonthBucket, len(domain.Months))
	for i, month := range domain.Months {
		out[i] = domain.MonthBucket{
			Month:   month,
			Clients: months[i].clients,
			Amount:  round(months[i].amount),
			Profit:  round(months[i].profit),
			AvgRate: round(months[i].weightedRate()),
		}
	}
	return out
}

func productBuckets(products []accumulator) []domain.ProductBucket {
	out := make([]domain.ProductBucket, len(domain.Products))
	for i, product := range domain.Products {
		out[i] = domain.ProductBucket{
			Product: product,
			Clients: products[i].clients,
			Amount:  round(products[i].amount),
			Profit:  round(products[i].profit),
		}
	}
	return out
}

func dayBuckets(days map[string]*accumulator) []domain.DayBucket {
	out := make([]domain.DayBucket, 0, len(days))
	for key, acc := range days {
		out = append(out, domain.DayBucket{
			Day:     key,
			Clients: acc.clients,
			Amount:  round(acc.amount),
			Profit:  round(acc.profit),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return dayLess(out[i].Day, out[j].Day)
	})

	return out
}

func productIndex(product string) int {
	name, ok := domain.MatchProduct(product)
	if !ok {
		return -1
	}
	for i, p := range domain.Products {
		if p == name {
			return i
		}
	}
	return -1
}

// dayKey extrai o dia de uma data YYYY-MM-DD; se a data não tiver três
// partes, o valor bruto é usado como chave
func dayKey(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) < 3 {
		return date
	}
	return strings.TrimSpace(parts[2])
}

// dayLess ordena chaves numéricas em ordem crescente; chaves não numéricas
// ficam no fim em ordem lexical
func dayLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
