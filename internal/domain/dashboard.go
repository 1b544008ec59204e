package domain

// MonthBucket é o agregado de um mês
type MonthBucket struct {
	Month   Month   `json:"mes"`
	Clients int     `json:"clientes"`
	Amount  float64 `json:"monto"`
	Profit  float64 `json:"ganancias"`
	AvgRate float64 `json:"tasaPromedio"`
}

// ProductBucket é o agregado de um produto do catálogo
type ProductBucket struct {
	Product string  `json:"producto"`
	Clients int     `json:"clientes"`
	Amount  float64 `json:"monto"`
	Profit  float64 `json:"ganancias"`
}

// DayBucket é o agregado de um dia do mês
type DayBucket struct {
	Day     string  `json:"dia"`
	Clients int     `json:"clientes"`
	Amount  float64 `json:"monto"`
	Profit  float64 `json:"ganancias"`
}

// Summary são os totais do painel
type Summary struct {
	TotalClients        int     `json:"totalClients"`
	TotalAmount         float64 `json:"totalAmount"`
	WeightedAverageRate float64 `json:"weightedAverageRate"`
	TotalProfit         float64 `json:"totalProfit"`
}

// Aggregation é o resultado completo do motor de agregação
type Aggregation struct {
	Summary
	ByMonth   []MonthBucket   `json:"byMonth"`
	ByProduct []ProductBucket `json:"byProduct"`
	ByDay     []DayBucket     `json:"byDay"`
}

// DashboardScope identifica o conjunto de documentos agregados
type DashboardScope struct {
	ClientID *int
	Year     int
}
