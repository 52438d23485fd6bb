package domain

import "time"

// SampleData são os dados fabricados que alimentam o dashboard
type SampleData struct {
	PeriodStart   time.Time         `json:"period_start"`
	Sales         []SaleRecord      `json:"sales"`
	Platforms     []PlatformMetrics `json:"platforms"`
	MarketingCost int64             `json:"marketing_cost"`
}

// DashboardReport é tudo o que o renderizador precisa para montar o relatório
type DashboardReport struct {
	PeriodStart      time.Time             `json:"period_start"`
	PeriodEnd        time.Time             `json:"period_end"`
	GeneratedAt      time.Time             `json:"generated_at"`
	Sales            []SaleRecord          `json:"sales"`
	SalesByChannel   map[string]int64      `json:"sales_by_channel"`
	TotalSales       int64                 `json:"total_sales"`
	MarketingCost    int64                 `json:"marketing_cost"`
	ROI              float64               `json:"roi"`
	Contracts        int                   `json:"contracts"`
	TotalReach       int                   `json:"total_reach"`
	Platforms        []PlatformPerformance `json:"platforms"`
	OptimalPostTimes []string              `json:"optimal_post_times"`
	Journey          []JourneyStep         `json:"journey"`
}

// DashboardRun é o resumo persistido de cada dashboard gerado
type DashboardRun struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	TotalSales  int64     `json:"total_sales"`
	ROI         float64   `json:"roi"`
	Contracts   int       `json:"contracts"`
	TotalReach  int       `json:"total_reach"`
	OutputPath  string    `json:"output_path"`
}

// Summary converte o relatório no resumo que é persistido
func (r *DashboardReport) Summary(id, outputPath string) *DashboardRun {
	return &DashboardRun{
		ID:          id,
		GeneratedAt: r.GeneratedAt,
		TotalSales:  r.TotalSales,
		ROI:         r.ROI,
		Contracts:   r.Contracts,
		TotalReach:  r.TotalReach,
		OutputPath:  outputPath,
	}
}
