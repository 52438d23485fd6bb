package domain

// PlatformMetrics são os números brutos de uma rede social.
// Espera-se Engagements <= Impressions, Clicks <= Engagements e Leads <= Clicks,
// mas o cálculo das taxas não depende disso.
type PlatformMetrics struct {
	Name        string `json:"name"`
	Posts       int    `json:"posts"`
	Impressions int    `json:"impressions"`
	Engagements int    `json:"engagements"`
	Clicks      int    `json:"clicks"`
	Leads       int    `json:"leads"`
}

// PlatformRates são as taxas derivadas de PlatformMetrics
type PlatformRates struct {
	EngagementRate float64 `json:"engagement_rate"`
	ClickRate      float64 `json:"click_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	CostPerLead    int64   `json:"cost_per_lead"`
}

// PlatformPerformance combina números brutos e taxas de uma plataforma
type PlatformPerformance struct {
	Metrics PlatformMetrics `json:"metrics"`
	Rates   PlatformRates   `json:"rates"`
}

// SamplePlatformMetrics retorna os números fixos de SNS usados no dashboard de demonstração
func SamplePlatformMetrics() []PlatformMetrics {
	return []PlatformMetrics{
		{Name: "Instagram", Posts: 25, Impressions: 45000, Engagements: 2250, Clicks: 450, Leads: 15},
		{Name: "Facebook", Posts: 20, Impressions: 28000, Engagements: 1120, Clicks: 336, Leads: 12},
		{Name: "Twitter", Posts: 30, Impressions: 15000, Engagements: 450, Clicks: 90, Leads: 3},
	}
}

// TotalReach soma as impressões de todas as plataformas
func TotalReach(platforms []PlatformMetrics) int {
	total := 0
	for _, p := range platforms {
		total += p.Impressions
	}
	return total
}
