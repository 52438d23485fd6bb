package domain

import (
	"math"

	"github.com/vfg2006/exterior-marketing/pkg/utils"
)

// CalculateROI calcula o retorno sobre o investimento em porcentagem.
// Com custo zero o resultado é 0.
func CalculateROI(totalSales, marketingCost int64) float64 {
	if marketingCost == 0 {
		return 0
	}

	roi := (float64(totalSales-marketingCost) / float64(marketingCost)) * 100
	return utils.RoundWithTwoDecimalPlace(roi)
}

// CalculatePlatformRates calcula as taxas de engajamento, clique e conversão
// e o custo por lead de uma plataforma. Todo denominador zero resulta em 0.
// budget é o investimento fictício atribuído a cada plataforma.
func CalculatePlatformRates(metrics PlatformMetrics, budget int64) PlatformRates {
	return PlatformRates{
		EngagementRate: percentage(metrics.Engagements, metrics.Impressions),
		ClickRate:      percentage(metrics.Clicks, metrics.Engagements),
		ConversionRate: percentage(metrics.Leads, metrics.Clicks),
		CostPerLead:    costPerLead(budget, metrics.Leads),
	}
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(part) / float64(whole) * 100)
}

func costPerLead(budget int64, leads int) int64 {
	if leads == 0 {
		return 0
	}
	return int64(math.RoundToEven(float64(budget) / float64(leads)))
}
