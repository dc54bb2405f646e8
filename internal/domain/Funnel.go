package domain

import (
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
)

// FunnelStep representa uma etapa do funil de conversão
type FunnelStep struct {
	Name           string  `json:"name"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversion_rate"` // Relativa à etapa anterior, em %
	DropOff        int     `json:"drop_off"`        // Anterior - atual; pode ser negativo se os dados estiverem inconsistentes
}

// FunnelReport representa o funil completo de visitas até compras
type FunnelReport struct {
	Steps                 []FunnelStep `json:"steps"`
	OverallConversionRate float64      `json:"overall_conversion_rate"`
	AverageOrderValue     float64      `json:"average_order_value"`
	TotalRevenue          float64      `json:"total_revenue"`
}

// Nomes das etapas do funil, na ordem fixa de exibição
var FunnelStepNames = []string{"visits", "product_views", "cart_additions", "checkout_starts", "purchases"}

// NewFunnelReport monta o funil a partir das cinco contagens ordenadas e da
// receita total. Divisões por zero resultam em taxa 0; o drop_off não é
// ajustado quando negativo (sinal de inconsistência nos dados de origem).
func NewFunnelReport(counts [5]int, totalRevenue float64) *FunnelReport {
	steps := make([]FunnelStep, 0, len(FunnelStepNames))

	for i, name := range FunnelStepNames {
		step := FunnelStep{
			Name:  name,
			Count: counts[i],
		}

		if i > 0 {
			previous := counts[i-1]
			if previous > 0 {
				step.ConversionRate = utils.RoundWithTwoDecimalPlace(float64(counts[i]) / float64(previous) * 100)
			}
			step.DropOff = previous - counts[i]
		}

		steps = append(steps, step)
	}

	report := &FunnelReport{
		Steps:        steps,
		TotalRevenue: totalRevenue,
	}

	visits := counts[0]
	purchases := counts[4]

	if visits > 0 {
		report.OverallConversionRate = utils.RoundWithTwoDecimalPlace(float64(purchases) / float64(visits) * 100)
	}

	if purchases > 0 {
		report.AverageOrderValue = utils.RoundWithTwoDecimalPlace(totalRevenue / float64(purchases))
	}

	return report
}
