package domain

import (
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
)

// CampaignCost é uma entrada do feed externo de custos de campanha
type CampaignCost struct {
	Source string  `json:"source"`
	Medium string  `json:"medium"`
	Name   string  `json:"name"`
	Cost   float64 `json:"cost"`
}

// ROIEntry é o cruzamento de um canal de atribuição com o custo de campanha
type ROIEntry struct {
	Channel            string  `json:"channel"`
	Campaign           string  `json:"campaign"`
	Revenue            float64 `json:"revenue"`
	Cost               float64 `json:"cost"`
	Profit             float64 `json:"profit"`
	ROIPercentage      float64 `json:"roi_percentage"`
	ROAS               float64 `json:"roas"`
	Orders             int     `json:"orders"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
}

// NewROIEntry calcula as métricas de retorno de um canal. Custo zero ou
// pedidos zero resultam em métricas zeradas, nunca em divisão por zero.
func NewROIEntry(channel *AttributionChannel, cost CampaignCost) *ROIEntry {
	entry := &ROIEntry{
		Channel:  ChannelLabel(channel.Source, channel.Medium),
		Campaign: cost.Name,
		Revenue:  channel.Revenue,
		Cost:     cost.Cost,
		Profit:   channel.Revenue - cost.Cost,
		Orders:   channel.Orders,
	}

	if cost.Cost > 0 {
		entry.ROIPercentage = utils.RoundWithTwoDecimalPlace((channel.Revenue - cost.Cost) / cost.Cost * 100)
		entry.ROAS = utils.RoundWithTwoDecimalPlace(channel.Revenue / cost.Cost)
	}

	if channel.Orders > 0 {
		entry.CostPerAcquisition = utils.RoundWithTwoDecimalPlace(cost.Cost / float64(channel.Orders))
	}

	return entry
}

// ROISummary totaliza as entradas de um relatório de ROI
type ROISummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	TotalProfit  float64 `json:"total_profit"`
	TotalOrders  int     `json:"total_orders"`
}

// ROIReport é o relatório de retorno sobre investimento por canal
type ROIReport struct {
	Entries []*ROIEntry `json:"entries"`
	Summary ROISummary  `json:"summary"`
}
