package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Valores padrão para pedidos sem metadados de atribuição
const (
	DefaultSource = "direct"
	DefaultMedium = "none"
)

// Quantidade máxima de campanhas distintas exibidas por canal
const MaxCampaignsPerChannel = 3

// AttributionOrder é um pedido concluído com seu blob de atribuição bruto
type AttributionOrder struct {
	OrderID     int       `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	CustomerID  int       `json:"customer_id"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
	RawMeta     []byte    `json:"-"`
}

// OrderAttribution é o resultado do parse dos metadados de um pedido.
// Degraded indica que o JSON estava malformado e os valores padrão foram
// aplicados (qualidade de dados, nunca erro fatal).
type OrderAttribution struct {
	Source   string `json:"utm_source"`
	Medium   string `json:"utm_medium"`
	Campaign string `json:"utm_campaign"`
	Degraded bool   `json:"-"`
}

// ParseAttribution interpreta o blob JSON de atribuição de um pedido.
// Metadados ausentes ou malformados degradam para os valores padrão.
func ParseAttribution(raw []byte) OrderAttribution {
	attribution := OrderAttribution{
		Source: DefaultSource,
		Medium: DefaultMedium,
	}

	if len(raw) == 0 {
		return attribution
	}

	parsed := struct {
		Source   string `json:"utm_source"`
		Medium   string `json:"utm_medium"`
		Campaign string `json:"utm_campaign"`
	}{}

	if err := json.Unmarshal(raw, &parsed); err != nil {
		attribution.Degraded = true
		return attribution
	}

	if parsed.Source != "" {
		attribution.Source = parsed.Source
	}
	if parsed.Medium != "" {
		attribution.Medium = parsed.Medium
	}
	attribution.Campaign = parsed.Campaign

	return attribution
}

// AttributionChannel agrega pedidos e receita por (utm_source, utm_medium)
type AttributionChannel struct {
	Source            string   `json:"source"`
	Medium            string   `json:"medium"`
	Campaigns         []string `json:"campaigns"`
	Orders            int      `json:"orders"`
	Revenue           float64  `json:"revenue"`
	RevenuePercentage float64  `json:"revenue_percentage"`
	AvgOrderValue     float64  `json:"avg_order_value"`
}

// CampaignsLabel retorna as campanhas do canal unidas por vírgula para exibição
func (c *AttributionChannel) CampaignsLabel() string {
	label := ""
	for i, campaign := range c.Campaigns {
		if i > 0 {
			label += ", "
		}
		label += campaign
	}
	return label
}

// AttributionReport é o resultado da análise de atribuição de um período
type AttributionReport struct {
	Channels       []*AttributionChannel `json:"channels"`
	TotalOrders    int                   `json:"total_orders"`
	TotalRevenue   float64               `json:"total_revenue"`
	DegradedOrders int                   `json:"degraded_orders"` // Pedidos com metadados malformados
}

// ChannelRevenueItem é a projeção de um canal para gráficos de receita
type ChannelRevenueItem struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Orders     int     `json:"orders"`
	Percentage float64 `json:"percentage"`
}

// ChannelLabel formata o rótulo "source (medium)" usado na projeção de receita
func ChannelLabel(source, medium string) string {
	return fmt.Sprintf("%s (%s)", source, medium)
}

// JourneyEvent é um evento da jornada de um cliente até a compra
type JourneyEvent struct {
	Type        string  `json:"type"`
	Source      string  `json:"source,omitempty"`
	Medium      string  `json:"medium,omitempty"`
	Campaign    string  `json:"campaign,omitempty"`
	OrderNumber string  `json:"order_number,omitempty"`
	Total       float64 `json:"total,omitempty"`
}

// CustomerJourney é a sequência de eventos reconstituída para um pedido
type CustomerJourney struct {
	OrderID int            `json:"order_id"`
	Events  []JourneyEvent `json:"events"`
}
