package analyzing

import (
	"fmt"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Attribution agrupa os pedidos concluídos do período por canal
// (utm_source, utm_medium). Metadados malformados degradam o pedido para o
// canal padrão e são contabilizados como sinal de qualidade de dados; o
// relatório nunca falha por causa deles.
func (s *Service) Attribution(startDate, endDate time.Time) (*domain.AttributionReport, error) {
	orders, err := s.orderRepo.ListWithAttribution(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos com atribuição: %w", err)
	}

	report := &domain.AttributionReport{
		Channels: make([]*domain.AttributionChannel, 0),
	}

	channelsByKey := make(map[string]*domain.AttributionChannel)

	for _, order := range orders {
		attribution := domain.ParseAttribution(order.RawMeta)
		if attribution.Degraded {
			report.DegradedOrders++
			logrus.WithField("order_id", order.OrderID).Warn("Metadados de atribuição malformados; usando canal padrão")
		}

		key := attribution.Source + "|" + attribution.Medium

		channel, ok := channelsByKey[key]
		if !ok {
			channel = &domain.AttributionChannel{
				Source:    attribution.Source,
				Medium:    attribution.Medium,
				Campaigns: make([]string, 0, domain.MaxCampaignsPerChannel),
			}
			channelsByKey[key] = channel
			report.Channels = append(report.Channels, channel)
		}

		channel.Orders++
		channel.Revenue += order.Total
		report.TotalOrders++
		report.TotalRevenue += order.Total

		appendCampaign(channel, attribution.Campaign)
	}

	// Percentuais e ticket médio só depois do agrupamento completo
	for _, channel := range report.Channels {
		channel.RevenuePercentage = utils.SafePercentage(channel.Revenue, report.TotalRevenue)
		if channel.Orders > 0 {
			channel.AvgOrderValue = utils.RoundWithTwoDecimalPlace(channel.Revenue / float64(channel.Orders))
		}
	}

	return report, nil
}

// appendCampaign guarda no máximo MaxCampaignsPerChannel nomes distintos
func appendCampaign(channel *domain.AttributionChannel, campaign string) {
	if campaign == "" || len(channel.Campaigns) >= domain.MaxCampaignsPerChannel {
		return
	}

	for _, existing := range channel.Campaigns {
		if existing == campaign {
			return
		}
	}

	channel.Campaigns = append(channel.Campaigns, campaign)
}

// ChannelRevenue projeta o relatório de atribuição para gráficos de receita
func (s *Service) ChannelRevenue(startDate, endDate time.Time) ([]*domain.ChannelRevenueItem, error) {
	attribution, err := s.Attribution(startDate, endDate)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.ChannelRevenueItem, 0, len(attribution.Channels))
	for _, channel := range attribution.Channels {
		items = append(items, &domain.ChannelRevenueItem{
			Label:      domain.ChannelLabel(channel.Source, channel.Medium),
			Value:      channel.Revenue,
			Orders:     channel.Orders,
			Percentage: channel.RevenuePercentage,
		})
	}

	return items, nil
}

// CustomerJourney reconstitui a jornada de um pedido: primeira visita
// atribuída seguida do evento sintético de compra. Pedido ou metadados
// ausentes resultam em lista vazia, não em erro.
func (s *Service) CustomerJourney(orderID int) (*domain.CustomerJourney, error) {
	journey := &domain.CustomerJourney{
		OrderID: orderID,
		Events:  make([]domain.JourneyEvent, 0),
	}

	if orderID == 0 {
		return journey, nil
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Error("Erro ao buscar pedido para jornada do cliente")
		return journey, nil
	}

	if order == nil || len(order.RawMeta) == 0 {
		return journey, nil
	}

	attribution := domain.ParseAttribution(order.RawMeta)
	if attribution.Degraded {
		logrus.WithField("order_id", orderID).Warn("Metadados de atribuição malformados na jornada do cliente")
		return journey, nil
	}

	journey.Events = append(journey.Events,
		domain.JourneyEvent{
			Type:     "first_visit",
			Source:   attribution.Source,
			Medium:   attribution.Medium,
			Campaign: attribution.Campaign,
		},
		domain.JourneyEvent{
			Type:        "purchase",
			OrderNumber: order.OrderNumber,
			Total:       order.Total,
		},
	)

	return journey, nil
}
