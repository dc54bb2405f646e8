package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ROI cruza os canais de atribuição com o feed de custos de campanha por
// (source, medium) exato. Canais sem custo correspondente entram com custo
// zero e métricas de retorno zeradas. A lista sai ordenada por ROI
// decrescente, preservando a ordem original em empates.
func (s *Service) ROI(startDate, endDate time.Time) (*domain.ROIReport, error) {
	attribution, err := s.Attribution(startDate, endDate)
	if err != nil {
		return nil, err
	}

	costs, err := s.costFeed.ListCosts()
	if err != nil {
		// O feed de custos é auxiliar: sem ele o relatório sai com custos zerados
		logrus.WithError(err).Warn("Erro ao carregar custos de campanha; ROI com custos zerados")
		costs = []domain.CampaignCost{}
	}

	costsByChannel := make(map[string]domain.CampaignCost, len(costs))
	for _, cost := range costs {
		costsByChannel[cost.Source+"|"+cost.Medium] = cost
	}

	report := &domain.ROIReport{
		Entries: make([]*domain.ROIEntry, 0, len(attribution.Channels)),
	}

	for _, channel := range attribution.Channels {
		cost := costsByChannel[channel.Source+"|"+channel.Medium]

		entry := domain.NewROIEntry(channel, cost)
		report.Entries = append(report.Entries, entry)

		report.Summary.TotalRevenue += entry.Revenue
		report.Summary.TotalCost += entry.Cost
		report.Summary.TotalProfit += entry.Profit
		report.Summary.TotalOrders += entry.Orders
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].ROIPercentage > report.Entries[j].ROIPercentage
	})

	return report, nil
}

// RefreshCosts aciona a atualização do feed externo de custos
func (s *Service) RefreshCosts() (int, error) {
	updated, err := s.costFeed.Refresh()
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar feed de custos: %w", err)
	}
	return updated, nil
}
