package analyzing

import (
	"fmt"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Ordem fixa dos eventos que antecedem a compra no funil
var funnelEventTypes = []domain.EventType{
	domain.EventVisit,
	domain.EventProductView,
	domain.EventAddToCart,
	domain.EventCheckoutStart,
}

// Funnel monta o funil de conversão do período: quatro contagens de eventos
// seguidas da contagem de compras, com taxas de conversão por etapa.
func (s *Service) Funnel(startDate, endDate time.Time) (*domain.FunnelReport, error) {
	var counts [5]int

	for i, eventType := range funnelEventTypes {
		count, err := s.countEvents(eventType, startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao contar eventos %s: %w", eventType, err)
		}
		counts[i] = count
	}

	purchases, err := s.orderRepo.CountCompleted(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar compras: %w", err)
	}
	counts[4] = purchases

	revenue, err := s.orderRepo.SumRevenue(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar receita: %w", err)
	}

	report := domain.NewFunnelReport(counts, revenue)

	// Drop-off negativo indica contagens inconsistentes na origem
	// (ex.: mais visualizações de produto que visitas registradas)
	for _, step := range report.Steps {
		if step.DropOff < 0 {
			logrus.WithFields(logrus.Fields{
				"step":     step.Name,
				"drop_off": step.DropOff,
			}).Debug("Funil com drop-off negativo; dados de origem inconsistentes")
		}
	}

	return report, nil
}
