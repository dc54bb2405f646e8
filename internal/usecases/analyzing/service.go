package analyzing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/franpass87/esperienze-insights-api/infrastructure/integrator/costfeed"
	"github.com/franpass87/esperienze-insights-api/infrastructure/repository"
	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa o Analyzer sobre os repositórios de eventos e pedidos,
// com cache opcional de resultados.
type Service struct {
	cfg       *config.Config
	eventRepo repository.EventCountRepository
	orderRepo repository.OrderAggregateRepository
	costFeed  costfeed.CostFeed
	cacheRepo repository.AnalyticsCacheRepository
	useCache  bool
}

// NewService cria o agregador sem cache (toda chamada recalcula)
func NewService(
	cfg *config.Config,
	eventRepo repository.EventCountRepository,
	orderRepo repository.OrderAggregateRepository,
	costFeed costfeed.CostFeed,
) *Service {
	return &Service{
		cfg:       cfg,
		eventRepo: eventRepo,
		orderRepo: orderRepo,
		costFeed:  costFeed,
	}
}

// WithCache habilita o cache de resultados de relatórios
func (s *Service) WithCache(cacheRepo repository.AnalyticsCacheRepository) *Service {
	s.cacheRepo = cacheRepo
	s.useCache = cacheRepo != nil
	return s
}

// Compute calcula o relatório pedido, consultando o cache antes. O payload
// cacheado é devolvido byte a byte idêntico ao original. customer_journey
// nunca é cacheado: é consultado ao vivo por pedido.
//
// A garantia de "no máximo um cálculo por janela de cache" é apenas
// indicativa: sem lock, chamadas concorrentes no primeiro acesso podem
// recalcular em duplicidade, o que é inofensivo.
func (s *Service) Compute(kind domain.ReportKind, filters *domain.ReportFilters) (json.RawMessage, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("tipo de relatório desconhecido: %s", kind)
	}

	if filters == nil {
		filters = &domain.ReportFilters{}
	}

	startDate, endDate := utils.DefaultDateRange(filters.StartDate, filters.EndDate)
	if startDate.After(endDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	if kind == domain.ReportKindCustomerJourney {
		journey, err := s.CustomerJourney(filters.OrderID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(journey)
	}

	cacheKey := buildCacheKey(kind, startDate, endDate)

	if s.useCache {
		cached, err := s.cacheRepo.Get(cacheKey)
		if err != nil {
			logrus.WithError(err).WithField("kind", kind).Warn("Erro ao consultar cache de relatórios; recalculando")
		} else if cached != nil {
			logrus.WithFields(logrus.Fields{
				"kind":      kind,
				"cache_key": cacheKey,
			}).Debug("Relatório servido do cache")
			return cached, nil
		}
	}

	result, err := s.computeFresh(kind, startDate, endDate)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	if s.useCache {
		ttl := time.Duration(s.cfg.AnalyticsCache.TTLMinutes) * time.Minute
		if err := s.cacheRepo.Save(cacheKey, payload, ttl); err != nil {
			// Falha de cache não invalida o relatório calculado
			logrus.WithError(err).WithField("kind", kind).Warn("Erro ao salvar relatório no cache")
		}
	}

	return payload, nil
}

func (s *Service) computeFresh(kind domain.ReportKind, startDate, endDate time.Time) (any, error) {
	switch kind {
	case domain.ReportKindFunnel:
		return s.Funnel(startDate, endDate)
	case domain.ReportKindAttribution:
		return s.Attribution(startDate, endDate)
	case domain.ReportKindROI:
		return s.ROI(startDate, endDate)
	case domain.ReportKindChannelRevenue:
		return s.ChannelRevenue(startDate, endDate)
	}

	return nil, fmt.Errorf("tipo de relatório desconhecido: %s", kind)
}

// countEvents conta os eventos de tracking de um tipo no período, com um
// cache curto próprio: as contagens expiram antes dos relatórios montados
func (s *Service) countEvents(eventType domain.EventType, startDate, endDate time.Time) (int, error) {
	if !s.useCache {
		return s.eventRepo.CountByType(eventType, startDate, endDate)
	}

	cacheKey := buildEventCacheKey(eventType, startDate, endDate)

	cached, err := s.cacheRepo.Get(cacheKey)
	if err != nil {
		logrus.WithError(err).WithField("event_type", eventType).Warn("Erro ao consultar cache de contagem de eventos; recontando")
	} else if cached != nil {
		count, parseErr := strconv.Atoi(string(cached))
		if parseErr == nil {
			return count, nil
		}
		logrus.WithField("event_type", eventType).Warn("Entrada de cache de contagem ilegível; recontando")
	}

	count, err := s.eventRepo.CountByType(eventType, startDate, endDate)
	if err != nil {
		return 0, err
	}

	ttl := time.Duration(s.cfg.AnalyticsCache.EventTTLMinutes) * time.Minute
	if err := s.cacheRepo.Save(cacheKey, []byte(strconv.Itoa(count)), ttl); err != nil {
		logrus.WithError(err).WithField("event_type", eventType).Warn("Erro ao salvar contagem de eventos no cache")
	}

	return count, nil
}

// buildCacheKey deriva a chave de cache de tipo + período
func buildCacheKey(kind domain.ReportKind, startDate, endDate time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf(
		"%s:%s:%s",
		kind,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)))
	return hex.EncodeToString(sum[:])
}

// buildEventCacheKey deriva a chave de cache de uma contagem de eventos. O
// prefixo separa o espaço de chaves do das chaves de relatório.
func buildEventCacheKey(eventType domain.EventType, startDate, endDate time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf(
		"events:%s:%s:%s",
		eventType,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)))
	return hex.EncodeToString(sum[:])
}
