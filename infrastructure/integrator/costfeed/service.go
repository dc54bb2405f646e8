package costfeed

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/franpass87/esperienze-insights-api/infrastructure/repository"
	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CostFeed fornece os custos de campanha usados no cálculo de ROI.
// A origem real é um feed externo; na ausência dele valem as entradas
// semeadas na tabela campaign_costs.
type CostFeed interface {
	ListCosts() ([]domain.CampaignCost, error)
	Refresh() (int, error)
}

type Service struct {
	cfg        *config.Config
	costRepo   repository.CampaignCostRepository
	httpClient *http.Client
}

func New(cfg *config.Config, costRepo repository.CampaignCostRepository) *Service {
	timeout := cfg.CostFeed.RequestTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Service{
		cfg:      cfg,
		costRepo: costRepo,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListCosts retorna os custos conhecidos (tabela local, alimentada pelo feed)
func (s *Service) ListCosts() ([]domain.CampaignCost, error) {
	return s.costRepo.ListCosts()
}

// Refresh busca o feed externo e substitui os custos locais. Sem URL
// configurada não há o que atualizar; as entradas semeadas permanecem.
func (s *Service) Refresh() (int, error) {
	if s.cfg.CostFeed.URL == "" {
		logrus.Debug("Feed de custos sem URL configurada; mantendo entradas locais")
		return 0, nil
	}

	costs, err := s.fetch()
	if err != nil {
		return 0, err
	}

	if len(costs) == 0 {
		logrus.Warn("Feed de custos retornou vazio; mantendo entradas locais")
		return 0, nil
	}

	if err := s.costRepo.ReplaceAll(costs); err != nil {
		return 0, err
	}

	logrus.WithField("entries", len(costs)).Info("Custos de campanha atualizados a partir do feed")
	return len(costs), nil
}

// fetch decodifica o feed mantendo apenas os campos conhecidos
// (source, medium, name, cost); campos extras são ignorados.
func (s *Service) fetch() ([]domain.CampaignCost, error) {
	resp, err := s.httpClient.Get(s.cfg.CostFeed.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar feed de custos")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("feed de custos respondeu com status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta do feed de custos")
	}

	costs := make([]domain.CampaignCost, 0)
	if err := json.Unmarshal(body, &costs); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar feed de custos")
	}

	return costs, nil
}
