package analyzing

import (
	"encoding/json"
	"testing"
	"time"

	costfeedmocks "github.com/franpass87/esperienze-insights-api/infrastructure/integrator/costfeed/mocks"
	"github.com/franpass87/esperienze-insights-api/infrastructure/repository/mocks"
	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func cachedTestService(ctrl *gomock.Controller) (*Service, *mocks.MockEventCountRepository, *mocks.MockOrderAggregateRepository, *mocks.MockAnalyticsCacheRepository) {
	mockEventRepo := mocks.NewMockEventCountRepository(ctrl)
	mockOrderRepo := mocks.NewMockOrderAggregateRepository(ctrl)
	mockCostFeed := costfeedmocks.NewMockCostFeed(ctrl)
	mockCacheRepo := mocks.NewMockAnalyticsCacheRepository(ctrl)

	cfg := &config.Config{
		AnalyticsCache: config.AnalyticsCache{TTLMinutes: 60, EventTTLMinutes: 15},
	}

	service := NewService(cfg, mockEventRepo, mockOrderRepo, mockCostFeed).WithCache(mockCacheRepo)
	return service, mockEventRepo, mockOrderRepo, mockCacheRepo
}

func expectFunnelQueries(mockEventRepo *mocks.MockEventCountRepository, mockOrderRepo *mocks.MockOrderAggregateRepository, startDate, endDate time.Time) {
	mockEventRepo.EXPECT().CountByType(domain.EventVisit, startDate, endDate).Return(100, nil).Times(1)
	mockEventRepo.EXPECT().CountByType(domain.EventProductView, startDate, endDate).Return(60, nil).Times(1)
	mockEventRepo.EXPECT().CountByType(domain.EventAddToCart, startDate, endDate).Return(30, nil).Times(1)
	mockEventRepo.EXPECT().CountByType(domain.EventCheckoutStart, startDate, endDate).Return(20, nil).Times(1)
	mockOrderRepo.EXPECT().CountCompleted(startDate, endDate).Return(10, nil).Times(1)
	mockOrderRepo.EXPECT().SumRevenue(startDate, endDate).Return(1000.0, nil).Times(1)
}

func TestService_Compute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	filters := &domain.ReportFilters{StartDate: &startDate, EndDate: &endDate}

	t.Run("Cache miss - calcula, salva e retorna o payload", func(t *testing.T) {
		service, mockEventRepo, mockOrderRepo, mockCacheRepo := cachedTestService(ctrl)

		// 1 consulta para o relatório + 4 para as contagens de eventos
		mockCacheRepo.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(5)
		expectFunnelQueries(mockEventRepo, mockOrderRepo, startDate, endDate)
		mockCacheRepo.EXPECT().Save(gomock.Any(), gomock.Any(), 15*time.Minute).Return(nil).Times(4)
		mockCacheRepo.EXPECT().Save(gomock.Any(), gomock.Any(), 60*time.Minute).Return(nil)

		payload, err := service.Compute(domain.ReportKindFunnel, filters)

		assert.NoError(t, err)

		var report domain.FunnelReport
		assert.NoError(t, json.Unmarshal(payload, &report))
		assert.Len(t, report.Steps, 5)
		assert.Equal(t, 100, report.Steps[0].Count)
		assert.Equal(t, 10.0, report.OverallConversionRate)
	})

	t.Run("Contagens de eventos servidas do cache curto - banco não é consultado", func(t *testing.T) {
		service, _, mockOrderRepo, mockCacheRepo := cachedTestService(ctrl)

		gomock.InOrder(
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return(nil, nil), // relatório montado
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("100"), nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("60"), nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("30"), nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("20"), nil),
		)
		mockOrderRepo.EXPECT().CountCompleted(startDate, endDate).Return(10, nil)
		mockOrderRepo.EXPECT().SumRevenue(startDate, endDate).Return(1000.0, nil)
		mockCacheRepo.EXPECT().Save(gomock.Any(), gomock.Any(), 60*time.Minute).Return(nil)

		payload, err := service.Compute(domain.ReportKindFunnel, filters)

		assert.NoError(t, err)

		var report domain.FunnelReport
		assert.NoError(t, json.Unmarshal(payload, &report))
		assert.Equal(t, 100, report.Steps[0].Count)
		assert.Equal(t, 20, report.Steps[3].Count)
	})

	t.Run("Entrada de contagem ilegível no cache - reconta no banco", func(t *testing.T) {
		service, mockEventRepo, mockOrderRepo, mockCacheRepo := cachedTestService(ctrl)

		gomock.InOrder(
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return(nil, nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("não-numérico"), nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("60"), nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("30"), nil),
			mockCacheRepo.EXPECT().Get(gomock.Any()).Return([]byte("20"), nil),
		)
		mockEventRepo.EXPECT().CountByType(domain.EventVisit, startDate, endDate).Return(100, nil)
		mockOrderRepo.EXPECT().CountCompleted(startDate, endDate).Return(10, nil)
		mockOrderRepo.EXPECT().SumRevenue(startDate, endDate).Return(1000.0, nil)
		mockCacheRepo.EXPECT().Save(gomock.Any(), gomock.Any(), 15*time.Minute).Return(nil)
		mockCacheRepo.EXPECT().Save(gomock.Any(), gomock.Any(), 60*time.Minute).Return(nil)

		payload, err := service.Compute(domain.ReportKindFunnel, filters)

		assert.NoError(t, err)

		var report domain.FunnelReport
		assert.NoError(t, json.Unmarshal(payload, &report))
		assert.Equal(t, 100, report.Steps[0].Count)
	})

	t.Run("Cache hit - retorna o payload cacheado byte a byte, sem recalcular", func(t *testing.T) {
		service, _, _, mockCacheRepo := cachedTestService(ctrl)

		cached := []byte(`{"steps":[],"overall_conversion_rate":1.5,"average_order_value":0,"total_revenue":0}`)
		mockCacheRepo.EXPECT().Get(gomock.Any()).Return(cached, nil)

		payload, err := service.Compute(domain.ReportKindFunnel, filters)

		assert.NoError(t, err)
		assert.Equal(t, cached, []byte(payload))
	})

	t.Run("Mesmo período gera a mesma chave de cache", func(t *testing.T) {
		service, _, _, mockCacheRepo := cachedTestService(ctrl)

		var firstKey, secondKey string
		cached := []byte(`{}`)
		mockCacheRepo.EXPECT().Get(gomock.Any()).DoAndReturn(func(key string) ([]byte, error) {
			firstKey = key
			return cached, nil
		})
		mockCacheRepo.EXPECT().Get(gomock.Any()).DoAndReturn(func(key string) ([]byte, error) {
			secondKey = key
			return cached, nil
		})

		_, err := service.Compute(domain.ReportKindFunnel, filters)
		assert.NoError(t, err)
		_, err = service.Compute(domain.ReportKindFunnel, filters)
		assert.NoError(t, err)

		assert.Equal(t, firstKey, secondKey)
		assert.Len(t, firstKey, 64) // hex de SHA-256
	})

	t.Run("Jornada do cliente não passa pelo cache", func(t *testing.T) {
		service, _, mockOrderRepo, _ := cachedTestService(ctrl)

		mockOrderRepo.EXPECT().GetByID(5).Return(nil, nil)

		journeyFilters := &domain.ReportFilters{StartDate: &startDate, EndDate: &endDate, OrderID: 5}
		payload, err := service.Compute(domain.ReportKindCustomerJourney, journeyFilters)

		assert.NoError(t, err)

		var journey domain.CustomerJourney
		assert.NoError(t, json.Unmarshal(payload, &journey))
		assert.Equal(t, 5, journey.OrderID)
		assert.Empty(t, journey.Events)
	})

	t.Run("Tipo de relatório desconhecido - erro", func(t *testing.T) {
		service, _, _, _ := cachedTestService(ctrl)

		_, err := service.Compute(domain.ReportKind("unknown"), filters)

		assert.Error(t, err)
	})

	t.Run("Data de início posterior à de fim - erro", func(t *testing.T) {
		service, _, _, _ := cachedTestService(ctrl)

		inverted := &domain.ReportFilters{StartDate: &endDate, EndDate: &startDate}
		_, err := service.Compute(domain.ReportKindFunnel, inverted)

		assert.Error(t, err)
	})

	t.Run("Falha ao salvar no cache não invalida o relatório", func(t *testing.T) {
		service, mockEventRepo, mockOrderRepo, mockCacheRepo := cachedTestService(ctrl)

		mockCacheRepo.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(5)
		expectFunnelQueries(mockEventRepo, mockOrderRepo, startDate, endDate)
		mockCacheRepo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(5)

		payload, err := service.Compute(domain.ReportKindFunnel, filters)

		assert.NoError(t, err)
		assert.NotEmpty(t, payload)
	})
}
