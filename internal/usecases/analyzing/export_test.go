package analyzing

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	filters := &domain.ReportFilters{StartDate: &startDate, EndDate: &endDate}

	t.Run("Funil em CSV - cabeçalho e uma linha por etapa", func(t *testing.T) {
		service, mockEventRepo, mockOrderRepo, _ := newTestService(ctrl)

		mockEventRepo.EXPECT().CountByType(domain.EventVisit, startDate, endDate).Return(100, nil)
		mockEventRepo.EXPECT().CountByType(domain.EventProductView, startDate, endDate).Return(50, nil)
		mockEventRepo.EXPECT().CountByType(domain.EventAddToCart, startDate, endDate).Return(20, nil)
		mockEventRepo.EXPECT().CountByType(domain.EventCheckoutStart, startDate, endDate).Return(10, nil)
		mockOrderRepo.EXPECT().CountCompleted(startDate, endDate).Return(5, nil)
		mockOrderRepo.EXPECT().SumRevenue(startDate, endDate).Return(500.0, nil)

		file, err := service.Export(domain.ReportKindFunnel, FormatCSV, filters)

		assert.NoError(t, err)
		assert.Equal(t, "text/csv", file.ContentType)
		assert.Equal(t, "funnel_2025-06-01_2025-06-30.csv", file.Filename)

		records, err := csv.NewReader(strings.NewReader(string(file.Data))).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, records, 6)
		assert.Equal(t, []string{"Step", "Count", "Conversion Rate %", "Drop Off"}, records[0])
		assert.Equal(t, []string{"visits", "100", "0.00", "0"}, records[1])
		assert.Equal(t, []string{"product_views", "50", "50.00", "50"}, records[2])
	})

	t.Run("Atribuição em CSV - colunas do canal", func(t *testing.T) {
		service, _, mockOrderRepo, _ := newTestService(ctrl)

		mockOrderRepo.EXPECT().
			ListWithAttribution(startDate, endDate).
			Return([]*domain.AttributionOrder{
				{OrderID: 1, Total: 100.0, RawMeta: []byte(`{"utm_source":"google","utm_medium":"cpc","utm_campaign":"estate"}`)},
			}, nil)

		file, err := service.Export(domain.ReportKindAttribution, FormatCSV, filters)

		assert.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(string(file.Data))).ReadAll()
		assert.NoError(t, err)
		assert.Equal(t, []string{"Source", "Medium", "Orders", "Revenue", "Revenue %", "AOV", "Campaigns"}, records[0])
		assert.Equal(t, []string{"google", "cpc", "1", "100.00", "100.00", "100.00", "estate"}, records[1])
	})

	t.Run("Shim xlsx - mesmos bytes CSV com MIME de planilha", func(t *testing.T) {
		service, _, mockOrderRepo, mockCostFeed := newTestService(ctrl)

		mockOrderRepo.EXPECT().
			ListWithAttribution(startDate, endDate).
			Return([]*domain.AttributionOrder{}, nil)
		mockCostFeed.EXPECT().ListCosts().Return([]domain.CampaignCost{}, nil)

		file, err := service.Export(domain.ReportKindROI, FormatXLSX, filters)

		assert.NoError(t, err)
		assert.Equal(t, "application/vnd.ms-excel", file.ContentType)
		assert.Equal(t, "roi_2025-06-01_2025-06-30.xlsx", file.Filename)

		records, err := csv.NewReader(strings.NewReader(string(file.Data))).ReadAll()
		assert.NoError(t, err)
		assert.Equal(t, []string{"Channel", "Campaign", "Revenue", "Cost", "Profit", "ROI %", "ROAS", "Orders", "CPA"}, records[0])
	})

	t.Run("Formato desconhecido - erro", func(t *testing.T) {
		service, _, _, _ := newTestService(ctrl)

		_, err := service.Export(domain.ReportKindFunnel, "pdf", filters)

		assert.Error(t, err)
	})

	t.Run("Jornada do cliente não é exportável", func(t *testing.T) {
		service, _, _, _ := newTestService(ctrl)

		_, err := service.Export(domain.ReportKindCustomerJourney, FormatCSV, filters)

		assert.Error(t, err)
	})
}
