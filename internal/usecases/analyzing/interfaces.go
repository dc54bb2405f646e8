package analyzing

import (
	"encoding/json"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
)

// Analyzer é a interface do agregador de relatórios analíticos
type Analyzer interface {
	// Compute calcula (ou recupera do cache) o relatório do tipo informado
	Compute(kind domain.ReportKind, filters *domain.ReportFilters) (json.RawMessage, error)

	// Funnel calcula o funil de conversão do período
	Funnel(startDate, endDate time.Time) (*domain.FunnelReport, error)

	// Attribution agrupa pedidos por canal de atribuição no período
	Attribution(startDate, endDate time.Time) (*domain.AttributionReport, error)

	// ROI cruza atribuição com custos de campanha
	ROI(startDate, endDate time.Time) (*domain.ROIReport, error)

	// ChannelRevenue projeta a atribuição para gráficos de receita por canal
	ChannelRevenue(startDate, endDate time.Time) ([]*domain.ChannelRevenueItem, error)

	// CustomerJourney reconstitui os eventos de atribuição de um pedido
	CustomerJourney(orderID int) (*domain.CustomerJourney, error)

	// Export serializa um relatório em CSV (ou no shim "xlsx")
	Export(kind domain.ReportKind, format string, filters *domain.ReportFilters) (*ExportFile, error)

	// RefreshCosts aciona a atualização do feed externo de custos
	RefreshCosts() (int, error)
}
