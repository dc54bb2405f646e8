package domain

import "time"

// ReportKind identifica o tipo de relatório analítico
type ReportKind string

const (
	ReportKindFunnel          ReportKind = "funnel"
	ReportKindAttribution     ReportKind = "attribution"
	ReportKindROI             ReportKind = "roi"
	ReportKindChannelRevenue  ReportKind = "channel_revenue"
	ReportKindCustomerJourney ReportKind = "customer_journey"
)

// IsValid verifica se o tipo de relatório é conhecido
func (k ReportKind) IsValid() bool {
	switch k {
	case ReportKindFunnel, ReportKindAttribution, ReportKindROI,
		ReportKindChannelRevenue, ReportKindCustomerJourney:
		return true
	}
	return false
}

// EventType identifica os eventos de tracking do funil
type EventType string

const (
	EventVisit         EventType = "visit"
	EventProductView   EventType = "product_view"
	EventAddToCart     EventType = "add_to_cart"
	EventCheckoutStart EventType = "checkout_start"
)

// ReportFilters define o período e os parâmetros opcionais de um relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	OrderID   int
}
