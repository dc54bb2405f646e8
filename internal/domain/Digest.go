package domain

import "time"

// BookingDayRow é uma linha agregada de reservas por dia e status
type BookingDayRow struct {
	Day          string  `json:"day"` // Formato 2006-01-02
	Status       string  `json:"status"`
	Count        int     `json:"count"`
	Participants int     `json:"participants"`
	Revenue      float64 `json:"revenue"`
}

// DigestDay é o resumo de um dia dentro do período do digest
type DigestDay struct {
	Bookings     int            `json:"bookings"`
	Participants int            `json:"participants"`
	Revenue      float64        `json:"revenue"`
	Statuses     map[string]int `json:"statuses"`
}

// DigestReport é o resumo de reservas de um período, montado a cada envio
type DigestReport struct {
	RangeStart        time.Time             `json:"range_start"`
	RangeEnd          time.Time             `json:"range_end"`
	ByDay             map[string]*DigestDay `json:"by_day"`
	TotalBookings     int                   `json:"total_bookings"`
	TotalParticipants int                   `json:"total_participants"`
	TotalRevenue      float64               `json:"total_revenue"`
	ByStatus          map[string]int        `json:"by_status"`
}

// NewDigestReport monta o resumo a partir das linhas agregadas por dia/status
func NewDigestReport(rangeStart, rangeEnd time.Time, rows []*BookingDayRow) *DigestReport {
	report := &DigestReport{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		ByDay:      make(map[string]*DigestDay),
		ByStatus:   make(map[string]int),
	}

	for _, row := range rows {
		day, ok := report.ByDay[row.Day]
		if !ok {
			day = &DigestDay{Statuses: make(map[string]int)}
			report.ByDay[row.Day] = day
		}

		day.Bookings += row.Count
		day.Participants += row.Participants
		day.Revenue += row.Revenue
		day.Statuses[row.Status] += row.Count

		report.TotalBookings += row.Count
		report.TotalParticipants += row.Participants
		report.TotalRevenue += row.Revenue
		report.ByStatus[row.Status] += row.Count
	}

	return report
}

// Status possíveis de um resultado de dispatch
const (
	DispatchSuccess = "success"
	DispatchWarning = "warning"
	DispatchError   = "error"
)

// Canais de entrega do digest
const (
	ChannelEmail = "email"
	ChannelSlack = "slack"
	ChannelAll   = "all"
)

// DispatchResult é o resultado estruturado de um envio de digest
type DispatchResult struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Channels []string `json:"channels,omitempty"` // Canais que efetivamente entregaram
}

// DispatchStatus é o registro único (sobrescrito a cada envio) do último dispatch
type DispatchStatus struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
}
