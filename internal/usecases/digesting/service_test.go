package digesting

import (
	"testing"
	"time"

	mailmocks "github.com/franpass87/esperienze-insights-api/infrastructure/notifier/mail/mocks"
	slackmocks "github.com/franpass87/esperienze-insights-api/infrastructure/notifier/slack/mocks"
	"github.com/franpass87/esperienze-insights-api/infrastructure/repository/mocks"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	bookingRepo  *mocks.MockBookingReportRepository
	settingsRepo *mocks.MockDigestSettingsRepository
	statusRepo   *mocks.MockDispatchStatusRepository
	mailer       *mailmocks.MockMailer
	notifier     *slackmocks.MockNotifier
}

func newDigestService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		bookingRepo:  mocks.NewMockBookingReportRepository(ctrl),
		settingsRepo: mocks.NewMockDigestSettingsRepository(ctrl),
		statusRepo:   mocks.NewMockDispatchStatusRepository(ctrl),
		mailer:       mailmocks.NewMockMailer(ctrl),
		notifier:     slackmocks.NewMockNotifier(ctrl),
	}

	service := NewService(m.bookingRepo, m.settingsRepo, m.statusRepo, m.mailer, m.notifier)
	return service, m
}

func sampleRows() []*domain.BookingDayRow {
	return []*domain.BookingDayRow{
		{Day: "2025-06-01", Status: "confirmed", Count: 2, Participants: 4, Revenue: 100.0},
		{Day: "2025-06-01", Status: "cancelled", Count: 1, Participants: 2, Revenue: 50.0},
		{Day: "2025-06-02", Status: "confirmed", Count: 1, Participants: 3, Revenue: 60.0},
	}
}

func TestService_BuildReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Agrega totais do período por dia e status", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.bookingRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any()).
			Return(sampleRows(), nil)

		report, err := service.BuildReport(7)

		assert.NoError(t, err)
		assert.Equal(t, 4, report.TotalBookings)
		assert.Equal(t, 9, report.TotalParticipants)
		assert.Equal(t, 210.0, report.TotalRevenue)
		assert.Len(t, report.ByDay, 2)
		assert.Equal(t, 3, report.ByDay["2025-06-01"].Bookings)
		assert.Equal(t, 2, report.ByDay["2025-06-01"].Statuses["confirmed"])
		assert.Equal(t, 1, report.ByStatus["cancelled"])
	})

	t.Run("Lookback menor que um dia é normalizado para um", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.bookingRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(startDate, endDate time.Time) ([]*domain.BookingDayRow, error) {
				assert.WithinDuration(t, endDate.AddDate(0, 0, -1), startDate, time.Second)
				return nil, nil
			})

		report, err := service.BuildReport(0)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.TotalBookings)
	})

	t.Run("Falha de agregação é propagada", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.bookingRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("conexão recusada"))

		_, err := service.BuildReport(1)

		assert.Error(t, err)
	})
}

func TestService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Nenhum canal configurado - warning, não erro", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{LookbackDays: 1, SendHour: 8}, nil)
		m.bookingRepo.EXPECT().AggregateByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.statusRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(status *domain.DispatchStatus) error {
			assert.Equal(t, domain.DispatchWarning, status.Status)
			return nil
		})

		result := service.Dispatch(domain.ChannelAll, 0)

		assert.Equal(t, domain.DispatchWarning, result.Status)
		assert.Equal(t, "nenhum canal de entrega configurado", result.Message)
		assert.Empty(t, result.Channels)
	})

	t.Run("Email e webhook entregues - sucesso com ambos os canais", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{
			EmailEnabled: true,
			Recipients:   "ops@fpesperienze.it",
			WebhookURL:   "https://hooks.slack.com/services/T000/B000/XXX",
			LookbackDays: 1,
		}, nil)
		m.bookingRepo.EXPECT().AggregateByDay(gomock.Any(), gomock.Any()).Return(sampleRows(), nil)
		m.mailer.EXPECT().Send([]string{"ops@fpesperienze.it"}, gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Post("https://hooks.slack.com/services/T000/B000/XXX", gomock.Any()).Return(nil)
		m.statusRepo.EXPECT().Save(gomock.Any()).Return(nil)

		result := service.Dispatch(domain.ChannelAll, 0)

		assert.Equal(t, domain.DispatchSuccess, result.Status)
		assert.Equal(t, []string{domain.ChannelEmail, domain.ChannelSlack}, result.Channels)
	})

	t.Run("Somente email pedido - webhook configurado não é acionado", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{
			EmailEnabled: true,
			Recipients:   "ops@fpesperienze.it",
			WebhookURL:   "https://hooks.slack.com/services/T000/B000/XXX",
			LookbackDays: 1,
		}, nil)
		m.bookingRepo.EXPECT().AggregateByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.statusRepo.EXPECT().Save(gomock.Any()).Return(nil)

		result := service.Dispatch(domain.ChannelEmail, 0)

		assert.Equal(t, domain.DispatchSuccess, result.Status)
		assert.Equal(t, []string{domain.ChannelEmail}, result.Channels)
	})

	t.Run("Falha no webhook - status error com snapshot persistido", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{
			WebhookURL:   "https://hooks.slack.com/services/T000/B000/XXX",
			LookbackDays: 1,
		}, nil)
		m.bookingRepo.EXPECT().AggregateByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(errors.New("status 500"))
		m.statusRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(status *domain.DispatchStatus) error {
			assert.Equal(t, domain.DispatchError, status.Status)
			assert.Contains(t, status.Message, "webhook")
			return nil
		})

		result := service.Dispatch(domain.ChannelAll, 0)

		assert.Equal(t, domain.DispatchError, result.Status)
		assert.Empty(t, result.Channels)
	})

	t.Run("Email habilitado sem destinatários válidos - erro explícito", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{
			EmailEnabled: true,
			Recipients:   "not-an-email; also invalid",
			LookbackDays: 1,
		}, nil)
		m.bookingRepo.EXPECT().AggregateByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.statusRepo.EXPECT().Save(gomock.Any()).Return(nil)

		result := service.Dispatch(domain.ChannelEmail, 0)

		assert.Equal(t, domain.DispatchError, result.Status)
		assert.Contains(t, result.Message, "destinatários")
	})

	t.Run("Falha parcial - um canal entrega, outro falha, resultado é error", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{
			EmailEnabled: true,
			Recipients:   "ops@fpesperienze.it",
			WebhookURL:   "https://hooks.slack.com/services/T000/B000/XXX",
			LookbackDays: 1,
		}, nil)
		m.bookingRepo.EXPECT().AggregateByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Post(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
		m.statusRepo.EXPECT().Save(gomock.Any()).Return(nil)

		result := service.Dispatch(domain.ChannelAll, 0)

		assert.Equal(t, domain.DispatchError, result.Status)
		assert.Equal(t, []string{domain.ChannelEmail}, result.Channels)
	})

	t.Run("Erro ao carregar configurações - dispatch vira error", func(t *testing.T) {
		service, m := newDigestService(ctrl)

		m.settingsRepo.EXPECT().Load().Return(domain.DigestSettings{}, errors.New("tabela ausente"))
		m.statusRepo.EXPECT().Save(gomock.Any()).Return(nil)

		result := service.Dispatch(domain.ChannelAll, 0)

		assert.Equal(t, domain.DispatchError, result.Status)
	})
}

func TestFormatMessage(t *testing.T) {
	rangeStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("Corpo completo - cabeçalho, totais e linhas por dia ordenadas", func(t *testing.T) {
		report := domain.NewDigestReport(rangeStart, rangeEnd, sampleRows())
		settings := domain.DigestSettings{MinBookingsThreshold: 0}

		subject, body := FormatMessage(report, settings)

		assert.Equal(t, "FP Esperienze digest for 2025-06-01 – 2025-06-03", subject)

		expected := "FP Esperienze digest for 2025-06-01 – 2025-06-03\n" +
			"Total bookings: 4 (9 participants) – Revenue: €210.00\n\n" +
			"2025-06-01 · 3 bookings · €150.00\n" +
			"2025-06-02 · 1 bookings · €60.00\n"
		assert.Equal(t, expected, body)
	})

	t.Run("Total abaixo do limite - linha de alerta no final", func(t *testing.T) {
		report := domain.NewDigestReport(rangeStart, rangeEnd, nil)
		settings := domain.DigestSettings{MinBookingsThreshold: 5}

		_, body := FormatMessage(report, settings)

		assert.Contains(t, body, "⚠️ Alert: total bookings below the configured threshold of 5.")
	})

	t.Run("Total no limite - sem alerta", func(t *testing.T) {
		report := domain.NewDigestReport(rangeStart, rangeEnd, sampleRows())
		settings := domain.DigestSettings{MinBookingsThreshold: 4}

		_, body := FormatMessage(report, settings)

		assert.NotContains(t, body, "Alert")
	})
}
