package scheduler

import (
	"testing"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/digesting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNextRunAt(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		hour     int
		expected time.Time
	}{
		{
			name:     "Antes do horário - dispara hoje",
			now:      time.Date(2025, 6, 10, 6, 30, 0, 0, time.UTC),
			hour:     8,
			expected: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "Depois do horário - dispara amanhã",
			now:      time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
			hour:     8,
			expected: time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "Exatamente no horário - dispara amanhã",
			now:      time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
			hour:     8,
			expected: time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "Virada de mês",
			now:      time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC),
			hour:     8,
			expected: time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextRunAt(tt.now, tt.hour))
		})
	}
}

func TestDigestSyncService_Reschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{DigestSync: config.DigestSync{Enabled: true}}

	t.Run("Agendamento aplicado com canal configurado", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{
			EmailEnabled: true,
			SendHour:     8,
		}, nil)

		service := NewDigestSyncService(mockDispatcher, cfg)

		err := service.Reschedule(false)

		assert.NoError(t, err)
		assert.Equal(t, 8, service.scheduledHour)
		assert.Equal(t, StateScheduled, service.State())
	})

	t.Run("Reagendamento idempotente - mesmo horário não recria o job", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{
			EmailEnabled: true,
			SendHour:     8,
		}, nil).Times(2)

		service := NewDigestSyncService(mockDispatcher, cfg)

		assert.NoError(t, service.Reschedule(false))
		jobsBefore := len(service.scheduler.Jobs())

		assert.NoError(t, service.Reschedule(false))

		assert.Equal(t, jobsBefore, len(service.scheduler.Jobs()))
		assert.Equal(t, 8, service.scheduledHour)
	})

	t.Run("Mudança de horário realinha o job", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		gomock.InOrder(
			mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{EmailEnabled: true, SendHour: 8}, nil),
			mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{EmailEnabled: true, SendHour: 17}, nil),
		)

		service := NewDigestSyncService(mockDispatcher, cfg)

		assert.NoError(t, service.Reschedule(false))
		assert.NoError(t, service.Reschedule(false))

		assert.Equal(t, 17, service.scheduledHour)
		assert.Equal(t, 1, len(service.scheduler.Jobs()))
	})

	t.Run("Sem canal de entrega - agendamento removido", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		gomock.InOrder(
			mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{EmailEnabled: true, SendHour: 8}, nil),
			mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{}, nil),
		)

		service := NewDigestSyncService(mockDispatcher, cfg)

		assert.NoError(t, service.Reschedule(false))
		assert.NoError(t, service.Reschedule(false))

		assert.Equal(t, -1, service.scheduledHour)
		assert.Equal(t, StateDisabled, service.State())
	})

	t.Run("Erro ao carregar configurações é propagado", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		mockDispatcher.EXPECT().Settings().Return(domain.DigestSettings{}, assert.AnError)

		service := NewDigestSyncService(mockDispatcher, cfg)

		assert.Error(t, service.Reschedule(false))
	})
}

func TestDigestSyncService_State(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Desabilitado por configuração", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		cfg := &config.Config{DigestSync: config.DigestSync{Enabled: false}}

		service := NewDigestSyncService(mockDispatcher, cfg)

		assert.Equal(t, StateDisabled, service.State())
	})

	t.Run("Em envio - estado dispatching", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		cfg := &config.Config{DigestSync: config.DigestSync{Enabled: true}}

		service := NewDigestSyncService(mockDispatcher, cfg)
		service.syncRunning = true

		assert.Equal(t, StateDispatching, service.State())
	})
}

func TestDigestSyncService_RunScheduledDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Status consultável durante e depois do envio", func(t *testing.T) {
		mockDispatcher := mocks.NewMockDispatcher(ctrl)
		cfg := &config.Config{DigestSync: config.DigestSync{Enabled: true}}

		service := NewDigestSyncService(mockDispatcher, cfg)

		mockDispatcher.EXPECT().
			Dispatch(domain.ChannelAll, 0).
			DoAndReturn(func(string, int) *domain.DispatchResult {
				// Consulta de status com o envio em andamento
				midway := service.GetStatus()
				assert.Equal(t, StateDispatching, midway["state"])
				assert.False(t, midway["last_run_at"].(time.Time).IsZero())

				return &domain.DispatchResult{Status: domain.DispatchSuccess}
			})

		service.runScheduledDispatch()

		status := service.GetStatus()
		assert.False(t, status["last_completed_at"].(time.Time).IsZero())
		assert.NotEqual(t, StateDispatching, status["state"])
	})
}
