package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/digesting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Estados do agendador do digest
const (
	StateDisabled    = "disabled"
	StateScheduled   = "scheduled"
	StateDispatching = "dispatching"
)

// DigestSyncService agenda o envio diário do digest de reservas no horário
// configurado. O reagendamento é idempotente: reaplicar a mesma configuração
// não cria jobs duplicados.
type DigestSyncService struct {
	scheduler       *gocron.Scheduler
	appConfig       *config.Config
	dispatcher      digesting.Dispatcher
	syncEnabled     bool
	syncRunning     bool
	syncMutex       sync.Mutex
	scheduledHour   int
	lastRunAt       time.Time
	lastCompletedAt time.Time
}

// NewDigestSyncService cria uma nova instância do agendador do digest
func NewDigestSyncService(
	dispatcher digesting.Dispatcher,
	appConfig *config.Config,
) *DigestSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"sync_enabled": appConfig.DigestSync.Enabled,
	}).Info("Configuração do agendador do digest carregada")

	return &DigestSyncService{
		scheduler:     scheduler,
		appConfig:     appConfig,
		dispatcher:    dispatcher,
		syncEnabled:   appConfig.DigestSync.Enabled,
		scheduledHour: -1,
	}
}

// Start aplica o agendamento inicial e inicia o agendador
func (s *DigestSyncService) Start(ctx context.Context) error {
	if !s.syncEnabled {
		logrus.Info("Agendamento do digest desabilitado por configuração")
		return nil
	}

	if err := s.Reschedule(false); err != nil {
		return err
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do digest")
		s.scheduler.Stop()
	}()

	return nil
}

// Reschedule lê as configurações persistidas e realinha o job diário com o
// horário de envio. Sem force, um job já alinhado com o mesmo horário é
// mantido como está.
func (s *DigestSyncService) Reschedule(force bool) error {
	settings, err := s.dispatcher.Settings()
	if err != nil {
		return fmt.Errorf("erro ao carregar configurações para agendamento do digest: %w", err)
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if !settings.HasChannel() {
		if s.scheduledHour >= 0 {
			s.scheduler.Clear()
			s.scheduledHour = -1
			logrus.Info("Digest sem canal de entrega configurado; agendamento removido")
		}
		return nil
	}

	if !force && s.scheduledHour == settings.SendHour {
		return nil
	}

	s.scheduler.Clear()

	sendAt := fmt.Sprintf("%02d:00", settings.SendHour)
	_, err = s.scheduler.Every(1).Day().At(sendAt).Do(func() {
		s.runScheduledDispatch()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio diário do digest: %w", err)
	}

	s.scheduledHour = settings.SendHour

	logrus.WithFields(logrus.Fields{
		"send_at": sendAt,
		"forced":  force,
	}).Info("Envio diário do digest agendado")

	return nil
}

// runScheduledDispatch executa o envio agendado, ignorando ticks enquanto
// um envio anterior ainda estiver em andamento
func (s *DigestSyncService) runScheduledDispatch() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Envio do digest já em andamento, ignorando tick")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastRunAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.lastCompletedAt = time.Now()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando envio agendado do digest")

	result := s.dispatcher.Dispatch(domain.ChannelAll, 0)

	logrus.WithFields(logrus.Fields{
		"status":   result.Status,
		"channels": result.Channels,
		"duration": time.Since(startTime).String(),
	}).Info("Envio agendado do digest concluído")
}

// TriggerManualSync dispara um envio fora do agendamento
func (s *DigestSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Envio do digest já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando envio manual do digest")
	go s.runScheduledDispatch()
}

// State retorna o estado corrente do agendador
func (s *DigestSyncService) State() string {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	switch {
	case s.syncRunning:
		return StateDispatching
	case s.syncEnabled && s.scheduledHour >= 0:
		return StateScheduled
	default:
		return StateDisabled
	}
}

// GetStatus retorna o status atual do agendador
func (s *DigestSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	scheduledHour := s.scheduledHour
	lastRunAt := s.lastRunAt
	lastCompletedAt := s.lastCompletedAt
	s.syncMutex.Unlock()

	status := map[string]any{
		"state":             s.State(),
		"sync_enabled":      s.syncEnabled,
		"scheduled_hour":    scheduledHour,
		"last_run_at":       lastRunAt,
		"last_completed_at": lastCompletedAt,
	}

	if scheduledHour >= 0 {
		status["next_run_at"] = NextRunAt(time.Now(), scheduledHour)
	}

	return status
}

// NextRunAt calcula o próximo disparo diário: hoje no horário configurado,
// ou amanhã se o horário de hoje já passou
func NextRunAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
