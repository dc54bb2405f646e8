package digesting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/franpass87/esperienze-insights-api/infrastructure/notifier/mail"
	"github.com/franpass87/esperienze-insights-api/infrastructure/notifier/slack"
	"github.com/franpass87/esperienze-insights-api/infrastructure/repository"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const digestTitle = "FP Esperienze digest"

// Service implementa o Dispatcher do digest de reservas
type Service struct {
	bookingRepo  repository.BookingReportRepository
	settingsRepo repository.DigestSettingsRepository
	statusRepo   repository.DispatchStatusRepository
	mailer       mail.Mailer
	notifier     slack.Notifier
}

func NewService(
	bookingRepo repository.BookingReportRepository,
	settingsRepo repository.DigestSettingsRepository,
	statusRepo repository.DispatchStatusRepository,
	mailer mail.Mailer,
	notifier slack.Notifier,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		statusRepo:   statusRepo,
		mailer:       mailer,
		notifier:     notifier,
	}
}

// BuildReport agrega as reservas do período [hoje - lookbackDays, hoje].
// Sem storage de reservas disponível, o resumo sai zerado, não com erro.
func (s *Service) BuildReport(lookbackDays int) (*domain.DigestReport, error) {
	if lookbackDays < 1 {
		lookbackDays = 1
	}

	rangeEnd := time.Now()
	rangeStart := rangeEnd.AddDate(0, 0, -lookbackDays)

	if s.bookingRepo == nil {
		return domain.NewDigestReport(rangeStart, rangeEnd, nil), nil
	}

	rows, err := s.bookingRepo.AggregateByDay(rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar reservas por dia: %w", err)
	}

	return domain.NewDigestReport(rangeStart, rangeEnd, rows), nil
}

// Dispatch monta o digest e o entrega nos canais configurados. O resultado
// estruturado distingue sucesso, lacuna de configuração (warning) e falha
// de entrega (error); o snapshot de status é persistido em todos os casos.
// Não há retry nesta camada: um envio agendado que falhar espera o próximo
// tick diário.
func (s *Service) Dispatch(channel string, lookbackDays int) *domain.DispatchResult {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		return s.finish(&domain.DispatchResult{
			Status:  domain.DispatchError,
			Message: fmt.Sprintf("erro ao carregar configurações do digest: %v", err),
		})
	}

	if lookbackDays < 1 {
		lookbackDays = settings.LookbackDays
	}

	report, err := s.BuildReport(lookbackDays)
	if err != nil {
		return s.finish(&domain.DispatchResult{
			Status:  domain.DispatchError,
			Message: fmt.Sprintf("erro ao montar o digest: %v", err),
		})
	}

	subject, body := FormatMessage(report, settings)
	summary := summaryLine(report)

	delivered := make([]string, 0, 2)
	failures := make([]string, 0, 2)

	if channel == domain.ChannelEmail || channel == domain.ChannelAll {
		if settings.EmailEnabled {
			if err := s.sendEmail(settings, subject, body); err != nil {
				failures = append(failures, err.Error())
			} else {
				delivered = append(delivered, domain.ChannelEmail)
			}
		}
	}

	if channel == domain.ChannelSlack || channel == domain.ChannelAll {
		if settings.WebhookURL != "" {
			message := slack.NewMessage(subject, summary, body)
			if err := s.notifier.Post(settings.WebhookURL, message); err != nil {
				failures = append(failures, fmt.Sprintf("webhook: %v", err))
			} else {
				delivered = append(delivered, domain.ChannelSlack)
			}
		}
	}

	result := &domain.DispatchResult{Channels: delivered}

	switch {
	case len(failures) > 0:
		result.Status = domain.DispatchError
		result.Message = strings.Join(failures, "; ")
	case len(delivered) == 0:
		// Nenhum canal configurado para o seletor pedido: lacuna de
		// configuração, não falha
		result.Status = domain.DispatchWarning
		result.Message = "nenhum canal de entrega configurado"
	default:
		result.Status = domain.DispatchSuccess
		result.Message = fmt.Sprintf("digest entregue via %s", strings.Join(delivered, ", "))
	}

	return s.finish(result)
}

// sendEmail valida e entrega por email. Lista de destinatários vazia com o
// canal habilitado é erro explícito, não no-op silencioso.
func (s *Service) sendEmail(settings domain.DigestSettings, subject, body string) error {
	recipients := ParseRecipients(settings.Recipients)
	if len(recipients) == 0 {
		return fmt.Errorf("email habilitado sem destinatários válidos")
	}

	if err := s.mailer.Send(recipients, subject, body); err != nil {
		return fmt.Errorf("email: %v", err)
	}

	return nil
}

// finish persiste o snapshot de status (sobrescrito a cada envio) e loga o desfecho
func (s *Service) finish(result *domain.DispatchResult) *domain.DispatchResult {
	status := &domain.DispatchStatus{
		Timestamp: time.Now(),
		Message:   result.Message,
		Status:    result.Status,
	}

	if s.statusRepo != nil {
		if err := s.statusRepo.Save(status); err != nil {
			logrus.WithError(err).Error("Erro ao salvar status do dispatch")
		}
	}

	logger := logrus.WithFields(logrus.Fields{
		"status":   result.Status,
		"channels": result.Channels,
	})

	switch result.Status {
	case domain.DispatchError:
		logger.Error("Dispatch do digest finalizado com erro: ", result.Message)
	case domain.DispatchWarning:
		logger.Warn("Dispatch do digest finalizado com aviso: ", result.Message)
	default:
		logger.Info("Dispatch do digest finalizado com sucesso")
	}

	return result
}

// LastStatus retorna o registro único do último envio
func (s *Service) LastStatus() (*domain.DispatchStatus, error) {
	return s.statusRepo.Get()
}

// Settings carrega a superfície de configuração persistida
func (s *Service) Settings() (domain.DigestSettings, error) {
	return s.settingsRepo.Load()
}

// SaveSettings persiste a configuração do digest
func (s *Service) SaveSettings(settings domain.DigestSettings) error {
	return s.settingsRepo.Save(settings)
}

// FormatMessage monta assunto e corpo em texto plano do digest:
// cabeçalho com o período, linha de totais, uma linha por dia e, quando o
// total fica abaixo do limite configurado, a linha de alerta.
func FormatMessage(report *domain.DigestReport, settings domain.DigestSettings) (subject, body string) {
	rangeLabel := fmt.Sprintf(
		"%s – %s",
		report.RangeStart.Format(time.DateOnly),
		report.RangeEnd.Format(time.DateOnly),
	)

	subject = fmt.Sprintf("%s for %s", digestTitle, rangeLabel)

	var builder strings.Builder
	builder.WriteString(subject)
	builder.WriteString("\n")
	builder.WriteString(summaryLine(report))
	builder.WriteString("\n\n")

	days := make([]string, 0, len(report.ByDay))
	for day := range report.ByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		entry := report.ByDay[day]
		builder.WriteString(fmt.Sprintf(
			"%s · %d bookings · %s\n",
			day,
			entry.Bookings,
			utils.FormatEUR(entry.Revenue),
		))
	}

	if report.TotalBookings < settings.MinBookingsThreshold {
		builder.WriteString(fmt.Sprintf(
			"⚠️ Alert: total bookings below the configured threshold of %d.\n",
			settings.MinBookingsThreshold,
		))
	}

	return subject, builder.String()
}

func summaryLine(report *domain.DigestReport) string {
	return fmt.Sprintf(
		"Total bookings: %d (%d participants) – Revenue: %s",
		report.TotalBookings,
		report.TotalParticipants,
		utils.FormatEUR(report.TotalRevenue),
	)
}
