package repository

import (
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	digestSettingsTable = "digest_settings st"
)

// Chaves da superfície de configuração persistida do digest
const (
	settingEmailEnabled = "email_enabled"
	settingRecipients   = "recipients"
	settingWebhookURL   = "webhook_url"
	settingMinBookings  = "min_bookings_threshold"
	settingLookbackDays = "lookback_days"
	settingSendHour     = "send_hour"
)

type DigestSettingsRepository interface {
	Load() (domain.DigestSettings, error)
	Save(settings domain.DigestSettings) error
}

type digestSettingsRepository struct {
	conn *postgres.Connection
}

func NewDigestSettingsRepository(conn *postgres.Connection) DigestSettingsRepository {
	return &digestSettingsRepository{
		conn: conn,
	}
}

// Load carrega as configurações do digest da tabela chave/valor, aplicando
// padrões para chaves ausentes.
func (r *digestSettingsRepository) Load() (domain.DigestSettings, error) {
	settings := domain.DigestSettings{
		LookbackDays: 1,
		SendHour:     8,
	}

	query, args, err := squirrel.
		Select("st.setting_key, st.setting_value").
		From(digestSettingsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return settings, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("erro ao escanear configuração: %w", err)
		}
		applySetting(&settings, key, value)
	}

	if err = rows.Err(); err != nil {
		return settings, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	settings.Normalize()
	return settings, nil
}

func (r *digestSettingsRepository) Save(settings domain.DigestSettings) error {
	settings.Normalize()

	values := map[string]string{
		settingEmailEnabled: strconv.FormatBool(settings.EmailEnabled),
		settingRecipients:   settings.Recipients,
		settingWebhookURL:   settings.WebhookURL,
		settingMinBookings:  strconv.Itoa(settings.MinBookingsThreshold),
		settingLookbackDays: strconv.Itoa(settings.LookbackDays),
		settingSendHour:     strconv.Itoa(settings.SendHour),
	}

	builder := squirrel.StatementBuilder.
		Insert("digest_settings").
		Columns("setting_key", "setting_value").
		Suffix(`
			ON CONFLICT (setting_key) DO UPDATE SET
				setting_value = EXCLUDED.setting_value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	for key, value := range values {
		builder = builder.Values(key, value)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configurações do digest: %w", err)
	}

	return nil
}

func applySetting(settings *domain.DigestSettings, key, value string) {
	var err error

	switch key {
	case settingEmailEnabled:
		settings.EmailEnabled, err = strconv.ParseBool(value)
	case settingRecipients:
		settings.Recipients = value
	case settingWebhookURL:
		settings.WebhookURL = value
	case settingMinBookings:
		settings.MinBookingsThreshold, err = strconv.Atoi(value)
	case settingLookbackDays:
		settings.LookbackDays, err = strconv.Atoi(value)
	case settingSendHour:
		settings.SendHour, err = strconv.Atoi(value)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"setting_key":   key,
			"setting_value": value,
		}).Warn("Valor de configuração inválido; mantendo padrão")
	}
}
