package handler

import (
	"encoding/json"
	"net/http"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/internal/scheduler"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/digesting"
	"github.com/franpass87/esperienze-insights-api/pkg/apiErrors"
	"github.com/franpass87/esperienze-insights-api/pkg/log"
)

// GetDigestSettings retorna a configuração persistida do digest
func GetDigestSettings(service digesting.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		settings, err := service.Settings()
		if err != nil {
			logger.WithError(err).Error("settings: failed to load digest settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar configurações do digest", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logger.WithError(err).Error("settings: failed to encode settings response")
		}
	})
}

// UpdateDigestSettings persiste a configuração do digest e realinha o
// agendamento diário. Com force_reschedule=true o job é recriado mesmo que o
// horário de envio não tenha mudado.
func UpdateDigestSettings(service digesting.Dispatcher, syncService *scheduler.DigestSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var settings domain.DigestSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		settings.Normalize()

		if err := service.SaveSettings(settings); err != nil {
			logger.WithError(err).Error("settings: failed to save digest settings")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações do digest", nil)
			return
		}

		force := r.URL.Query().Get("force_reschedule") == "true"

		if syncService != nil {
			if err := syncService.Reschedule(force); err != nil {
				// A configuração já foi salva; falha de reagendamento não a desfaz
				logger.WithError(err).Error("settings: failed to reschedule digest job")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Configuração salva, mas o reagendamento falhou", nil)
				return
			}
		}

		logger.WithFields(log.Fields{
			"email_enabled": settings.EmailEnabled,
			"send_hour":     settings.SendHour,
			"forced":        force,
		}).Info("settings: digest settings updated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logger.WithError(err).Error("settings: failed to encode settings response")
		}
	})
}
