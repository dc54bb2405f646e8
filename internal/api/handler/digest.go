package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/internal/scheduler"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/digesting"
	"github.com/franpass87/esperienze-insights-api/pkg/apiErrors"
	"github.com/franpass87/esperienze-insights-api/pkg/log"
)

// SendDigestRequest é o corpo do disparo manual do digest. Ambos os campos
// são opcionais: o padrão é enviar para todos os canais com o lookback
// persistido nas configurações.
type SendDigestRequest struct {
	Channel      string `json:"channel"`
	LookbackDays int    `json:"lookback_days"`
}

// SendDigest dispara um envio manual do digest. O resultado estruturado é
// retornado sempre com 200: warning e error são estados do envio, não da API.
func SendDigest(service digesting.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SendDigestRequest

		// Corpo vazio vale como requisição com os padrões
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Channel == "" {
			req.Channel = domain.ChannelAll
		}
		if req.Channel != domain.ChannelEmail && req.Channel != domain.ChannelSlack && req.Channel != domain.ChannelAll {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Canal de entrega desconhecido", map[string]any{
				"channel": req.Channel,
			})
			return
		}

		logger.WithFields(log.Fields{
			"channel":       req.Channel,
			"lookback_days": req.LookbackDays,
		}).Info("digest: manual dispatch requested")

		result := service.Dispatch(req.Channel, req.LookbackDays)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("digest: failed to encode dispatch result")
		}
	})
}

// GetDigestStatus retorna o snapshot do último envio e o estado do agendador
func GetDigestStatus(service digesting.Dispatcher, syncService *scheduler.DigestSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := service.LastStatus()
		if err != nil {
			logger.WithError(err).Error("digest: failed to load dispatch status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar status do digest", nil)
			return
		}

		response := map[string]any{
			"last_dispatch": status,
		}
		if syncService != nil {
			response["scheduler"] = syncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("digest: failed to encode status response")
		}
	})
}
