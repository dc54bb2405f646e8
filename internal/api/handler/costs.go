package handler

import (
	"encoding/json"
	"net/http"

	"github.com/franpass87/esperienze-insights-api/internal/usecases/analyzing"
	"github.com/franpass87/esperienze-insights-api/pkg/apiErrors"
	"github.com/franpass87/esperienze-insights-api/pkg/log"
)

// RefreshCosts aciona a atualização do feed externo de custos de campanha
func RefreshCosts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("costs: refreshing campaign cost feed")

		updated, err := service.RefreshCosts()
		if err != nil {
			logger.WithError(err).Error("costs: failed to refresh campaign cost feed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar feed de custos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"updated": updated}); err != nil {
			logger.WithError(err).Error("costs: failed to encode response")
		}
	})
}
