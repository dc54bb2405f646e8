package handler

import (
	"net/http"
	"strconv"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/analyzing"
	"github.com/franpass87/esperienze-insights-api/pkg/apiErrors"
	"github.com/franpass87/esperienze-insights-api/pkg/log"
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// parseReportFilters extrai o período e os parâmetros opcionais da query string
func parseReportFilters(r *http.Request) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	filters := &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if rawOrderID := r.URL.Query().Get("order_id"); rawOrderID != "" {
		orderID, err := strconv.Atoi(rawOrderID)
		if err != nil {
			return nil, err
		}
		filters.OrderID = orderID
	}

	return filters, nil
}

// GetReport calcula (ou serve do cache) o relatório analítico pedido na rota
func GetReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.ReportKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if !kind.IsValid() {
			logger.WithField("kind", kind).Warn("analytics: unknown report kind")
			apiErrors.WriteError(w, apiErrors.ErrUnknownReportKind, "Tipo de relatório desconhecido", map[string]any{
				"kind": kind,
			})
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Warn("analytics: invalid report filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Parâmetros de período inválidos", nil)
			return
		}

		logger.WithField("kind", kind).Debug("analytics: computing report")

		payload, err := service.Compute(kind, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Error("analytics: failed to compute report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(payload); err != nil {
			logger.WithFields(log.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Error("analytics: failed to write response")
		}
	})
}
