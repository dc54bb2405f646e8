package handler

import (
	"fmt"
	"net/http"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/analyzing"
	"github.com/franpass87/esperienze-insights-api/pkg/apiErrors"
	"github.com/franpass87/esperienze-insights-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// ExportReport serializa o relatório pedido em CSV (ou no shim xlsx) para download
func ExportReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.ReportKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if !kind.IsValid() || kind == domain.ReportKindCustomerJourney {
			apiErrors.WriteError(w, apiErrors.ErrUnknownReportKind, "Tipo de relatório não exportável", map[string]any{
				"kind": kind,
			})
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = analyzing.FormatCSV
		}
		if format != analyzing.FormatCSV && format != analyzing.FormatXLSX {
			apiErrors.WriteError(w, apiErrors.ErrUnknownExportFormat, "Formato de exportação desconhecido", map[string]any{
				"format": format,
			})
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Parâmetros de período inválidos", nil)
			return
		}

		logger.WithFields(log.Fields{
			"kind":   kind,
			"format": format,
		}).Info("export: generating report file")

		file, err := service.Export(kind, format, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Error("export: failed to generate report file")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))

		if _, err := w.Write(file.Data); err != nil {
			logger.WithFields(log.Fields{
				"kind":  kind,
				"error": err.Error(),
			}).Error("export: failed to write file response")
		}
	})
}
