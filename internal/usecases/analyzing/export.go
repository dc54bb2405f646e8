package analyzing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/franpass87/esperienze-insights-api/pkg/utils"
)

// Formatos de exportação suportados
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportFile é o resultado de uma exportação pronto para download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export serializa o relatório pedido em linhas CSV planas. O formato
// "xlsx" é um shim de compatibilidade: os mesmos bytes CSV com MIME e
// extensão de planilha, não um binário XLSX real.
func (s *Service) Export(kind domain.ReportKind, format string, filters *domain.ReportFilters) (*ExportFile, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, fmt.Errorf("formato de exportação desconhecido: %s", format)
	}

	if filters == nil {
		filters = &domain.ReportFilters{}
	}
	startDate, endDate := utils.DefaultDateRange(filters.StartDate, filters.EndDate)

	var records [][]string
	var err error

	switch kind {
	case domain.ReportKindFunnel:
		records, err = s.funnelRecords(startDate, endDate)
	case domain.ReportKindAttribution, domain.ReportKindChannelRevenue:
		records, err = s.attributionRecords(startDate, endDate)
	case domain.ReportKindROI:
		records, err = s.roiRecords(startDate, endDate)
	default:
		return nil, fmt.Errorf("tipo de relatório não exportável: %s", kind)
	}
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("erro ao escrever CSV: %w", err)
	}

	file := &ExportFile{
		Filename:    fmt.Sprintf("%s_%s_%s.csv", kind, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)),
		ContentType: "text/csv",
		Data:        buffer.Bytes(),
	}

	if format == FormatXLSX {
		file.Filename = fmt.Sprintf("%s_%s_%s.xlsx", kind, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
		file.ContentType = "application/vnd.ms-excel"
	}

	return file, nil
}

func (s *Service) funnelRecords(startDate, endDate time.Time) ([][]string, error) {
	report, err := s.Funnel(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Step", "Count", "Conversion Rate %", "Drop Off"}}
	for _, step := range report.Steps {
		records = append(records, []string{
			step.Name,
			strconv.Itoa(step.Count),
			formatFloat(step.ConversionRate),
			strconv.Itoa(step.DropOff),
		})
	}

	return records, nil
}

func (s *Service) attributionRecords(startDate, endDate time.Time) ([][]string, error) {
	report, err := s.Attribution(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Source", "Medium", "Orders", "Revenue", "Revenue %", "AOV", "Campaigns"}}
	for _, channel := range report.Channels {
		records = append(records, []string{
			channel.Source,
			channel.Medium,
			strconv.Itoa(channel.Orders),
			formatFloat(channel.Revenue),
			formatFloat(channel.RevenuePercentage),
			formatFloat(channel.AvgOrderValue),
			channel.CampaignsLabel(),
		})
	}

	return records, nil
}

func (s *Service) roiRecords(startDate, endDate time.Time) ([][]string, error) {
	report, err := s.ROI(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Channel", "Campaign", "Revenue", "Cost", "Profit", "ROI %", "ROAS", "Orders", "CPA"}}
	for _, entry := range report.Entries {
		records = append(records, []string{
			entry.Channel,
			entry.Campaign,
			formatFloat(entry.Revenue),
			formatFloat(entry.Cost),
			formatFloat(entry.Profit),
			formatFloat(entry.ROIPercentage),
			formatFloat(entry.ROAS),
			strconv.Itoa(entry.Orders),
			formatFloat(entry.CostPerAcquisition),
		})
	}

	return records, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
