// internal/handlers/report.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/gbeaudoin/bevfactory-be/internal/core/ports"
)

// ReportHandler serves the production report and its spreadsheet export.
type ReportHandler struct {
	service ports.FactoryService
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service ports.FactoryService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "report")),
	}
}

// GetReport handles GET /api/v1/report
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report := h.service.Report(r.Context())
	respondJSON(w, http.StatusOK, report)
}

// Export handles GET /api/v1/report/export?format=xlsx|json
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	report := h.service.Report(ctx)

	switch format {
	case "json":
		filename := fmt.Sprintf("production_report_%s.json", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		respondJSON(w, http.StatusOK, report)

	case "xlsx":
		data, err := h.generateExcelFile(report)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to generate Excel report",
				slog.String("error", err.Error()))
			respondError(w, http.StatusInternalServerError, "Failed to generate Excel report")
			return
		}

		filename := fmt.Sprintf("production_report_%s.xlsx", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

		if _, err := w.Write(data); err != nil {
			h.logger.ErrorContext(ctx, "failed to write Excel response",
				slog.String("error", err.Error()))
			return
		}

		h.logger.InfoContext(ctx, "Excel report exported",
			slog.Int("total_batches", report.TotalBatches))

	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unsupported export format %q", format))
	}
}

// generateExcelFile renders the report as a workbook with a summary sheet,
// a per-line sheet and the full batch history.
func (h *ReportHandler) generateExcelFile(report *ports.ProductionReport) ([]byte, error) {
	file := xlsx.NewFile()

	summary, err := file.AddSheet("Summary")
	if err != nil {
		return nil, fmt.Errorf("failed to add summary sheet: %w", err)
	}
	addRow(summary, "Factory", report.FactoryName)
	addRow(summary, "Generated At", report.GeneratedAt.Format(time.RFC3339))
	addRow(summary, "Total Batches", strconv.Itoa(report.TotalBatches))
	addRow(summary, "Total Cost", report.TotalCost.StringFixed(2))
	addRow(summary)
	addRow(summary, "Kind", "Batches", "Total Cost", "Objective")
	for _, kind := range report.Kinds {
		addRow(summary, string(kind.Kind), strconv.Itoa(kind.Batches),
			kind.TotalCost.StringFixed(2), strconv.Itoa(kind.Objective))
	}
	addRow(summary)
	addRow(summary, "Stock Alerts")
	for _, alert := range report.StockAlerts {
		addRow(summary, alert)
	}

	lines, err := file.AddSheet("Lines")
	if err != nil {
		return nil, fmt.Errorf("failed to add lines sheet: %w", err)
	}
	addRow(lines, "Line", "Batches", "Total Cost", "Utilization")
	for _, line := range report.Lines {
		addRow(lines, line.Line, strconv.Itoa(line.Batches),
			line.TotalCost.StringFixed(2),
			strconv.FormatFloat(line.Utilization, 'f', 2, 64))
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().Value = value
	}
}
