// internal/handlers/report_handler_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/gbeaudoin/bevfactory-be/internal/core/domain"
	"github.com/gbeaudoin/bevfactory-be/internal/core/ports"
	"github.com/gbeaudoin/bevfactory-be/internal/handlers"
	"github.com/gbeaudoin/bevfactory-be/test/helpers"
	"github.com/gbeaudoin/bevfactory-be/test/mocks"
)

func sampleReport() *ports.ProductionReport {
	return &ports.ProductionReport{
		FactoryName:  "Usine Centrale",
		GeneratedAt:  time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		TotalBatches: 3,
		TotalCost:    decimal.NewFromFloat(330.75),
		Lines: []ports.LineReport{
			{Line: "ligne-soda-1", Batches: 2, TotalCost: decimal.NewFromFloat(222), Utilization: 0.66},
			{Line: "ligne-jus-1", Batches: 1, TotalCost: decimal.NewFromFloat(108.75), Utilization: 0.5},
		},
		Kinds: []ports.KindReport{
			{Kind: domain.KindJuice, Batches: 1, TotalCost: decimal.NewFromFloat(108.75)},
			{Kind: domain.KindSoda, Batches: 2, TotalCost: decimal.NewFromFloat(222), Objective: 3},
		},
		StockAlerts: []string{"cafeine"},
	}
}

func TestReportHandler_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockFactoryService(ctrl)
	handler := handlers.NewReportHandler(service, helpers.TestLogger())

	service.EXPECT().Report(gomock.Any()).Return(sampleReport())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	rec := httptest.NewRecorder()
	handler.GetReport(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got ports.ProductionReport
	decodeBody(t, rec, &got)
	assert.Equal(t, "Usine Centrale", got.FactoryName)
	assert.Equal(t, 3, got.TotalBatches)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "ligne-soda-1", got.Lines[0].Line)
	assert.Equal(t, []string{"cafeine"}, got.StockAlerts)
}

func TestReportHandler_Export(t *testing.T) {
	t.Run("xlsx is the default format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockFactoryService(ctrl)
		handler := handlers.NewReportHandler(service, helpers.TestLogger())

		service.EXPECT().Report(gomock.Any()).Return(sampleReport())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/report/export", nil)
		rec := httptest.NewRecorder()
		handler.Export(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

		file, err := xlsx.OpenBinary(rec.Body.Bytes())
		require.NoError(t, err)
		require.Len(t, file.Sheets, 2)
		assert.Equal(t, "Summary", file.Sheets[0].Name)
		assert.Equal(t, "Lines", file.Sheets[1].Name)

		cell, err := file.Sheets[0].Cell(0, 1)
		require.NoError(t, err)
		assert.Equal(t, "Usine Centrale", cell.Value)
	})

	t.Run("json export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockFactoryService(ctrl)
		handler := handlers.NewReportHandler(service, helpers.TestLogger())

		service.EXPECT().Report(gomock.Any()).Return(sampleReport())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/report/export?format=json", nil)
		rec := httptest.NewRecorder()
		handler.Export(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".json")

		var got ports.ProductionReport
		decodeBody(t, rec, &got)
		assert.Equal(t, 3, got.TotalBatches)
	})

	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockFactoryService(ctrl)
		handler := handlers.NewReportHandler(service, helpers.TestLogger())

		service.EXPECT().Report(gomock.Any()).Return(sampleReport())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/report/export?format=pdf", nil)
		rec := httptest.NewRecorder()
		handler.Export(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
