package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mrftrack/internal/domain"
	"mrftrack/internal/handler"
	"mrftrack/mocks"
)

func reportRouter(reports *mocks.MockReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewReportHandler(reports)
	r := gin.New()
	r.GET("/reports/daily", h.Daily)
	r.GET("/reports/monthly", h.Monthly)
	r.GET("/reports/monthly/export", h.MonthlyExport)
	r.GET("/reports/panchayat", h.Panchayat)
	return r
}

func TestDailyReport_OK(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	reports.On("BuildDaily", mock.Anything, "MRF-001", date).Return(&domain.DailyReport{
		Date:        date,
		MRFID:       "MRF-001",
		WasteIntake: domain.IntakeTotal{TotalWeight: 100, Count: 1},
		SortedWaste: map[string]domain.SortedAggregate{},
		Sales:       map[string]domain.SalesAggregate{},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/daily?date=2024-03-05&mrf_id=MRF-001", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestDailyReport_BadDate(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/daily?date=05-03-2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reports.AssertNotCalled(t, "BuildDaily", mock.Anything, mock.Anything, mock.Anything)
}

func TestMonthlyReport_InvalidMonthMapsTo400(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	reports.On("BuildMonthly", mock.Anything, "", 2024, 13).Return(nil, domain.ErrInvalidMonth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly?year=2024&month=13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_MONTH", resp.Error.Code)
}

func TestMonthlyExport_CSVHasAttachmentHeaders(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	reports.On("BuildMonthly", mock.Anything, "", 2024, 3).Return(&domain.MonthlyReport{
		Year:           2024,
		Month:          3,
		DailySummaries: []domain.DailyReport{},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly/export?year=2024&month=3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "monthly-report-2024-03.csv")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestMonthlyExport_UnknownFormat(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	reports.On("BuildMonthly", mock.Anything, "", 2024, 3).Return(&domain.MonthlyReport{
		Year:  2024,
		Month: 3,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/monthly/export?year=2024&month=3&format=pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPanchayatReport_StoreUnavailableMapsTo503(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	reports.On("BuildCrossFacility", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrStoreUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/panchayat?start_date=2024-03-01&end_date=2024-03-31", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STORE_UNAVAILABLE", resp.Error.Code)
}

func TestPanchayatReport_MissingDates(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := reportRouter(reports)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/panchayat", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reports.AssertNotCalled(t, "BuildCrossFacility", mock.Anything, mock.Anything, mock.Anything)
}
