package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mrftrack/internal/export"
	"mrftrack/internal/middleware"
	"mrftrack/internal/service"
)

// ReportHandler handles the derived reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// facilityParam resolves the facility for a report request. An explicit
// mrf_id query wins; otherwise the caller's own assignment is used.
func facilityParam(c *gin.Context) string {
	if mrfID := c.Query("mrf_id"); mrfID != "" {
		return mrfID
	}
	return middleware.GetMRFID(c)
}

// Daily godoc
// @Summary      Daily report for one facility
// @Tags         reports
// @Produce      json
// @Param        date   query string true  "Report date (YYYY-MM-DD)"
// @Param        mrf_id query string false "Facility ID"
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "date must be YYYY-MM-DD")
		return
	}

	report, err := h.reportService.BuildDaily(c.Request.Context(), facilityParam(c), date)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Monthly builds the per-day breakdown and totals for one month.
func (h *ReportHandler) Monthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "month must be an integer")
		return
	}

	report, err := h.reportService.BuildMonthly(c.Request.Context(), facilityParam(c), year, month)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// MonthlyExport streams the monthly report as a CSV or XLSX download.
// The format query parameter selects the encoding, defaulting to csv.
func (h *ReportHandler) MonthlyExport(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "month must be an integer")
		return
	}

	report, err := h.reportService.BuildMonthly(c.Request.Context(), facilityParam(c), year, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("monthly-report-%04d-%02d", year, month)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := export.MonthlyXLSX(c.Writer, report); err != nil {
			HandleError(c, err)
		}
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		if err := export.MonthlyCSV(c.Writer, report); err != nil {
			HandleError(c, err)
		}
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be csv or xlsx")
	}
}

// Panchayat builds the cross-facility report over a date range.
func (h *ReportHandler) Panchayat(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "end_date must be YYYY-MM-DD")
		return
	}

	report, err := h.reportService.BuildCrossFacility(c.Request.Context(), start, end)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
