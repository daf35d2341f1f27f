package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mrftrack/internal/middleware"
	"mrftrack/internal/service"
)

// SaleHandler handles sale recording and summary endpoints.
type SaleHandler struct {
	saleService service.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create godoc
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request body service.CreateSaleInput true "Sale"
// @Success      201 {object} APIResponse
// @Security     BearerAuth
// @Router       /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	operatorID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var input service.CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), operatorID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, sale)
}

// List returns sale records filtered by facility, date range, and
// category.
func (h *SaleHandler) List(c *gin.Context) {
	mrfID := c.Query("mrf_id")
	if mrfID == "" {
		mrfID = middleware.GetMRFID(c)
	}
	category := c.Query("category")

	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "end_date must be YYYY-MM-DD")
		return
	}

	sales, err := h.saleService.List(c.Request.Context(), mrfID, start, end, category)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sales)
}

// Update corrects a sale record. The total amount is recomputed from
// the resulting weight and unit price.
func (h *SaleHandler) Update(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid sale id")
		return
	}

	var input service.UpdateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sale, err := h.saleService.Update(c.Request.Context(), saleID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sale)
}

// Summary returns the category-wise sales rollup for one facility.
func (h *SaleHandler) Summary(c *gin.Context) {
	mrfID := c.Query("mrf_id")
	if mrfID == "" {
		mrfID = middleware.GetMRFID(c)
	}

	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "end_date must be YYYY-MM-DD")
		return
	}

	summary, err := h.saleService.Summary(c.Request.Context(), mrfID, start, end)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}
