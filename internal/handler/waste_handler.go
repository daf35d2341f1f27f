package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mrftrack/internal/middleware"
	"mrftrack/internal/service"
)

const dateLayout = "2006-01-02"

// parseDateQuery reads an optional YYYY-MM-DD query parameter. A missing
// parameter returns nil; a malformed one returns an error.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// WasteHandler handles intake, sorting, and category catalog endpoints.
type WasteHandler struct {
	wasteService service.WasteService
}

// NewWasteHandler creates a new WasteHandler.
func NewWasteHandler(wasteService service.WasteService) *WasteHandler {
	return &WasteHandler{wasteService: wasteService}
}

// CreateIntake godoc
// @Summary      Record a waste delivery
// @Tags         waste
// @Accept       json
// @Produce      json
// @Param        request body service.CreateIntakeInput true "Delivery"
// @Success      201 {object} APIResponse
// @Security     BearerAuth
// @Router       /waste/intake [post]
func (h *WasteHandler) CreateIntake(c *gin.Context) {
	operatorID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var input service.CreateIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	intake, err := h.wasteService.CreateIntake(c.Request.Context(), operatorID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, intake)
}

// ListIntake returns intake records for a facility, optionally bounded
// by start and end dates.
func (h *WasteHandler) ListIntake(c *gin.Context) {
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

	intakes, err := h.wasteService.ListIntake(c.Request.Context(), mrfID, start, end)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, intakes)
}

// CreateSorted records sorted material against an existing intake. The
// referenced intake must exist or the request fails with 404.
func (h *WasteHandler) CreateSorted(c *gin.Context) {
	operatorID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var input service.CreateSortedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sorted, err := h.wasteService.CreateSorted(c.Request.Context(), operatorID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, sorted)
}

// ListSorted returns the sorted records belonging to one intake.
func (h *WasteHandler) ListSorted(c *gin.Context) {
	intakeID, err := uuid.Parse(c.Param("intake_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid intake id")
		return
	}

	sorted, err := h.wasteService.ListSorted(c.Request.Context(), intakeID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sorted)
}

// ListCategories returns the waste category catalog.
func (h *WasteHandler) ListCategories(c *gin.Context) {
	categories, err := h.wasteService.ListCategories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, categories)
}

// CreateCategory adds a category to the catalog.
func (h *WasteHandler) CreateCategory(c *gin.Context) {
	var input service.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	category, err := h.wasteService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, category)
}
