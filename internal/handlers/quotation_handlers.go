package handlers

import (
	"errors"
	"net/http"

	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// QuotationHandler holds the quotation service.
type QuotationHandler struct {
	quotationService services.QuotationService
}

// NewQuotationHandler creates a new QuotationHandler.
func NewQuotationHandler(qs services.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: qs}
}

func respondQuotationError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrQuotationNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Quotation not found.", err.Error()))
	} else if errors.Is(err, services.ErrProjectNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
	} else if errors.Is(err, services.ErrQuotationValidation) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	} else {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

// CreateQuotation handles the creation of a new quotation.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req services.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateQuotation: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateQuotation: Error from quotationService.CreateQuotation")
		respondQuotationError(c, err, "create quotation")
		return
	}
	c.JSON(http.StatusCreated, quotation)
}

// GetQuotations lists every quotation.
func (h *QuotationHandler) GetQuotations(c *gin.Context) {
	quotations, err := h.quotationService.GetQuotations(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetQuotations: Error from quotationService.GetQuotations")
		respondQuotationError(c, err, "fetch quotations")
		return
	}
	c.JSON(http.StatusOK, quotations)
}

// GetQuotationByID handles fetching a single quotation.
func (h *QuotationHandler) GetQuotationByID(c *gin.Context) {
	id := c.Param("id")
	quotation, err := h.quotationService.GetQuotationByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetQuotationByID: Error from quotationService.GetQuotationByID for ID "+id)
		respondQuotationError(c, err, "fetch quotation")
		return
	}
	c.JSON(http.StatusOK, quotation)
}

// GetQuotationsByProject lists all quotations of one project.
func (h *QuotationHandler) GetQuotationsByProject(c *gin.Context) {
	projectID := c.Param("projectId")
	quotations, err := h.quotationService.GetQuotationsByProjectID(c.Request.Context(), projectID)
	if err != nil {
		utils.LogError(err, "GetQuotationsByProject: Error from quotationService.GetQuotationsByProjectID for project "+projectID)
		respondQuotationError(c, err, "fetch quotations")
		return
	}
	c.JSON(http.StatusOK, quotations)
}

// ReplaceQuotationItems swaps the item list and recalculates all totals.
func (h *QuotationHandler) ReplaceQuotationItems(c *gin.Context) {
	id := c.Param("id")

	var req services.ReplaceQuotationItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ReplaceQuotationItems: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	quotation, err := h.quotationService.ReplaceQuotationItems(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "ReplaceQuotationItems: Error from quotationService.ReplaceQuotationItems for ID "+id)
		respondQuotationError(c, err, "update quotation items")
		return
	}
	c.JSON(http.StatusOK, quotation)
}

// UpdateQuotationTotals adjusts discount, tax and freight on a quotation.
func (h *QuotationHandler) UpdateQuotationTotals(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateQuotationTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateQuotationTotals: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	quotation, err := h.quotationService.UpdateQuotationTotals(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "UpdateQuotationTotals: Error from quotationService.UpdateQuotationTotals for ID "+id)
		respondQuotationError(c, err, "update quotation totals")
		return
	}
	c.JSON(http.StatusOK, quotation)
}

// DeleteQuotation handles deleting a quotation.
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		utils.LogError(err, "DeleteQuotation: Error from quotationService.DeleteQuotation for ID "+id)
		respondQuotationError(c, err, "delete quotation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quotation deleted successfully"})
}
