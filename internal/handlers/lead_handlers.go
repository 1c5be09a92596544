package handlers

import (
	"errors"
	"net/http"

	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LeadHandler holds the lead service.
type LeadHandler struct {
	leadService services.LeadService
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(ls services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: ls}
}

// callerRole reads the role set by the auth middleware.
func callerRole(c *gin.Context) string {
	role, _ := c.Get("role")
	s, _ := role.(string)
	return s
}

// CreateLead handles the creation of a new lead.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req services.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateLead: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateLead: Error from leadService.CreateLead")
		if errors.Is(err, services.ErrLeadValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create lead.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// GetLeads lists the leads visible to the caller's role.
func (h *LeadHandler) GetLeads(c *gin.Context) {
	leads, err := h.leadService.GetLeadsForRole(c.Request.Context(), callerRole(c))
	if err != nil {
		utils.LogError(err, "GetLeads: Error from leadService.GetLeadsForRole")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch leads.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetLeadByID handles fetching a single lead.
func (h *LeadHandler) GetLeadByID(c *gin.Context) {
	id := c.Param("id")
	lead, err := h.leadService.GetLeadByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetLeadByID: Error from leadService.GetLeadByID for ID "+id)
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Lead not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch lead.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles updating a lead.
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateLead: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "UpdateLead: Error from leadService.UpdateLead for ID "+id)
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Lead not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrLeadValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update lead.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles deleting a lead.
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id := c.Param("id")
	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		utils.LogError(err, "DeleteLead: Error from leadService.DeleteLead for ID "+id)
		if errors.Is(err, services.ErrLeadNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Lead not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete lead.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}
