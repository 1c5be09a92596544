package handlers

import (
	"errors"
	"net/http"

	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ArchitectHandler holds the architect service.
type ArchitectHandler struct {
	architectService services.ArchitectService
}

// NewArchitectHandler creates a new ArchitectHandler.
func NewArchitectHandler(as services.ArchitectService) *ArchitectHandler {
	return &ArchitectHandler{architectService: as}
}

// CreateArchitect handles the creation of a new architect contact.
func (h *ArchitectHandler) CreateArchitect(c *gin.Context) {
	var req services.CreateArchitectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateArchitect: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	architect, err := h.architectService.CreateArchitect(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateArchitect: Error from architectService.CreateArchitect")
		if errors.Is(err, services.ErrArchitectExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "An architect with this name and contact already exists.", err.Error()))
		} else if errors.Is(err, services.ErrArchitectValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create architect.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, architect)
}

// GetAllArchitects lists every architect contact.
func (h *ArchitectHandler) GetAllArchitects(c *gin.Context) {
	architects, err := h.architectService.GetAllArchitects(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetAllArchitects: Error from architectService.GetAllArchitects")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch architects.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, architects)
}

// GetArchitectByID handles fetching a single architect.
func (h *ArchitectHandler) GetArchitectByID(c *gin.Context) {
	id := c.Param("id")
	architect, err := h.architectService.GetArchitectByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetArchitectByID: Error from architectService.GetArchitectByID for ID "+id)
		if errors.Is(err, services.ErrArchitectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Architect not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch architect.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, architect)
}

// UpdateArchitect handles updating an architect contact.
func (h *ArchitectHandler) UpdateArchitect(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateArchitectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateArchitect: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	architect, err := h.architectService.UpdateArchitect(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "UpdateArchitect: Error from architectService.UpdateArchitect for ID "+id)
		if errors.Is(err, services.ErrArchitectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Architect not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrArchitectValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update architect.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, architect)
}

// DeleteArchitect handles deleting an architect contact.
func (h *ArchitectHandler) DeleteArchitect(c *gin.Context) {
	id := c.Param("id")
	if err := h.architectService.DeleteArchitect(c.Request.Context(), id); err != nil {
		utils.LogError(err, "DeleteArchitect: Error from architectService.DeleteArchitect for ID "+id)
		if errors.Is(err, services.ErrArchitectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Architect not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete architect.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Architect deleted successfully"})
}
