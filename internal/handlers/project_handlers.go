package handlers

import (
	"errors"
	"net/http"

	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProjectHandler holds the project service.
type ProjectHandler struct {
	projectService services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(ps services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// CreateProject handles the creation of a new project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProject: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateProject: Error from projectService.CreateProject")
		if errors.Is(err, services.ErrProjectValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProjectByID handles fetching a single project.
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id := c.Param("id")
	project, err := h.projectService.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetProjectByID: Error from projectService.GetProjectByID for ID "+id)
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetProjectsByUser returns the projects belonging to a user email.
func (h *ProjectHandler) GetProjectsByUser(c *gin.Context) {
	userEmail := c.Param("userEmail")
	if utils.IsEmpty(userEmail) {
		utils.RespondValidationFailed(c, "userEmail path parameter is required")
		return
	}

	projects, err := h.projectService.GetProjectsByUserEmail(c.Request.Context(), userEmail)
	if err != nil {
		utils.LogError(err, "GetProjectsByUser: Error from projectService.GetProjectsByUserEmail")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch projects.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, projects)
}

// UpdateProject handles updating a project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateProject: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "UpdateProject: Error from projectService.UpdateProject for ID "+id)
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrProjectValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles deleting a project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		utils.LogError(err, "DeleteProject: Error from projectService.DeleteProject for ID "+id)
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
