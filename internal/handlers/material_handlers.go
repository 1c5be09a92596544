package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MaterialHandler holds the material service.
type MaterialHandler struct {
	materialService services.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(ms services.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: ms}
}

func respondMaterialError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrMaterialNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material selection not found.", err.Error()))
	} else if errors.Is(err, services.ErrMaterialItemNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Material item not found.", err.Error()))
	} else if errors.Is(err, services.ErrProjectNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
	} else if errors.Is(err, services.ErrMaterialValidation) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	} else if errors.Is(err, services.ErrMaterialUpload) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeInternalServerError, "File upload failed.", err.Error()))
	} else {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

// AddMaterials handles multipart addition of material selections. Parallel
// fields: names[i] and colors[i] paired with files images[i].
func (h *MaterialHandler) AddMaterials(c *gin.Context) {
	projectID := c.PostForm("projectId")
	names := c.PostFormArray("names")
	colors := c.PostFormArray("colors")
	if len(names) == 0 {
		utils.RespondValidationFailed(c, "at least one item name is required")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondValidationFailed(c, "invalid multipart form: "+err.Error())
		return
	}
	images := form.File["images"]

	var closers []func()
	defer func() {
		for _, cl := range closers {
			cl()
		}
	}()

	items := make([]services.MaterialItemInput, 0, len(names))
	for i, name := range names {
		item := services.MaterialItemInput{Name: name}
		if i < len(colors) && colors[i] != "" {
			color := colors[i]
			item.Color = &color
		}
		if i < len(images) {
			upload, cl, err := openFormFile(images[i])
			if err != nil {
				utils.RespondValidationFailed(c, "invalid image upload: "+err.Error())
				return
			}
			closers = append(closers, cl)
			item.Image = upload
		}
		items = append(items, item)
	}

	material, err := h.materialService.AddMaterials(c.Request.Context(), services.AddMaterialsRequest{
		ProjectID: projectID,
		Items:     items,
	})
	if err != nil {
		utils.LogError(err, "AddMaterials: Error from materialService.AddMaterials")
		respondMaterialError(c, err, "add materials")
		return
	}
	c.JSON(http.StatusCreated, material)
}

// GetMaterialsByProject returns the material document of one project.
func (h *MaterialHandler) GetMaterialsByProject(c *gin.Context) {
	projectID := c.Param("projectId")
	material, err := h.materialService.GetMaterialsByProjectID(c.Request.Context(), projectID)
	if err != nil {
		utils.LogError(err, "GetMaterialsByProject: Error from materialService.GetMaterialsByProjectID for project "+projectID)
		respondMaterialError(c, err, "fetch materials")
		return
	}
	c.JSON(http.StatusOK, material)
}

// UpdateMaterialItem updates one material item, optionally replacing or
// removing its image.
func (h *MaterialHandler) UpdateMaterialItem(c *gin.Context) {
	projectID := c.Param("projectId")
	itemID := c.Param("itemId")

	req := services.UpdateMaterialItemRequest{
		Name:  optionalFormValue(c, "name"),
		Color: optionalFormValue(c, "color"),
	}
	if v, ok := c.GetPostForm("removeImage"); ok {
		removeImage, err := strconv.ParseBool(v)
		if err != nil {
			utils.RespondValidationFailed(c, "removeImage must be a boolean")
			return
		}
		req.RemoveImage = removeImage
	}

	image, closeImage, err := optionalFormFile(c, "image")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid image upload: "+err.Error())
		return
	}
	defer closeImage()
	req.Image = image

	material, err := h.materialService.UpdateMaterialItem(c.Request.Context(), projectID, itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateMaterialItem: Error from materialService.UpdateMaterialItem for project "+projectID)
		respondMaterialError(c, err, "update material item")
		return
	}
	c.JSON(http.StatusOK, material)
}

// RemoveMaterialItem removes one item and its stored image.
func (h *MaterialHandler) RemoveMaterialItem(c *gin.Context) {
	projectID := c.Param("projectId")
	itemID := c.Param("itemId")

	material, err := h.materialService.RemoveMaterialItem(c.Request.Context(), projectID, itemID)
	if err != nil {
		utils.LogError(err, "RemoveMaterialItem: Error from materialService.RemoveMaterialItem for project "+projectID)
		respondMaterialError(c, err, "remove material item")
		return
	}
	c.JSON(http.StatusOK, material)
}

// DeleteMaterials deletes a project's whole material document and its images.
func (h *MaterialHandler) DeleteMaterials(c *gin.Context) {
	projectID := c.Param("projectId")
	result, err := h.materialService.DeleteMaterials(c.Request.Context(), projectID)
	if err != nil {
		utils.LogError(err, "DeleteMaterials: Error from materialService.DeleteMaterials for project "+projectID)
		respondMaterialError(c, err, "delete materials")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Materials deleted successfully",
		"fileResults": result.FileResults,
	})
}
