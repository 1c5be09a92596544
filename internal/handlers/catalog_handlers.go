package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"
	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func respondCatalogError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrCatalogItemNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Catalog item not found.", err.Error()))
	} else if errors.Is(err, services.ErrCatalogValidation) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	} else if errors.Is(err, services.ErrCatalogUpload) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeInternalServerError, "File upload failed.", err.Error()))
	} else {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

func optionalFormValue(c *gin.Context, field string) *string {
	if v, ok := c.GetPostForm(field); ok {
		return &v
	}
	return nil
}

// CreateCatalogItem handles multipart creation of a catalog item with its
// optional image and video files.
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.RespondValidationFailed(c, "price must be a number")
		return
	}

	req := services.CreateCatalogItemRequest{
		Name:        c.PostForm("name"),
		Description: optionalFormValue(c, "description"),
		Department:  c.PostForm("department"),
		WorkType:    c.PostForm("workType"),
		Category:    c.PostForm("category"),
		Price:       price,
		Type:        c.PostForm("type"),
	}
	if v, ok := c.GetPostForm("displayedToClients"); ok {
		displayed, err := strconv.ParseBool(v)
		if err != nil {
			utils.RespondValidationFailed(c, "displayedToClients must be a boolean")
			return
		}
		req.DisplayedToClients = &displayed
	}

	image, closeImage, err := optionalFormFile(c, "image")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid image upload: "+err.Error())
		return
	}
	defer closeImage()
	req.Image = image

	video, closeVideo, err := optionalFormFile(c, "video")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid video upload: "+err.Error())
		return
	}
	defer closeVideo()
	req.Video = video

	item, err := h.catalogService.CreateCatalogItem(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateCatalogItem: Error from catalogService.CreateCatalogItem")
		respondCatalogError(c, err, "create catalog item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetCatalogItemByID handles fetching a single catalog item.
func (h *CatalogHandler) GetCatalogItemByID(c *gin.Context) {
	id := c.Param("id")
	item, err := h.catalogService.GetCatalogItemByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetCatalogItemByID: Error from catalogService.GetCatalogItemByID for ID "+id)
		respondCatalogError(c, err, "fetch catalog item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetCatalogItems lists catalog items filtered by path parameters.
func (h *CatalogHandler) GetCatalogItems(c *gin.Context) {
	filter := repositories.CatalogFilter{
		Department: c.Param("department"),
		WorkType:   c.Param("workType"),
		Category:   c.Param("category"),
		Type:       c.Param("type"),
	}

	items, err := h.catalogService.GetCatalogItems(c.Request.Context(), filter)
	if err != nil {
		utils.LogError(err, "GetCatalogItems: Error from catalogService.GetCatalogItems")
		respondCatalogError(c, err, "fetch catalog items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDepartments returns the department to work-type taxonomy.
func (h *CatalogHandler) GetDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, models.DepartmentWorkTypeMap())
}

// GetCatalogGrouped returns all items grouped as department -> workType -> items.
func (h *CatalogHandler) GetCatalogGrouped(c *gin.Context) {
	grouped, err := h.catalogService.GetCatalogGrouped(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetCatalogGrouped: Error from catalogService.GetCatalogGrouped")
		respondCatalogError(c, err, "fetch grouped catalog")
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// UpdateCatalogItem handles multipart updates, optionally replacing files.
func (h *CatalogHandler) UpdateCatalogItem(c *gin.Context) {
	id := c.Param("id")

	req := services.UpdateCatalogItemRequest{
		Name:        optionalFormValue(c, "name"),
		Description: optionalFormValue(c, "description"),
		Department:  optionalFormValue(c, "department"),
		WorkType:    optionalFormValue(c, "workType"),
		Category:    optionalFormValue(c, "category"),
		Type:        optionalFormValue(c, "type"),
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.RespondValidationFailed(c, "price must be a number")
			return
		}
		req.Price = &price
	}
	if v, ok := c.GetPostForm("displayedToClients"); ok {
		displayed, err := strconv.ParseBool(v)
		if err != nil {
			utils.RespondValidationFailed(c, "displayedToClients must be a boolean")
			return
		}
		req.DisplayedToClients = &displayed
	}

	image, closeImage, err := optionalFormFile(c, "image")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid image upload: "+err.Error())
		return
	}
	defer closeImage()
	req.Image = image

	video, closeVideo, err := optionalFormFile(c, "video")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid video upload: "+err.Error())
		return
	}
	defer closeVideo()
	req.Video = video

	item, err := h.catalogService.UpdateCatalogItem(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "UpdateCatalogItem: Error from catalogService.UpdateCatalogItem for ID "+id)
		respondCatalogError(c, err, "update catalog item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteCatalogItem handles deleting a catalog item along with its files.
func (h *CatalogHandler) DeleteCatalogItem(c *gin.Context) {
	id := c.Param("id")
	result, err := h.catalogService.DeleteCatalogItem(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "DeleteCatalogItem: Error from catalogService.DeleteCatalogItem for ID "+id)
		respondCatalogError(c, err, "delete catalog item")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Catalog item deleted successfully",
		"fileResults": result.FileResults,
	})
}
