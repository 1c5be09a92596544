package handlers

import (
	"errors"
	"net/http"

	"homeveda_backend/internal/services"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DesignHandler holds the design service.
type DesignHandler struct {
	designService services.DesignService
}

// NewDesignHandler creates a new DesignHandler.
func NewDesignHandler(ds services.DesignService) *DesignHandler {
	return &DesignHandler{designService: ds}
}

func respondDesignError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrDesignNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Design not found.", err.Error()))
	} else if errors.Is(err, services.ErrDesignItemNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Design item not found.", err.Error()))
	} else if errors.Is(err, services.ErrProjectNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
	} else if errors.Is(err, services.ErrDesignValidation) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	} else if errors.Is(err, services.ErrDesignUpload) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeInternalServerError, "File upload failed.", err.Error()))
	} else {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

// bindDesignItems reads parallel multipart fields into item inputs: names[i]
// paired with files images[i] and designs[i].
func bindDesignItems(c *gin.Context) ([]services.DesignItemInput, func(), bool) {
	names := c.PostFormArray("names")
	if len(names) == 0 {
		utils.RespondValidationFailed(c, "at least one item name is required")
		return nil, func() {}, false
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondValidationFailed(c, "invalid multipart form: "+err.Error())
		return nil, func() {}, false
	}
	images := form.File["images"]
	designs := form.File["designs"]

	var closers []func()
	closeAll := func() {
		for _, cl := range closers {
			cl()
		}
	}

	items := make([]services.DesignItemInput, 0, len(names))
	for i, name := range names {
		item := services.DesignItemInput{Name: name}
		if i < len(images) {
			upload, cl, err := openFormFile(images[i])
			if err != nil {
				closeAll()
				utils.RespondValidationFailed(c, "invalid image upload: "+err.Error())
				return nil, func() {}, false
			}
			closers = append(closers, cl)
			item.Image = upload
		}
		if i < len(designs) {
			upload, cl, err := openFormFile(designs[i])
			if err != nil {
				closeAll()
				utils.RespondValidationFailed(c, "invalid design upload: "+err.Error())
				return nil, func() {}, false
			}
			closers = append(closers, cl)
			item.Design = upload
		}
		items = append(items, item)
	}
	return items, closeAll, true
}

// CreateDesign handles multipart creation of a design with its items.
func (h *DesignHandler) CreateDesign(c *gin.Context) {
	projectID := c.PostForm("projectId")
	items, closeAll, ok := bindDesignItems(c)
	if !ok {
		return
	}
	defer closeAll()

	design, err := h.designService.CreateDesign(c.Request.Context(), services.CreateDesignRequest{
		ProjectID: projectID,
		Items:     items,
	})
	if err != nil {
		utils.LogError(err, "CreateDesign: Error from designService.CreateDesign")
		respondDesignError(c, err, "create design")
		return
	}
	c.JSON(http.StatusCreated, design)
}

// GetDesignByID handles fetching a single design.
func (h *DesignHandler) GetDesignByID(c *gin.Context) {
	id := c.Param("id")
	design, err := h.designService.GetDesignByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetDesignByID: Error from designService.GetDesignByID for ID "+id)
		respondDesignError(c, err, "fetch design")
		return
	}
	c.JSON(http.StatusOK, design)
}

// GetDesignsByProject lists all designs of one project.
func (h *DesignHandler) GetDesignsByProject(c *gin.Context) {
	projectID := c.Param("projectId")
	designs, err := h.designService.GetDesignsByProjectID(c.Request.Context(), projectID)
	if err != nil {
		utils.LogError(err, "GetDesignsByProject: Error from designService.GetDesignsByProjectID for project "+projectID)
		respondDesignError(c, err, "fetch designs")
		return
	}
	c.JSON(http.StatusOK, designs)
}

// AddDesignItems appends items to an existing design.
func (h *DesignHandler) AddDesignItems(c *gin.Context) {
	id := c.Param("id")
	items, closeAll, ok := bindDesignItems(c)
	if !ok {
		return
	}
	defer closeAll()

	design, err := h.designService.AddDesignItems(c.Request.Context(), id, items)
	if err != nil {
		utils.LogError(err, "AddDesignItems: Error from designService.AddDesignItems for ID "+id)
		respondDesignError(c, err, "add design items")
		return
	}
	c.JSON(http.StatusOK, design)
}

// UpdateDesignItem updates one design item, optionally replacing its files.
func (h *DesignHandler) UpdateDesignItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")

	req := services.UpdateDesignItemRequest{
		Name: optionalFormValue(c, "name"),
	}

	image, closeImage, err := optionalFormFile(c, "image")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid image upload: "+err.Error())
		return
	}
	defer closeImage()
	req.Image = image

	designFile, closeDesign, err := optionalFormFile(c, "design")
	if err != nil {
		utils.RespondValidationFailed(c, "invalid design upload: "+err.Error())
		return
	}
	defer closeDesign()
	req.Design = designFile

	design, err := h.designService.UpdateDesignItem(c.Request.Context(), id, itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateDesignItem: Error from designService.UpdateDesignItem for ID "+id)
		respondDesignError(c, err, "update design item")
		return
	}
	c.JSON(http.StatusOK, design)
}

// DeleteDesignItem removes one item and its stored files.
func (h *DesignHandler) DeleteDesignItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")

	design, err := h.designService.DeleteDesignItem(c.Request.Context(), id, itemID)
	if err != nil {
		utils.LogError(err, "DeleteDesignItem: Error from designService.DeleteDesignItem for ID "+id)
		respondDesignError(c, err, "delete design item")
		return
	}
	c.JSON(http.StatusOK, design)
}

// DeleteDesign handles deleting a design along with its files.
func (h *DesignHandler) DeleteDesign(c *gin.Context) {
	id := c.Param("id")
	result, err := h.designService.DeleteDesign(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "DeleteDesign: Error from designService.DeleteDesign for ID "+id)
		respondDesignError(c, err, "delete design")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Design deleted successfully",
		"fileResults": result.FileResults,
	})
}
