package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"homeveda_backend/internal/services"
	"homeveda_backend/internal/storage"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InspectionHandler holds the inspection service.
type InspectionHandler struct {
	inspectionService services.InspectionService
}

// NewInspectionHandler creates a new InspectionHandler.
func NewInspectionHandler(is services.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionService: is}
}

func respondInspectionError(c *gin.Context, err error, action string) {
	if errors.Is(err, services.ErrInspectionNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inspection not found.", err.Error()))
	} else if errors.Is(err, services.ErrProjectNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
	} else if errors.Is(err, services.ErrInspectionValidation) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	} else if errors.Is(err, services.ErrInspectionUpload) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeInternalServerError, "File upload failed.", err.Error()))
	} else {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to "+action+".", "Internal error"))
	}
}

// inspectionForm collects the multipart fields shared by create and update.
type inspectionForm struct {
	date        *time.Time
	ready       *bool
	aspects     map[string]services.InspectionAspectInput
	otherVideos []*storage.FileUpload
	closeAll    func()
}

var inspectionAspectFields = []struct {
	statusField string
	videoField  string
}{
	{"plumbingStatus", "plumbingVideo"},
	{"electricityStatus", "electricityVideo"},
	{"chimneyPointStatus", "chimneyPointVideo"},
	{"falseCeilingStatus", "falseCeilingVideo"},
	{"flooringStatus", "flooringVideo"},
}

func bindInspectionForm(c *gin.Context) (*inspectionForm, bool) {
	form := &inspectionForm{aspects: make(map[string]services.InspectionAspectInput)}

	var closers []func()
	form.closeAll = func() {
		for _, cl := range closers {
			cl()
		}
	}

	if v, ok := c.GetPostForm("inspectionDate"); ok {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondValidationFailed(c, "inspectionDate must be RFC3339")
			return nil, false
		}
		form.date = &parsed
	}
	if v, ok := c.GetPostForm("readyForNextPhase"); ok {
		ready, err := strconv.ParseBool(v)
		if err != nil {
			utils.RespondValidationFailed(c, "readyForNextPhase must be a boolean")
			return nil, false
		}
		form.ready = &ready
	}

	for _, aspect := range inspectionAspectFields {
		input := services.InspectionAspectInput{
			Status: optionalFormValue(c, aspect.statusField),
		}
		upload, cl, err := optionalFormFile(c, aspect.videoField)
		if err != nil {
			form.closeAll()
			utils.RespondValidationFailed(c, "invalid "+aspect.videoField+" upload: "+err.Error())
			return nil, false
		}
		closers = append(closers, cl)
		input.Video = upload
		form.aspects[aspect.statusField] = input
	}

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for _, fh := range mf.File["otherVideos"] {
			upload, cl, err := openFormFile(fh)
			if err != nil {
				form.closeAll()
				utils.RespondValidationFailed(c, "invalid otherVideos upload: "+err.Error())
				return nil, false
			}
			closers = append(closers, cl)
			form.otherVideos = append(form.otherVideos, upload)
		}
	}
	return form, true
}

// CreateInspection handles multipart creation of a site inspection.
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	form, ok := bindInspectionForm(c)
	if !ok {
		return
	}
	defer form.closeAll()

	req := services.CreateInspectionRequest{
		ProjectID:         c.PostForm("projectId"),
		InspectionDate:    form.date,
		Plumbing:          form.aspects["plumbingStatus"],
		Electricity:       form.aspects["electricityStatus"],
		ChimneyPoint:      form.aspects["chimneyPointStatus"],
		FalseCeiling:      form.aspects["falseCeilingStatus"],
		Flooring:          form.aspects["flooringStatus"],
		OtherVideos:       form.otherVideos,
		ReadyForNextPhase: form.ready,
	}

	inspection, err := h.inspectionService.CreateInspection(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateInspection: Error from inspectionService.CreateInspection")
		respondInspectionError(c, err, "create inspection")
		return
	}
	c.JSON(http.StatusCreated, inspection)
}

// GetInspectionByID handles fetching a single inspection.
func (h *InspectionHandler) GetInspectionByID(c *gin.Context) {
	id := c.Param("id")
	inspection, err := h.inspectionService.GetInspectionByID(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "GetInspectionByID: Error from inspectionService.GetInspectionByID for ID "+id)
		respondInspectionError(c, err, "fetch inspection")
		return
	}
	c.JSON(http.StatusOK, inspection)
}

// GetInspectionsByProject lists all inspections of one project.
func (h *InspectionHandler) GetInspectionsByProject(c *gin.Context) {
	projectID := c.Param("projectId")
	inspections, err := h.inspectionService.GetInspectionsByProjectID(c.Request.Context(), projectID)
	if err != nil {
		utils.LogError(err, "GetInspectionsByProject: Error from inspectionService.GetInspectionsByProjectID for project "+projectID)
		respondInspectionError(c, err, "fetch inspections")
		return
	}
	c.JSON(http.StatusOK, inspections)
}

// UpdateInspection handles multipart updates of an inspection.
func (h *InspectionHandler) UpdateInspection(c *gin.Context) {
	id := c.Param("id")

	form, ok := bindInspectionForm(c)
	if !ok {
		return
	}
	defer form.closeAll()

	req := services.UpdateInspectionRequest{
		InspectionDate:    form.date,
		Plumbing:          form.aspects["plumbingStatus"],
		Electricity:       form.aspects["electricityStatus"],
		ChimneyPoint:      form.aspects["chimneyPointStatus"],
		FalseCeiling:      form.aspects["falseCeilingStatus"],
		Flooring:          form.aspects["flooringStatus"],
		OtherVideos:       form.otherVideos,
		ReadyForNextPhase: form.ready,
	}

	inspection, err := h.inspectionService.UpdateInspection(c.Request.Context(), id, req)
	if err != nil {
		utils.LogError(err, "UpdateInspection: Error from inspectionService.UpdateInspection for ID "+id)
		respondInspectionError(c, err, "update inspection")
		return
	}
	c.JSON(http.StatusOK, inspection)
}

// DeleteOtherVideo removes one extra video from an inspection by index.
func (h *InspectionHandler) DeleteOtherVideo(c *gin.Context) {
	id := c.Param("id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondValidationFailed(c, "video index must be an integer")
		return
	}

	inspection, err := h.inspectionService.DeleteOtherVideo(c.Request.Context(), id, index)
	if err != nil {
		utils.LogError(err, "DeleteOtherVideo: Error from inspectionService.DeleteOtherVideo for ID "+id)
		respondInspectionError(c, err, "delete inspection video")
		return
	}
	c.JSON(http.StatusOK, inspection)
}

// DeleteInspection handles deleting an inspection along with its videos.
func (h *InspectionHandler) DeleteInspection(c *gin.Context) {
	id := c.Param("id")
	result, err := h.inspectionService.DeleteInspection(c.Request.Context(), id)
	if err != nil {
		utils.LogError(err, "DeleteInspection: Error from inspectionService.DeleteInspection for ID "+id)
		respondInspectionError(c, err, "delete inspection")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Inspection deleted successfully",
		"fileResults": result.FileResults,
	})
}
