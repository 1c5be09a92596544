package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"
	"homeveda_backend/internal/storage"
	"homeveda_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Inspections ---
var (
	ErrInspectionNotFound   = errors.New("inspection not found")
	ErrInspectionValidation = errors.New("inspection data validation error")
	ErrInspectionUpload     = errors.New("inspection file upload failed")
)

// --- Inspection DTOs ---

// InspectionAspectInput carries the status and optional walkthrough video for
// one inspected aspect. A nil status keeps the current value on updates and
// defaults to Pending on creation.
type InspectionAspectInput struct {
	Status *string
	Video  *storage.FileUpload
}

type CreateInspectionRequest struct {
	ProjectID         string
	InspectionDate    *time.Time
	Plumbing          InspectionAspectInput
	Electricity       InspectionAspectInput
	ChimneyPoint      InspectionAspectInput
	FalseCeiling      InspectionAspectInput
	Flooring          InspectionAspectInput
	OtherVideos       []*storage.FileUpload
	ReadyForNextPhase *bool
}

type UpdateInspectionRequest struct {
	InspectionDate    *time.Time
	Plumbing          InspectionAspectInput
	Electricity       InspectionAspectInput
	ChimneyPoint      InspectionAspectInput
	FalseCeiling      InspectionAspectInput
	Flooring          InspectionAspectInput
	OtherVideos       []*storage.FileUpload
	ReadyForNextPhase *bool
}

// DeleteInspectionResult reports the outcome of removing an inspection.
type DeleteInspectionResult struct {
	FileResults []storage.DeleteResult `json:"fileResults"`
}

// --- InspectionService Interface ---
type InspectionService interface {
	CreateInspection(ctx context.Context, req CreateInspectionRequest) (*models.Inspection, error)
	GetInspectionByID(ctx context.Context, id string) (*models.Inspection, error)
	GetInspectionsByProjectID(ctx context.Context, projectID string) ([]models.Inspection, error)
	UpdateInspection(ctx context.Context, id string, req UpdateInspectionRequest) (*models.Inspection, error)
	// DeleteOtherVideo removes one extra video by its position in otherVideos.
	DeleteOtherVideo(ctx context.Context, id string, index int) (*models.Inspection, error)
	DeleteInspection(ctx context.Context, id string) (*DeleteInspectionResult, error)
}

// --- inspectionService Implementation ---
type inspectionService struct {
	inspectionRepo repositories.InspectionRepository
	projectRepo    repositories.ProjectRepository
	store          storage.ObjectStorage
}

// NewInspectionService creates a new instance of InspectionService.
func NewInspectionService(inspectionRepo repositories.InspectionRepository, projectRepo repositories.ProjectRepository, store storage.ObjectStorage) InspectionService {
	return &inspectionService{
		inspectionRepo: inspectionRepo,
		projectRepo:    projectRepo,
		store:          store,
	}
}

func (s *inspectionService) uploadInspectionFile(ctx context.Context, file *storage.FileUpload, projectID string) (*string, error) {
	if file == nil {
		return nil, nil
	}
	key := storage.BuildKey(file.Filename, "projects", projectID, "inspection")
	url, err := s.store.Upload(ctx, key, file.Body, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInspectionUpload, err)
	}
	return &url, nil
}

func resolveAspectStatus(input *string, current string) (string, error) {
	if input == nil {
		if current == "" {
			return models.InspectionPending, nil
		}
		return current, nil
	}
	if !models.IsValidInspectionStatus(*input) {
		return "", fmt.Errorf("%w: invalid status %q. Allowed: %s",
			ErrInspectionValidation, *input, strings.Join(models.InspectionStatuses(), ", "))
	}
	return *input, nil
}

// applyAspect resolves one aspect's status and replaces its video when a new
// file is supplied. Replacing deletes the previous object best effort.
func (s *inspectionService) applyAspect(ctx context.Context, in InspectionAspectInput, status *string, video **string, projectID string) error {
	resolved, err := resolveAspectStatus(in.Status, *status)
	if err != nil {
		return err
	}
	*status = resolved

	if in.Video != nil {
		if *video != nil {
			if err := s.store.Delete(ctx, **video); err != nil {
				utils.LogWarn(err, "inspection: failed to delete replaced video")
			}
		}
		link, err := s.uploadInspectionFile(ctx, in.Video, projectID)
		if err != nil {
			return err
		}
		*video = link
	}
	return nil
}

func (s *inspectionService) applyAspects(ctx context.Context, inspection *models.Inspection,
	plumbing, electricity, chimneyPoint, falseCeiling, flooring InspectionAspectInput) error {
	if err := s.applyAspect(ctx, plumbing, &inspection.PlumbingStatus, &inspection.PlumbingVideo, inspection.ProjectID); err != nil {
		return err
	}
	if err := s.applyAspect(ctx, electricity, &inspection.ElectricityStatus, &inspection.ElectricityVideo, inspection.ProjectID); err != nil {
		return err
	}
	if err := s.applyAspect(ctx, chimneyPoint, &inspection.ChimneyPointStatus, &inspection.ChimneyPointVideo, inspection.ProjectID); err != nil {
		return err
	}
	if err := s.applyAspect(ctx, falseCeiling, &inspection.FalseCeilingStatus, &inspection.FalseCeilingVideo, inspection.ProjectID); err != nil {
		return err
	}
	return s.applyAspect(ctx, flooring, &inspection.FlooringStatus, &inspection.FlooringVideo, inspection.ProjectID)
}

func (s *inspectionService) uploadOtherVideos(ctx context.Context, files []*storage.FileUpload, projectID string) ([]string, error) {
	urls := []string{}
	for _, f := range files {
		link, err := s.uploadInspectionFile(ctx, f, projectID)
		if err != nil {
			return nil, err
		}
		if link != nil {
			urls = append(urls, *link)
		}
	}
	return urls, nil
}

func (s *inspectionService) CreateInspection(ctx context.Context, req CreateInspectionRequest) (*models.Inspection, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, fmt.Errorf("%w: projectId cannot be empty", ErrInspectionValidation)
	}
	if _, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project for inspection: %w", err)
	}

	now := timeNow()
	inspection := &models.Inspection{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		InspectionDate: now,
		OtherVideos:    []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.InspectionDate != nil {
		inspection.InspectionDate = *req.InspectionDate
	}
	if req.ReadyForNextPhase != nil {
		inspection.ReadyForNextPhase = *req.ReadyForNextPhase
	}

	if err := s.applyAspects(ctx, inspection, req.Plumbing, req.Electricity, req.ChimneyPoint, req.FalseCeiling, req.Flooring); err != nil {
		return nil, err
	}
	extra, err := s.uploadOtherVideos(ctx, req.OtherVideos, req.ProjectID)
	if err != nil {
		return nil, err
	}
	inspection.OtherVideos = extra

	if err := s.inspectionRepo.CreateInspection(ctx, inspection); err != nil {
		return nil, fmt.Errorf("failed to create inspection in repository: %w", err)
	}
	return inspection, nil
}

func (s *inspectionService) GetInspectionByID(ctx context.Context, id string) (*models.Inspection, error) {
	inspection, err := s.inspectionRepo.GetInspectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	return inspection, nil
}

func (s *inspectionService) GetInspectionsByProjectID(ctx context.Context, projectID string) ([]models.Inspection, error) {
	inspections, err := s.inspectionRepo.GetInspectionsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspections: %w", err)
	}
	return inspections, nil
}

func (s *inspectionService) UpdateInspection(ctx context.Context, id string, req UpdateInspectionRequest) (*models.Inspection, error) {
	inspection, err := s.inspectionRepo.GetInspectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to find inspection for update: %w", err)
	}

	if req.InspectionDate != nil {
		inspection.InspectionDate = *req.InspectionDate
	}
	if req.ReadyForNextPhase != nil {
		inspection.ReadyForNextPhase = *req.ReadyForNextPhase
	}

	if err := s.applyAspects(ctx, inspection, req.Plumbing, req.Electricity, req.ChimneyPoint, req.FalseCeiling, req.Flooring); err != nil {
		return nil, err
	}
	extra, err := s.uploadOtherVideos(ctx, req.OtherVideos, inspection.ProjectID)
	if err != nil {
		return nil, err
	}
	inspection.OtherVideos = append(inspection.OtherVideos, extra...)

	inspection.UpdatedAt = timeNow()
	if err := s.inspectionRepo.UpdateInspection(ctx, inspection); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to update inspection in repository: %w", err)
	}
	return inspection, nil
}

func (s *inspectionService) DeleteOtherVideo(ctx context.Context, id string, index int) (*models.Inspection, error) {
	inspection, err := s.inspectionRepo.GetInspectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to find inspection for update: %w", err)
	}

	if index < 0 || index >= len(inspection.OtherVideos) {
		return nil, fmt.Errorf("%w: video index %d out of range", ErrInspectionValidation, index)
	}

	fileURL := inspection.OtherVideos[index]
	if err := s.store.Delete(ctx, fileURL); err != nil {
		utils.LogWarn(err, "inspection: failed to delete stored video "+fileURL)
	}

	inspection.OtherVideos = append(inspection.OtherVideos[:index], inspection.OtherVideos[index+1:]...)
	inspection.UpdatedAt = timeNow()

	if err := s.inspectionRepo.UpdateInspection(ctx, inspection); err != nil {
		return nil, fmt.Errorf("failed to update inspection in repository: %w", err)
	}
	return inspection, nil
}

// DeleteInspection removes every stored video concurrently, then the record.
// File deletion failures are reported, never fatal.
func (s *inspectionService) DeleteInspection(ctx context.Context, id string) (*DeleteInspectionResult, error) {
	inspection, err := s.inspectionRepo.GetInspectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to find inspection for deletion: %w", err)
	}

	results := storage.DeleteAll(ctx, s.store, inspection.VideoURLs())
	for _, res := range results {
		if !res.OK {
			utils.LogWarn(errors.New(res.Error), "inspection: failed to delete stored file "+res.URL)
		}
	}

	if err := s.inspectionRepo.DeleteInspection(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInspectionNotFound
		}
		return nil, fmt.Errorf("failed to delete inspection: %w", err)
	}
	return &DeleteInspectionResult{FileResults: results}, nil
}
