package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"
	"homeveda_backend/internal/storage"
	"homeveda_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Materials ---
var (
	ErrMaterialNotFound     = errors.New("material selection not found")
	ErrMaterialItemNotFound = errors.New("material item not found")
	ErrMaterialValidation   = errors.New("material data validation error")
	ErrMaterialUpload       = errors.New("material file upload failed")
)

// --- Material DTOs ---

// MaterialItemInput carries one new material selection with its optional image.
type MaterialItemInput struct {
	Name  string
	Color *string
	Image *storage.FileUpload
}

type AddMaterialsRequest struct {
	ProjectID string
	Items     []MaterialItemInput
}

type UpdateMaterialItemRequest struct {
	Name        *string
	Color       *string
	Image       *storage.FileUpload
	RemoveImage bool
}

// DeleteMaterialsResult reports the outcome of removing a project's materials.
type DeleteMaterialsResult struct {
	FileResults []storage.DeleteResult `json:"fileResults"`
}

// --- MaterialService Interface ---
type MaterialService interface {
	// AddMaterials appends items to the project's material document, creating
	// the document on first use.
	AddMaterials(ctx context.Context, req AddMaterialsRequest) (*models.Material, error)
	GetMaterialsByProjectID(ctx context.Context, projectID string) (*models.Material, error)
	UpdateMaterialItem(ctx context.Context, projectID, itemID string, req UpdateMaterialItemRequest) (*models.Material, error)
	RemoveMaterialItem(ctx context.Context, projectID, itemID string) (*models.Material, error)
	DeleteMaterials(ctx context.Context, projectID string) (*DeleteMaterialsResult, error)
}

// --- materialService Implementation ---
type materialService struct {
	materialRepo repositories.MaterialRepository
	projectRepo  repositories.ProjectRepository
	store        storage.ObjectStorage
}

// NewMaterialService creates a new instance of MaterialService.
func NewMaterialService(materialRepo repositories.MaterialRepository, projectRepo repositories.ProjectRepository, store storage.ObjectStorage) MaterialService {
	return &materialService{
		materialRepo: materialRepo,
		projectRepo:  projectRepo,
		store:        store,
	}
}

func (s *materialService) uploadMaterialFile(ctx context.Context, file *storage.FileUpload, projectID string) (*string, error) {
	if file == nil {
		return nil, nil
	}
	key := storage.BuildKey(file.Filename, "projects", projectID, "material")
	url, err := s.store.Upload(ctx, key, file.Body, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMaterialUpload, err)
	}
	return &url, nil
}

func (s *materialService) buildItems(ctx context.Context, projectID string, inputs []MaterialItemInput) ([]models.MaterialItem, error) {
	items := make([]models.MaterialItem, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrMaterialValidation, i)
		}
		imageLink, err := s.uploadMaterialFile(ctx, in.Image, projectID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.MaterialItem{
			ID:        uuid.NewString(),
			Name:      in.Name,
			Color:     in.Color,
			ImageLink: imageLink,
		})
	}
	return items, nil
}

func (s *materialService) AddMaterials(ctx context.Context, req AddMaterialsRequest) (*models.Material, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, fmt.Errorf("%w: projectId cannot be empty", ErrMaterialValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrMaterialValidation)
	}
	if _, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project for materials: %w", err)
	}

	items, err := s.buildItems(ctx, req.ProjectID, req.Items)
	if err != nil {
		return nil, err
	}

	material, err := s.materialRepo.GetMaterialByProjectID(ctx, req.ProjectID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to get materials: %w", err)
		}
		// First selection for this project.
		now := timeNow()
		material = &models.Material{
			ID:        uuid.NewString(),
			ProjectID: req.ProjectID,
			Materials: items,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.materialRepo.CreateMaterial(ctx, material); err != nil {
			return nil, fmt.Errorf("failed to create material document: %w", err)
		}
		return material, nil
	}

	material.Materials = append(material.Materials, items...)
	material.UpdatedAt = timeNow()
	if err := s.materialRepo.UpdateMaterial(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to update material document: %w", err)
	}
	return material, nil
}

func (s *materialService) GetMaterialsByProjectID(ctx context.Context, projectID string) (*models.Material, error) {
	material, err := s.materialRepo.GetMaterialByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to get materials: %w", err)
	}
	return material, nil
}

func (s *materialService) UpdateMaterialItem(ctx context.Context, projectID, itemID string, req UpdateMaterialItemRequest) (*models.Material, error) {
	material, err := s.materialRepo.GetMaterialByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to find materials for update: %w", err)
	}

	idx := -1
	for i := range material.Materials {
		if material.Materials[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrMaterialItemNotFound
	}
	item := &material.Materials[idx]

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrMaterialValidation)
		}
		item.Name = *req.Name
	}
	if req.Color != nil {
		item.Color = req.Color
	}

	if req.RemoveImage || req.Image != nil {
		if item.ImageLink != nil {
			if err := s.store.Delete(ctx, *item.ImageLink); err != nil {
				utils.LogWarn(err, "material: failed to delete replaced image")
			}
			item.ImageLink = nil
		}
	}
	if req.Image != nil {
		link, err := s.uploadMaterialFile(ctx, req.Image, projectID)
		if err != nil {
			return nil, err
		}
		item.ImageLink = link
	}

	material.UpdatedAt = timeNow()
	if err := s.materialRepo.UpdateMaterial(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to update material document: %w", err)
	}
	return material, nil
}

func (s *materialService) RemoveMaterialItem(ctx context.Context, projectID, itemID string) (*models.Material, error) {
	material, err := s.materialRepo.GetMaterialByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to find materials for update: %w", err)
	}

	idx := -1
	for i := range material.Materials {
		if material.Materials[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrMaterialItemNotFound
	}

	item := material.Materials[idx]
	if item.ImageLink != nil && *item.ImageLink != "" {
		if err := s.store.Delete(ctx, *item.ImageLink); err != nil {
			utils.LogWarn(err, "material: failed to delete stored image "+*item.ImageLink)
		}
	}

	material.Materials = append(material.Materials[:idx], material.Materials[idx+1:]...)
	material.UpdatedAt = timeNow()

	if err := s.materialRepo.UpdateMaterial(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to update material document: %w", err)
	}
	return material, nil
}

// DeleteMaterials removes every item image concurrently, then the document.
// File deletion failures are reported, never fatal.
func (s *materialService) DeleteMaterials(ctx context.Context, projectID string) (*DeleteMaterialsResult, error) {
	material, err := s.materialRepo.GetMaterialByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to find materials for deletion: %w", err)
	}

	var urls []string
	for _, item := range material.Materials {
		if item.ImageLink != nil && *item.ImageLink != "" {
			urls = append(urls, *item.ImageLink)
		}
	}

	results := storage.DeleteAll(ctx, s.store, urls)
	for _, res := range results {
		if !res.OK {
			utils.LogWarn(errors.New(res.Error), "material: failed to delete stored file "+res.URL)
		}
	}

	if err := s.materialRepo.DeleteMaterialByProjectID(ctx, projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to delete material document: %w", err)
	}
	return &DeleteMaterialsResult{FileResults: results}, nil
}
