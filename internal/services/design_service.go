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

// --- Custom Service Errors for Designs ---
var (
	ErrDesignNotFound     = errors.New("design not found")
	ErrDesignItemNotFound = errors.New("design item not found")
	ErrDesignValidation   = errors.New("design data validation error")
	ErrDesignUpload       = errors.New("design file upload failed")
)

// --- Design DTOs ---

// DesignItemInput carries one new design item with its optional files.
type DesignItemInput struct {
	Name   string
	Image  *storage.FileUpload
	Design *storage.FileUpload
}

type CreateDesignRequest struct {
	ProjectID string
	Items     []DesignItemInput
}

type UpdateDesignItemRequest struct {
	Name   *string
	Image  *storage.FileUpload
	Design *storage.FileUpload
}

// DeleteDesignResult reports the outcome of removing a design document.
type DeleteDesignResult struct {
	FileResults []storage.DeleteResult `json:"fileResults"`
}

// --- DesignService Interface ---
type DesignService interface {
	CreateDesign(ctx context.Context, req CreateDesignRequest) (*models.Design, error)
	GetDesignByID(ctx context.Context, id string) (*models.Design, error)
	GetDesignsByProjectID(ctx context.Context, projectID string) ([]models.Design, error)
	AddDesignItems(ctx context.Context, designID string, items []DesignItemInput) (*models.Design, error)
	UpdateDesignItem(ctx context.Context, designID, itemID string, req UpdateDesignItemRequest) (*models.Design, error)
	DeleteDesignItem(ctx context.Context, designID, itemID string) (*models.Design, error)
	DeleteDesign(ctx context.Context, id string) (*DeleteDesignResult, error)
}

// --- designService Implementation ---
type designService struct {
	designRepo  repositories.DesignRepository
	projectRepo repositories.ProjectRepository
	store       storage.ObjectStorage
}

// NewDesignService creates a new instance of DesignService.
func NewDesignService(designRepo repositories.DesignRepository, projectRepo repositories.ProjectRepository, store storage.ObjectStorage) DesignService {
	return &designService{
		designRepo:  designRepo,
		projectRepo: projectRepo,
		store:       store,
	}
}

func (s *designService) uploadDesignFile(ctx context.Context, file *storage.FileUpload, projectID string) (*string, error) {
	if file == nil {
		return nil, nil
	}
	key := storage.BuildKey(file.Filename, projectID, "designs")
	url, err := s.store.Upload(ctx, key, file.Body, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDesignUpload, err)
	}
	return &url, nil
}

func (s *designService) buildItems(ctx context.Context, projectID string, inputs []DesignItemInput) ([]models.DesignItem, error) {
	items := make([]models.DesignItem, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrDesignValidation, i)
		}
		imageLink, err := s.uploadDesignFile(ctx, in.Image, projectID)
		if err != nil {
			return nil, err
		}
		designLink, err := s.uploadDesignFile(ctx, in.Design, projectID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.DesignItem{
			ID:         uuid.NewString(),
			Name:       in.Name,
			ImageLink:  imageLink,
			DesignLink: designLink,
		})
	}
	return items, nil
}

func (s *designService) CreateDesign(ctx context.Context, req CreateDesignRequest) (*models.Design, error) {
	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, fmt.Errorf("%w: projectId cannot be empty", ErrDesignValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrDesignValidation)
	}
	if len(req.Items) > models.MaxDesignItems {
		return nil, fmt.Errorf("%w: at most %d items are allowed", ErrDesignValidation, models.MaxDesignItems)
	}
	if _, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project for design: %w", err)
	}

	items, err := s.buildItems(ctx, req.ProjectID, req.Items)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	design := &models.Design{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.designRepo.CreateDesign(ctx, design); err != nil {
		return nil, fmt.Errorf("failed to create design in repository: %w", err)
	}
	return design, nil
}

func (s *designService) GetDesignByID(ctx context.Context, id string) (*models.Design, error) {
	design, err := s.designRepo.GetDesignByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to get design: %w", err)
	}
	return design, nil
}

func (s *designService) GetDesignsByProjectID(ctx context.Context, projectID string) ([]models.Design, error) {
	designs, err := s.designRepo.GetDesignsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get designs: %w", err)
	}
	return designs, nil
}

func (s *designService) AddDesignItems(ctx context.Context, designID string, items []DesignItemInput) (*models.Design, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrDesignValidation)
	}
	design, err := s.designRepo.GetDesignByID(ctx, designID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to find design for update: %w", err)
	}
	if len(design.Items)+len(items) > models.MaxDesignItems {
		return nil, fmt.Errorf("%w: at most %d items are allowed", ErrDesignValidation, models.MaxDesignItems)
	}

	built, err := s.buildItems(ctx, design.ProjectID, items)
	if err != nil {
		return nil, err
	}
	design.Items = append(design.Items, built...)
	design.UpdatedAt = timeNow()

	if err := s.designRepo.UpdateDesign(ctx, design); err != nil {
		return nil, fmt.Errorf("failed to update design in repository: %w", err)
	}
	return design, nil
}

func (s *designService) UpdateDesignItem(ctx context.Context, designID, itemID string, req UpdateDesignItemRequest) (*models.Design, error) {
	design, err := s.designRepo.GetDesignByID(ctx, designID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to find design for update: %w", err)
	}

	idx := -1
	for i := range design.Items {
		if design.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrDesignItemNotFound
	}
	item := &design.Items[idx]

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrDesignValidation)
		}
		item.Name = *req.Name
	}
	if req.Image != nil {
		if item.ImageLink != nil {
			if err := s.store.Delete(ctx, *item.ImageLink); err != nil {
				utils.LogWarn(err, "design: failed to delete replaced image")
			}
		}
		link, err := s.uploadDesignFile(ctx, req.Image, design.ProjectID)
		if err != nil {
			return nil, err
		}
		item.ImageLink = link
	}
	if req.Design != nil {
		if item.DesignLink != nil {
			if err := s.store.Delete(ctx, *item.DesignLink); err != nil {
				utils.LogWarn(err, "design: failed to delete replaced design file")
			}
		}
		link, err := s.uploadDesignFile(ctx, req.Design, design.ProjectID)
		if err != nil {
			return nil, err
		}
		item.DesignLink = link
	}

	design.UpdatedAt = timeNow()
	if err := s.designRepo.UpdateDesign(ctx, design); err != nil {
		return nil, fmt.Errorf("failed to update design in repository: %w", err)
	}
	return design, nil
}

func (s *designService) DeleteDesignItem(ctx context.Context, designID, itemID string) (*models.Design, error) {
	design, err := s.designRepo.GetDesignByID(ctx, designID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to find design for update: %w", err)
	}

	idx := -1
	for i := range design.Items {
		if design.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrDesignItemNotFound
	}

	item := design.Items[idx]
	for _, link := range []*string{item.ImageLink, item.DesignLink} {
		if link == nil || *link == "" {
			continue
		}
		if err := s.store.Delete(ctx, *link); err != nil {
			utils.LogWarn(err, "design: failed to delete stored file "+*link)
		}
	}

	design.Items = append(design.Items[:idx], design.Items[idx+1:]...)
	design.UpdatedAt = timeNow()

	if err := s.designRepo.UpdateDesign(ctx, design); err != nil {
		return nil, fmt.Errorf("failed to update design in repository: %w", err)
	}
	return design, nil
}

// DeleteDesign removes all stored files of the design concurrently, then the
// document. File deletion failures are reported, never fatal.
func (s *designService) DeleteDesign(ctx context.Context, id string) (*DeleteDesignResult, error) {
	design, err := s.designRepo.GetDesignByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to find design for deletion: %w", err)
	}

	var urls []string
	for _, item := range design.Items {
		if item.ImageLink != nil && *item.ImageLink != "" {
			urls = append(urls, *item.ImageLink)
		}
		if item.DesignLink != nil && *item.DesignLink != "" {
			urls = append(urls, *item.DesignLink)
		}
	}

	results := storage.DeleteAll(ctx, s.store, urls)
	for _, res := range results {
		if !res.OK {
			utils.LogWarn(errors.New(res.Error), "design: failed to delete stored file "+res.URL)
		}
	}

	if err := s.designRepo.DeleteDesign(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to delete design: %w", err)
	}
	return &DeleteDesignResult{FileResults: results}, nil
}
