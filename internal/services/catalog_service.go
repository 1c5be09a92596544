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

// --- Custom Service Errors for Catalog ---
var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrCatalogValidation   = errors.New("catalog data validation error")
	ErrCatalogUpload       = errors.New("catalog file upload failed")
)

// --- Catalog DTOs ---

type CreateCatalogItemRequest struct {
	Name               string
	Description        *string
	Department         string
	WorkType           string
	Category           string
	Price              float64
	Type               string
	DisplayedToClients *bool
	Image              *storage.FileUpload
	Video              *storage.FileUpload
}

type UpdateCatalogItemRequest struct {
	Name               *string
	Description        *string
	Department         *string
	WorkType           *string
	Category           *string
	Price              *float64
	Type               *string
	DisplayedToClients *bool
	Image              *storage.FileUpload
	Video              *storage.FileUpload
}

// DeleteCatalogItemResult reports the outcome of removing a catalog item:
// the record is always gone, but individual file deletions may have failed.
type DeleteCatalogItemResult struct {
	FileResults []storage.DeleteResult `json:"fileResults"`
}

// --- CatalogService Interface ---
type CatalogService interface {
	CreateCatalogItem(ctx context.Context, req CreateCatalogItemRequest) (*models.CatalogItem, error)
	GetCatalogItemByID(ctx context.Context, id string) (*models.CatalogItem, error)
	GetCatalogItems(ctx context.Context, filter repositories.CatalogFilter) ([]models.CatalogItem, error)
	// GetCatalogGrouped arranges items as department -> workType -> items.
	GetCatalogGrouped(ctx context.Context) (map[string]map[string][]models.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, id string, req UpdateCatalogItemRequest) (*models.CatalogItem, error)
	DeleteCatalogItem(ctx context.Context, id string) (*DeleteCatalogItemResult, error)
}

// --- catalogService Implementation ---
type catalogService struct {
	catalogRepo repositories.CatalogRepository
	store       storage.ObjectStorage
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(catalogRepo repositories.CatalogRepository, store storage.ObjectStorage) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		store:       store,
	}
}

func validateCatalogEnums(department, workType, category, itemType string) error {
	if !models.IsValidDepartment(department) {
		return fmt.Errorf("%w: invalid department %q. Allowed: %s", ErrCatalogValidation, department, strings.Join(models.Departments(), ", "))
	}
	if !models.IsValidWorkType(department, workType) {
		return fmt.Errorf("%w: work type %q is not valid for department %q. Allowed: %s",
			ErrCatalogValidation, workType, department, models.AllowedWorkTypesMessage(department))
	}
	if !models.IsValidCategory(category) {
		return fmt.Errorf("%w: invalid category %q. Allowed: %s", ErrCatalogValidation, category, strings.Join(models.Categories(), ", "))
	}
	if !models.IsValidCatalogType(itemType) {
		return fmt.Errorf("%w: invalid type %q. Allowed: %s", ErrCatalogValidation, itemType, strings.Join(models.CatalogTypes(), ", "))
	}
	return nil
}

func (s *catalogService) uploadCatalogFile(ctx context.Context, file *storage.FileUpload, category, department string) (*string, error) {
	if file == nil {
		return nil, nil
	}
	key := storage.BuildKey(file.Filename, "catalog", category, department)
	url, err := s.store.Upload(ctx, key, file.Body, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUpload, err)
	}
	return &url, nil
}

func (s *catalogService) CreateCatalogItem(ctx context.Context, req CreateCatalogItemRequest) (*models.CatalogItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrCatalogValidation)
	}
	if err := validateCatalogEnums(req.Department, req.WorkType, req.Category, req.Type); err != nil {
		return nil, err
	}
	// Premium items are presented to clients with visuals; an image is mandatory.
	if req.Type == models.CatalogTypePremium && req.Image == nil {
		return nil, fmt.Errorf("%w: an image is required for Premium catalog items", ErrCatalogValidation)
	}

	imageLink, err := s.uploadCatalogFile(ctx, req.Image, req.Category, req.Department)
	if err != nil {
		return nil, err
	}
	videoLink, err := s.uploadCatalogFile(ctx, req.Video, req.Category, req.Department)
	if err != nil {
		return nil, err
	}

	displayed := true
	if req.DisplayedToClients != nil {
		displayed = *req.DisplayedToClients
	}

	now := timeNow()
	item := &models.CatalogItem{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		ImageLink:          imageLink,
		Video:              videoLink,
		Department:         req.Department,
		WorkType:           req.WorkType,
		Category:           req.Category,
		Price:              req.Price,
		Type:               req.Type,
		DisplayedToClients: displayed,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.catalogRepo.CreateCatalogItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create catalog item in repository: %w", err)
	}
	return item, nil
}

func (s *catalogService) GetCatalogItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	item, err := s.catalogRepo.GetCatalogItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return item, nil
}

func (s *catalogService) GetCatalogItems(ctx context.Context, filter repositories.CatalogFilter) ([]models.CatalogItem, error) {
	if filter.Department != "" && !models.IsValidDepartment(filter.Department) {
		return nil, fmt.Errorf("%w: invalid department %q. Allowed: %s", ErrCatalogValidation, filter.Department, strings.Join(models.Departments(), ", "))
	}
	items, err := s.catalogRepo.GetCatalogItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog items: %w", err)
	}
	return items, nil
}

func (s *catalogService) GetCatalogGrouped(ctx context.Context) (map[string]map[string][]models.CatalogItem, error) {
	items, err := s.catalogRepo.GetCatalogItems(ctx, repositories.CatalogFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog items: %w", err)
	}

	grouped := make(map[string]map[string][]models.CatalogItem)
	for _, item := range items {
		if grouped[item.Department] == nil {
			grouped[item.Department] = make(map[string][]models.CatalogItem)
		}
		grouped[item.Department][item.WorkType] = append(grouped[item.Department][item.WorkType], item)
	}
	return grouped, nil
}

func (s *catalogService) UpdateCatalogItem(ctx context.Context, id string, req UpdateCatalogItemRequest) (*models.CatalogItem, error) {
	item, err := s.catalogRepo.GetCatalogItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to find catalog item for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrCatalogValidation)
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrCatalogValidation)
		}
		item.Price = *req.Price
	}

	department := item.Department
	workType := item.WorkType
	category := item.Category
	itemType := item.Type
	if req.Department != nil {
		department = *req.Department
	}
	if req.WorkType != nil {
		workType = *req.WorkType
	}
	if req.Category != nil {
		category = *req.Category
	}
	if req.Type != nil {
		itemType = *req.Type
	}
	if err := validateCatalogEnums(department, workType, category, itemType); err != nil {
		return nil, err
	}
	if itemType == models.CatalogTypePremium && item.ImageLink == nil && req.Image == nil {
		return nil, fmt.Errorf("%w: an image is required for Premium catalog items", ErrCatalogValidation)
	}
	item.Department = department
	item.WorkType = workType
	item.Category = category
	item.Type = itemType

	if req.DisplayedToClients != nil {
		item.DisplayedToClients = *req.DisplayedToClients
	}

	if req.Image != nil {
		// Best effort: losing the old object must not block the new upload.
		if item.ImageLink != nil {
			if err := s.store.Delete(ctx, *item.ImageLink); err != nil {
				utils.LogWarn(err, "catalog: failed to delete replaced image")
			}
		}
		link, err := s.uploadCatalogFile(ctx, req.Image, item.Category, item.Department)
		if err != nil {
			return nil, err
		}
		item.ImageLink = link
	}
	if req.Video != nil {
		if item.Video != nil {
			if err := s.store.Delete(ctx, *item.Video); err != nil {
				utils.LogWarn(err, "catalog: failed to delete replaced video")
			}
		}
		link, err := s.uploadCatalogFile(ctx, req.Video, item.Category, item.Department)
		if err != nil {
			return nil, err
		}
		item.Video = link
	}

	item.UpdatedAt = timeNow()
	if err := s.catalogRepo.UpdateCatalogItem(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to update catalog item in repository: %w", err)
	}
	return item, nil
}

// DeleteCatalogItem removes the stored image and video concurrently, then the
// record itself. File deletion failures are reported, never fatal.
func (s *catalogService) DeleteCatalogItem(ctx context.Context, id string) (*DeleteCatalogItemResult, error) {
	item, err := s.catalogRepo.GetCatalogItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to find catalog item for deletion: %w", err)
	}

	var urls []string
	if item.ImageLink != nil && *item.ImageLink != "" {
		urls = append(urls, *item.ImageLink)
	}
	if item.Video != nil && *item.Video != "" {
		urls = append(urls, *item.Video)
	}

	results := storage.DeleteAll(ctx, s.store, urls)
	for _, res := range results {
		if !res.OK {
			utils.LogWarn(errors.New(res.Error), "catalog: failed to delete stored file "+res.URL)
		}
	}

	if err := s.catalogRepo.DeleteCatalogItem(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("failed to delete catalog item: %w", err)
	}
	return &DeleteCatalogItemResult{FileResults: results}, nil
}
