package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Project ---
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectValidation = errors.New("project data validation error")
)

// --- Project DTOs ---

type CreateProjectRequest struct {
	UserEmail     string                 `json:"userEmail" binding:"required"`
	ArchitectName *string                `json:"architectName"`
	Category      *string                `json:"category"`
	Status        *string                `json:"status"`
	Kitchen       *models.KitchenConfig  `json:"kitchen"`
	Wardrobe      *models.WardrobeConfig `json:"wardrobe"`
}

type UpdateProjectRequest struct {
	ArchitectName *string                `json:"architectName"`
	Category      *string                `json:"category"`
	Status        *string                `json:"status"`
	Kitchen       *models.KitchenConfig  `json:"kitchen"`
	Wardrobe      *models.WardrobeConfig `json:"wardrobe"`
}

// --- ProjectService Interface ---
type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetProjectsByUserEmail(ctx context.Context, userEmail string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// --- projectService Implementation ---
type projectService struct {
	projectRepo repositories.ProjectRepository
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if strings.TrimSpace(req.UserEmail) == "" {
		return nil, fmt.Errorf("%w: userEmail cannot be empty", ErrProjectValidation)
	}

	// A project builds exactly one thing: a kitchen or a wardrobe.
	if req.Kitchen != nil && req.Wardrobe != nil {
		return nil, fmt.Errorf("%w: a project cannot carry both a kitchen and a wardrobe configuration", ErrProjectValidation)
	}
	if req.Kitchen == nil && req.Wardrobe == nil {
		return nil, fmt.Errorf("%w: exactly one of kitchen or wardrobe configuration is required", ErrProjectValidation)
	}

	if req.Category != nil && !models.IsValidCategory(*req.Category) {
		return nil, fmt.Errorf("%w: invalid category %q. Allowed: %s", ErrProjectValidation, *req.Category, strings.Join(models.Categories(), ", "))
	}

	status := models.StageNew
	if req.Status != nil {
		if !models.IsValidStage(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q. Allowed: %s", ErrProjectValidation, *req.Status, strings.Join(models.ProjectStages(), ", "))
		}
		status = *req.Status
	}

	now := timeNow()
	project := &models.Project{
		ID:            uuid.NewString(),
		UserEmail:     req.UserEmail,
		ArchitectName: req.ArchitectName,
		Category:      req.Category,
		Status:        status,
		Kitchen:       req.Kitchen,
		Wardrobe:      req.Wardrobe,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.projectRepo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project in repository: %w", err)
	}
	return project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *projectService) GetProjectsByUserEmail(ctx context.Context, userEmail string) ([]models.Project, error) {
	projects, err := s.projectRepo.GetProjectsByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project for update: %w", err)
	}

	if req.Kitchen != nil && req.Wardrobe != nil {
		return nil, fmt.Errorf("%w: a project cannot carry both a kitchen and a wardrobe configuration", ErrProjectValidation)
	}

	if req.ArchitectName != nil {
		project.ArchitectName = req.ArchitectName
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: invalid category %q. Allowed: %s", ErrProjectValidation, *req.Category, strings.Join(models.Categories(), ", "))
		}
		project.Category = req.Category
	}
	if req.Status != nil {
		if !models.IsValidStage(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status %q. Allowed: %s", ErrProjectValidation, *req.Status, strings.Join(models.ProjectStages(), ", "))
		}
		project.Status = *req.Status
	}
	// Supplying one configuration replaces it and clears the other, keeping
	// the kitchen/wardrobe pair mutually exclusive.
	if req.Kitchen != nil {
		project.Kitchen = req.Kitchen
		project.Wardrobe = nil
	}
	if req.Wardrobe != nil {
		project.Wardrobe = req.Wardrobe
		project.Kitchen = nil
	}
	project.UpdatedAt = timeNow()

	if err := s.projectRepo.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project in repository: %w", err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	err := s.projectRepo.DeleteProject(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
