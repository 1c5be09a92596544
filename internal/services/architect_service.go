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

// --- Custom Service Errors for Architects ---
var (
	ErrArchitectNotFound   = errors.New("architect not found")
	ErrArchitectExists     = errors.New("architect already exists")
	ErrArchitectValidation = errors.New("architect data validation error")
)

// --- Architect DTOs ---

type CreateArchitectRequest struct {
	ArchitectName    string  `json:"architectName"`
	ArchitectContact string  `json:"architectContact"`
	ArchitectAddress *string `json:"architectAddress"`
}

type UpdateArchitectRequest struct {
	ArchitectName    *string `json:"architectName"`
	ArchitectContact *string `json:"architectContact"`
	ArchitectAddress *string `json:"architectAddress"`
}

// --- ArchitectService Interface ---
type ArchitectService interface {
	CreateArchitect(ctx context.Context, req CreateArchitectRequest) (*models.Architect, error)
	GetArchitectByID(ctx context.Context, id string) (*models.Architect, error)
	GetAllArchitects(ctx context.Context) ([]models.Architect, error)
	UpdateArchitect(ctx context.Context, id string, req UpdateArchitectRequest) (*models.Architect, error)
	DeleteArchitect(ctx context.Context, id string) error
}

// --- architectService Implementation ---
type architectService struct {
	architectRepo repositories.ArchitectRepository
}

// NewArchitectService creates a new instance of ArchitectService.
func NewArchitectService(architectRepo repositories.ArchitectRepository) ArchitectService {
	return &architectService{architectRepo: architectRepo}
}

func (s *architectService) CreateArchitect(ctx context.Context, req CreateArchitectRequest) (*models.Architect, error) {
	name := strings.TrimSpace(req.ArchitectName)
	contact := strings.TrimSpace(req.ArchitectContact)
	if name == "" {
		return nil, fmt.Errorf("%w: architectName cannot be empty", ErrArchitectValidation)
	}
	if contact == "" {
		return nil, fmt.Errorf("%w: architectContact cannot be empty", ErrArchitectValidation)
	}

	// Dedup on name + contact, matching the lead ingestion path.
	if _, err := s.architectRepo.GetArchitectByNameAndContact(ctx, name, contact); err == nil {
		return nil, ErrArchitectExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing architect: %w", err)
	}

	now := timeNow()
	architect := &models.Architect{
		ID:               uuid.NewString(),
		ArchitectName:    name,
		ArchitectContact: contact,
		ArchitectAddress: req.ArchitectAddress,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.architectRepo.CreateArchitect(ctx, architect); err != nil {
		return nil, fmt.Errorf("failed to create architect in repository: %w", err)
	}
	return architect, nil
}

func (s *architectService) GetArchitectByID(ctx context.Context, id string) (*models.Architect, error) {
	architect, err := s.architectRepo.GetArchitectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrArchitectNotFound
		}
		return nil, fmt.Errorf("failed to get architect: %w", err)
	}
	return architect, nil
}

func (s *architectService) GetAllArchitects(ctx context.Context) ([]models.Architect, error) {
	architects, err := s.architectRepo.GetAllArchitects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get architects: %w", err)
	}
	return architects, nil
}

func (s *architectService) UpdateArchitect(ctx context.Context, id string, req UpdateArchitectRequest) (*models.Architect, error) {
	architect, err := s.architectRepo.GetArchitectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrArchitectNotFound
		}
		return nil, fmt.Errorf("failed to find architect for update: %w", err)
	}

	if req.ArchitectName != nil {
		name := strings.TrimSpace(*req.ArchitectName)
		if name == "" {
			return nil, fmt.Errorf("%w: architectName cannot be empty", ErrArchitectValidation)
		}
		architect.ArchitectName = name
	}
	if req.ArchitectContact != nil {
		contact := strings.TrimSpace(*req.ArchitectContact)
		if contact == "" {
			return nil, fmt.Errorf("%w: architectContact cannot be empty", ErrArchitectValidation)
		}
		architect.ArchitectContact = contact
	}
	if req.ArchitectAddress != nil {
		architect.ArchitectAddress = req.ArchitectAddress
	}

	architect.UpdatedAt = timeNow()
	if err := s.architectRepo.UpdateArchitect(ctx, architect); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrArchitectNotFound
		}
		return nil, fmt.Errorf("failed to update architect in repository: %w", err)
	}
	return architect, nil
}

func (s *architectService) DeleteArchitect(ctx context.Context, id string) error {
	if err := s.architectRepo.DeleteArchitect(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrArchitectNotFound
		}
		return fmt.Errorf("failed to delete architect: %w", err)
	}
	return nil
}
