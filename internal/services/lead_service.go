package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"
	"homeveda_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Leads ---
var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrLeadValidation = errors.New("lead data validation error")
)

// --- Lead DTOs ---

type CreateLeadRequest struct {
	Name             string   `json:"name"`
	Address          *string  `json:"address"`
	ContactNumber    *string  `json:"contactNumber"`
	ArchitectName    *string  `json:"architectName"`
	ArchitectContact *string  `json:"architectContact"`
	ArchitectAddress *string  `json:"architectAddress"`
	Requirements     []string `json:"requirements"`
	Category         []string `json:"category"`
}

type UpdateLeadRequest struct {
	Name             *string   `json:"name"`
	Address          *string   `json:"address"`
	ContactNumber    *string   `json:"contactNumber"`
	ArchitectName    *string   `json:"architectName"`
	ArchitectContact *string   `json:"architectContact"`
	ArchitectAddress *string   `json:"architectAddress"`
	Requirements     *[]string `json:"requirements"`
	Category         *[]string `json:"category"`
}

// --- LeadService Interface ---
type LeadService interface {
	CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error)
	GetLeadByID(ctx context.Context, id string) (*models.Lead, error)
	// GetLeadsForRole returns every lead for the super admin and only
	// role-assigned leads for everyone else.
	GetLeadsForRole(ctx context.Context, role string) ([]models.Lead, error)
	UpdateLead(ctx context.Context, id string, req UpdateLeadRequest) (*models.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}

// --- leadService Implementation ---
type leadService struct {
	leadRepo      repositories.LeadRepository
	architectRepo repositories.ArchitectRepository
}

// NewLeadService creates a new instance of LeadService.
func NewLeadService(leadRepo repositories.LeadRepository, architectRepo repositories.ArchitectRepository) LeadService {
	return &leadService{
		leadRepo:      leadRepo,
		architectRepo: architectRepo,
	}
}

func validateLeadSets(requirements, category []string) error {
	for _, req := range requirements {
		if !models.IsValidRequirement(req) {
			return fmt.Errorf("%w: invalid requirement %q. Allowed: %s",
				ErrLeadValidation, req, strings.Join(models.LeadRequirements(), ", "))
		}
	}
	for _, cat := range category {
		if !models.IsValidCategory(cat) {
			return fmt.Errorf("%w: invalid category %q. Allowed: %s",
				ErrLeadValidation, cat, strings.Join(models.Categories(), ", "))
		}
	}
	return nil
}

// deriveAssignedRoles computes the sales roles that should see a lead from
// its requirements. The result is deduplicated and sorted for stable output.
func deriveAssignedRoles(requirements []string) []string {
	seen := make(map[string]struct{})
	roles := []string{}
	for _, req := range requirements {
		role, ok := models.RequirementRoleMap[req]
		if !ok {
			continue
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// tryCreateArchitect records the architect mentioned on a lead. It never
// fails the lead write: duplicates are skipped and errors only logged.
func (s *leadService) tryCreateArchitect(ctx context.Context, lead *models.Lead) {
	if lead.ArchitectName == nil || lead.ArchitectContact == nil {
		return
	}
	name := strings.TrimSpace(*lead.ArchitectName)
	contact := strings.TrimSpace(*lead.ArchitectContact)
	if name == "" || contact == "" {
		return
	}

	_, err := s.architectRepo.GetArchitectByNameAndContact(ctx, name, contact)
	if err == nil {
		return // already on record
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		utils.LogWarn(err, "lead: architect dedup lookup failed")
		return
	}

	now := timeNow()
	architect := &models.Architect{
		ID:               uuid.NewString(),
		ArchitectName:    name,
		ArchitectContact: contact,
		ArchitectAddress: lead.ArchitectAddress,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.architectRepo.CreateArchitect(ctx, architect); err != nil {
		utils.LogWarn(err, "lead: failed to record architect "+name)
	}
}

func (s *leadService) CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrLeadValidation)
	}
	if err := validateLeadSets(req.Requirements, req.Category); err != nil {
		return nil, err
	}

	now := timeNow()
	lead := &models.Lead{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Address:          req.Address,
		ContactNumber:    req.ContactNumber,
		ArchitectName:    req.ArchitectName,
		ArchitectContact: req.ArchitectContact,
		ArchitectAddress: req.ArchitectAddress,
		Requirements:     req.Requirements,
		Category:         req.Category,
		AssignedRoles:    deriveAssignedRoles(req.Requirements),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if lead.Requirements == nil {
		lead.Requirements = []string{}
	}
	if lead.Category == nil {
		lead.Category = []string{}
	}

	if err := s.leadRepo.CreateLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead in repository: %w", err)
	}

	s.tryCreateArchitect(ctx, lead)
	return lead, nil
}

func (s *leadService) GetLeadByID(ctx context.Context, id string) (*models.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

func (s *leadService) GetLeadsForRole(ctx context.Context, role string) ([]models.Lead, error) {
	var (
		leads []models.Lead
		err   error
	)
	if role == models.RoleSuperAdmin {
		leads, err = s.leadRepo.GetAllLeads(ctx)
	} else {
		leads, err = s.leadRepo.GetLeadsByAssignedRole(ctx, role)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}
	return leads, nil
}

func (s *leadService) UpdateLead(ctx context.Context, id string, req UpdateLeadRequest) (*models.Lead, error) {
	lead, err := s.leadRepo.GetLeadByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to find lead for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrLeadValidation)
		}
		lead.Name = *req.Name
	}
	if req.Address != nil {
		lead.Address = req.Address
	}
	if req.ContactNumber != nil {
		lead.ContactNumber = req.ContactNumber
	}
	if req.ArchitectName != nil {
		lead.ArchitectName = req.ArchitectName
	}
	if req.ArchitectContact != nil {
		lead.ArchitectContact = req.ArchitectContact
	}
	if req.ArchitectAddress != nil {
		lead.ArchitectAddress = req.ArchitectAddress
	}
	if req.Requirements != nil {
		if err := validateLeadSets(*req.Requirements, nil); err != nil {
			return nil, err
		}
		lead.Requirements = *req.Requirements
		// Assigned roles always track the current requirements.
		lead.AssignedRoles = deriveAssignedRoles(lead.Requirements)
	}
	if req.Category != nil {
		if err := validateLeadSets(nil, *req.Category); err != nil {
			return nil, err
		}
		lead.Category = *req.Category
	}

	lead.UpdatedAt = timeNow()
	if err := s.leadRepo.UpdateLead(ctx, lead); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to update lead in repository: %w", err)
	}

	s.tryCreateArchitect(ctx, lead)
	return lead, nil
}

func (s *leadService) DeleteLead(ctx context.Context, id string) error {
	if err := s.leadRepo.DeleteLead(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}
