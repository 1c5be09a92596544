package services

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Quotation ---
var (
	ErrQuotationNotFound   = errors.New("quotation not found")
	ErrQuotationValidation = errors.New("quotation data validation error")
)

// --- Quotation DTOs ---

type QuotationItemInput struct {
	Name       string  `json:"name" binding:"required"`
	Floor      *string `json:"floor"`
	Area       *string `json:"area"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"` // zero means "derive from quantity × price"
	Department *string `json:"department"`
	WorkType   *string `json:"workType"`
}

type CreateQuotationRequest struct {
	ProjectID   string               `json:"projectId" binding:"required"`
	SiteAddress *string              `json:"siteAddress"`
	Category    *string              `json:"category"`
	Items       []QuotationItemInput `json:"items" binding:"required"`
	Discount    float64              `json:"discount"`
	TaxAmount   float64              `json:"taxAmount"`
	Freight     float64              `json:"freightInstallationHandling"`
	Notes       *string              `json:"notes"`
}

// ReplaceQuotationItemsRequest swaps the full item list; totals are fully
// recalculated from the new items.
type ReplaceQuotationItemsRequest struct {
	Items     []QuotationItemInput `json:"items" binding:"required"`
	Discount  *float64             `json:"discount"`
	TaxAmount *float64             `json:"taxAmount"`
	Freight   *float64             `json:"freightInstallationHandling"`
}

// UpdateQuotationTotalsRequest adjusts only the totals inputs; the grand total
// is recomputed against the existing gross amount.
type UpdateQuotationTotalsRequest struct {
	Discount  *float64 `json:"discount"`
	TaxAmount *float64 `json:"taxAmount"`
	Freight   *float64 `json:"freightInstallationHandling"`
}

// --- Totals Engine ---

// ComputeItemTotal derives a line total from quantity and unit price.
// Only used when the caller has not supplied an explicit total.
func ComputeItemTotal(quantity int, price float64) float64 {
	return float64(quantity) * price
}

// ComputeTotals sums every item's total into the gross amount and applies the
// adjustments: grandTotal = gross - discount + tax + freight. An empty item
// list yields a zero gross; rejecting that is the caller's concern.
func ComputeTotals(items []models.QuotationItem, discount, taxAmount, freight float64) models.QuotationTotals {
	var gross float64
	for _, item := range items {
		gross += item.TotalPrice
	}
	return models.QuotationTotals{
		GrossAmount:                 gross,
		Discount:                    discount,
		TaxAmount:                   taxAmount,
		FreightInstallationHandling: freight,
		GrandTotal:                  gross - discount + taxAmount + freight,
	}
}

// --- QuotationService Interface ---
type QuotationService interface {
	CreateQuotation(ctx context.Context, req CreateQuotationRequest) (*models.Quotation, error)
	GetQuotationByID(ctx context.Context, id string) (*models.Quotation, error)
	GetQuotations(ctx context.Context) ([]models.Quotation, error)
	GetQuotationsByProjectID(ctx context.Context, projectID string) ([]models.Quotation, error)
	ReplaceQuotationItems(ctx context.Context, id string, req ReplaceQuotationItemsRequest) (*models.Quotation, error)
	UpdateQuotationTotals(ctx context.Context, id string, req UpdateQuotationTotalsRequest) (*models.Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
}

// --- quotationService Implementation ---
type quotationService struct {
	quotationRepo repositories.QuotationRepository
	projectRepo   repositories.ProjectRepository
}

// NewQuotationService creates a new instance of QuotationService.
func NewQuotationService(quotationRepo repositories.QuotationRepository, projectRepo repositories.ProjectRepository) QuotationService {
	return &quotationService{
		quotationRepo: quotationRepo,
		projectRepo:   projectRepo,
	}
}

// buildItems validates the inputs and materializes line items with their
// totals resolved. An explicit non-zero totalPrice overrides the derived one.
func buildItems(inputs []QuotationItemInput) ([]models.QuotationItem, error) {
	items := make([]models.QuotationItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			return nil, fmt.Errorf("%w: item %d: name is required", ErrQuotationValidation, i)
		}
		if in.Quantity < 0 {
			return nil, fmt.Errorf("%w: item %d: quantity cannot be negative", ErrQuotationValidation, i)
		}
		if in.Price < 0 {
			return nil, fmt.Errorf("%w: item %d: price cannot be negative", ErrQuotationValidation, i)
		}
		if in.TotalPrice < 0 {
			return nil, fmt.Errorf("%w: item %d: totalPrice cannot be negative", ErrQuotationValidation, i)
		}
		if in.Department != nil || in.WorkType != nil {
			if in.Department == nil || in.WorkType == nil {
				return nil, fmt.Errorf("%w: item %d: department and workType must be supplied together", ErrQuotationValidation, i)
			}
			if !models.IsValidWorkType(*in.Department, *in.WorkType) {
				return nil, fmt.Errorf("%w: item %d: work type %q is not valid for department %q. Allowed: %s",
					ErrQuotationValidation, i, *in.WorkType, *in.Department, models.AllowedWorkTypesMessage(*in.Department))
			}
		}

		total := in.TotalPrice
		if total == 0 {
			total = ComputeItemTotal(in.Quantity, in.Price)
		}
		items = append(items, models.QuotationItem{
			Name:       in.Name,
			Floor:      in.Floor,
			Area:       in.Area,
			Quantity:   in.Quantity,
			Price:      in.Price,
			TotalPrice: total,
			Department: in.Department,
			WorkType:   in.WorkType,
		})
	}
	return items, nil
}

func validateTotalsInputs(discount, taxAmount, freight float64) error {
	if discount < 0 {
		return fmt.Errorf("%w: discount cannot be negative", ErrQuotationValidation)
	}
	if taxAmount < 0 {
		return fmt.Errorf("%w: taxAmount cannot be negative", ErrQuotationValidation)
	}
	if freight < 0 {
		return fmt.Errorf("%w: freightInstallationHandling cannot be negative", ErrQuotationValidation)
	}
	return nil
}

func (s *quotationService) CreateQuotation(ctx context.Context, req CreateQuotationRequest) (*models.Quotation, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrQuotationValidation)
	}
	if err := validateTotalsInputs(req.Discount, req.TaxAmount, req.Freight); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project for quotation: %w", err)
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	quotation := &models.Quotation{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		SiteAddress: req.SiteAddress,
		Category:    req.Category,
		Items:       items,
		Totals:      ComputeTotals(items, req.Discount, req.TaxAmount, req.Freight),
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.quotationRepo.CreateQuotation(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to create quotation in repository: %w", err)
	}
	return quotation, nil
}

func (s *quotationService) GetQuotationByID(ctx context.Context, id string) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetQuotationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	return quotation, nil
}

func (s *quotationService) GetQuotations(ctx context.Context) ([]models.Quotation, error) {
	quotations, err := s.quotationRepo.GetAllQuotations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotations: %w", err)
	}
	return quotations, nil
}

func (s *quotationService) GetQuotationsByProjectID(ctx context.Context, projectID string) ([]models.Quotation, error) {
	quotations, err := s.quotationRepo.GetQuotationsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotations by project: %w", err)
	}
	return quotations, nil
}

// ReplaceQuotationItems swaps the item list and recalculates totals from
// scratch. Totals inputs default to their stored values unless overridden.
func (s *quotationService) ReplaceQuotationItems(ctx context.Context, id string, req ReplaceQuotationItemsRequest) (*models.Quotation, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrQuotationValidation)
	}

	quotation, err := s.quotationRepo.GetQuotationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to find quotation for update: %w", err)
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	discount := quotation.Totals.Discount
	taxAmount := quotation.Totals.TaxAmount
	freight := quotation.Totals.FreightInstallationHandling
	if req.Discount != nil {
		discount = *req.Discount
	}
	if req.TaxAmount != nil {
		taxAmount = *req.TaxAmount
	}
	if req.Freight != nil {
		freight = *req.Freight
	}
	if err := validateTotalsInputs(discount, taxAmount, freight); err != nil {
		return nil, err
	}

	quotation.Items = items
	quotation.Totals = ComputeTotals(items, discount, taxAmount, freight)
	quotation.UpdatedAt = timeNow()

	if err := s.quotationRepo.UpdateQuotation(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation in repository: %w", err)
	}
	return quotation, nil
}

// UpdateQuotationTotals replaces only the totals inputs. The gross amount is
// left untouched and the grand total recomputed against it.
func (s *quotationService) UpdateQuotationTotals(ctx context.Context, id string, req UpdateQuotationTotalsRequest) (*models.Quotation, error) {
	quotation, err := s.quotationRepo.GetQuotationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, fmt.Errorf("failed to find quotation for totals update: %w", err)
	}

	totals := quotation.Totals
	if req.Discount != nil {
		totals.Discount = *req.Discount
	}
	if req.TaxAmount != nil {
		totals.TaxAmount = *req.TaxAmount
	}
	if req.Freight != nil {
		totals.FreightInstallationHandling = *req.Freight
	}
	if err := validateTotalsInputs(totals.Discount, totals.TaxAmount, totals.FreightInstallationHandling); err != nil {
		return nil, err
	}
	totals.GrandTotal = totals.GrossAmount - totals.Discount + totals.TaxAmount + totals.FreightInstallationHandling

	quotation.Totals = totals
	quotation.UpdatedAt = timeNow()

	if err := s.quotationRepo.UpdateQuotation(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to update quotation totals in repository: %w", err)
	}
	return quotation, nil
}

func (s *quotationService) DeleteQuotation(ctx context.Context, id string) error {
	err := s.quotationRepo.DeleteQuotation(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrQuotationNotFound
		}
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	return nil
}
