package services

import (
	"context"
	"testing"

	"homeveda_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testProject(id string) *models.Project {
	return &models.Project{ID: id, UserEmail: "client@example.com", Status: models.StageNew}
}

func TestComputeItemTotal(t *testing.T) {
	assert.Equal(t, 200.0, ComputeItemTotal(2, 100))
	assert.Equal(t, 0.0, ComputeItemTotal(0, 100))
	assert.Equal(t, 0.0, ComputeItemTotal(3, 0))
}

func TestComputeTotals(t *testing.T) {
	items := []models.QuotationItem{
		{Name: "Base unit", Quantity: 2, Price: 100, TotalPrice: 200},
		{Name: "Handle set", Quantity: 1, Price: 50, TotalPrice: 40},
	}

	totals := ComputeTotals(items, 10, 5, 0)
	assert.Equal(t, 240.0, totals.GrossAmount)
	assert.Equal(t, 235.0, totals.GrandTotal)
	assert.Equal(t, 10.0, totals.Discount)
	assert.Equal(t, 5.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.FreightInstallationHandling)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals := ComputeTotals(nil, 0, 0, 0)
	assert.Equal(t, 0.0, totals.GrossAmount)
	assert.Equal(t, 0.0, totals.GrandTotal)
}

func TestCreateQuotationComputesTotals(t *testing.T) {
	svc := NewQuotationService(newFakeQuotationRepo(), newFakeProjectRepo(testProject("p1")))

	quotation, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items: []QuotationItemInput{
			{Name: "Base unit", Quantity: 2, Price: 100},
			{Name: "Handle set", Quantity: 1, Price: 50, TotalPrice: 40},
		},
		Discount:  10,
		TaxAmount: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 240.0, quotation.Totals.GrossAmount)
	assert.Equal(t, 235.0, quotation.Totals.GrandTotal)
	assert.Equal(t, 200.0, quotation.Items[0].TotalPrice, "derived from quantity x price")
	assert.Equal(t, 40.0, quotation.Items[1].TotalPrice, "explicit total overrides the derived one")
}

func TestCreateQuotationRejectsEmptyItems(t *testing.T) {
	svc := NewQuotationService(newFakeQuotationRepo(), newFakeProjectRepo(testProject("p1")))

	_, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{ProjectID: "p1"})
	assert.ErrorIs(t, err, ErrQuotationValidation)
}

func TestCreateQuotationUnknownProject(t *testing.T) {
	svc := NewQuotationService(newFakeQuotationRepo(), newFakeProjectRepo())

	_, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "missing",
		Items:     []QuotationItemInput{{Name: "Base unit", Quantity: 1, Price: 10}},
	})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCreateQuotationValidatesItemTaxonomy(t *testing.T) {
	svc := NewQuotationService(newFakeQuotationRepo(), newFakeProjectRepo(testProject("p1")))

	_, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items: []QuotationItemInput{
			{Name: "Shutter", Quantity: 1, Price: 10, Department: strPtr(models.DepartmentKitchen), WorkType: strPtr("Nonsense")},
		},
	})
	assert.ErrorIs(t, err, ErrQuotationValidation)

	_, err = svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items: []QuotationItemInput{
			{Name: "Shutter", Quantity: 1, Price: 10, WorkType: strPtr("Carcass")},
		},
	})
	assert.ErrorIs(t, err, ErrQuotationValidation, "workType without department is rejected")
}

func TestCreateQuotationRejectsNegativeInputs(t *testing.T) {
	svc := NewQuotationService(newFakeQuotationRepo(), newFakeProjectRepo(testProject("p1")))

	_, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items:     []QuotationItemInput{{Name: "Base unit", Quantity: 1, Price: 10}},
		Discount:  -1,
	})
	assert.ErrorIs(t, err, ErrQuotationValidation)

	_, err = svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items:     []QuotationItemInput{{Name: "Base unit", Quantity: -1, Price: 10}},
	})
	assert.ErrorIs(t, err, ErrQuotationValidation)
}

func TestReplaceQuotationItemsRecalculates(t *testing.T) {
	repo := newFakeQuotationRepo()
	svc := NewQuotationService(repo, newFakeProjectRepo(testProject("p1")))

	quotation, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items:     []QuotationItemInput{{Name: "Base unit", Quantity: 2, Price: 100}},
		Discount:  10,
	})
	require.NoError(t, err)

	updated, err := svc.ReplaceQuotationItems(context.Background(), quotation.ID, ReplaceQuotationItemsRequest{
		Items:    []QuotationItemInput{{Name: "Tall unit", Quantity: 3, Price: 50}},
		Discount: floatPtr(20),
	})
	require.NoError(t, err)

	assert.Equal(t, 150.0, updated.Totals.GrossAmount)
	assert.Equal(t, 130.0, updated.Totals.GrandTotal)
	assert.Len(t, updated.Items, 1)
}

func TestUpdateQuotationTotalsKeepsGross(t *testing.T) {
	repo := newFakeQuotationRepo()
	svc := NewQuotationService(repo, newFakeProjectRepo(testProject("p1")))

	quotation, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items:     []QuotationItemInput{{Name: "Base unit", Quantity: 2, Price: 100}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuotationTotals(context.Background(), quotation.ID, UpdateQuotationTotalsRequest{
		Discount:  floatPtr(15),
		TaxAmount: floatPtr(25),
		Freight:   floatPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, updated.Totals.GrossAmount, "gross untouched by totals-only update")
	assert.Equal(t, 215.0, updated.Totals.GrandTotal)
}

func TestUpdateQuotationTotalsNotFound(t *testing.T) {
	svc := NewQuotationService(newFakeQuotationRepo(), newFakeProjectRepo())

	_, err := svc.UpdateQuotationTotals(context.Background(), "missing", UpdateQuotationTotalsRequest{Discount: floatPtr(1)})
	assert.ErrorIs(t, err, ErrQuotationNotFound)
}

func TestDeleteQuotation(t *testing.T) {
	repo := newFakeQuotationRepo()
	svc := NewQuotationService(repo, newFakeProjectRepo(testProject("p1")))

	quotation, err := svc.CreateQuotation(context.Background(), CreateQuotationRequest{
		ProjectID: "p1",
		Items:     []QuotationItemInput{{Name: "Base unit", Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteQuotation(context.Background(), quotation.ID))
	assert.ErrorIs(t, svc.DeleteQuotation(context.Background(), quotation.ID), ErrQuotationNotFound)
}
