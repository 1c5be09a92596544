package services

import (
	"context"
	"errors"
	"testing"

	"homeveda_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAssignedRoles(t *testing.T) {
	roles := deriveAssignedRoles([]string{models.RequirementKitchen, models.RequirementFacade})
	assert.ElementsMatch(t, []string{models.RoleKitchenSalesExecutive, models.RoleFacadeSalesExecutive}, roles)

	assert.Empty(t, deriveAssignedRoles(nil))

	// Duplicate requirements contribute one role.
	roles = deriveAssignedRoles([]string{models.RequirementKitchen, models.RequirementKitchen})
	assert.Equal(t, []string{models.RoleKitchenSalesExecutive}, roles)
}

func TestCreateLeadDerivesRoles(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), newFakeArchitectRepo())

	lead, err := svc.CreateLead(context.Background(), CreateLeadRequest{
		Name:         "Mr. Sharma",
		Requirements: []string{models.RequirementKitchen, models.RequirementGlassWork},
		Category:     []string{models.CategoryStandard},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{models.RoleKitchenSalesExecutive, models.RoleGlassSalesExecutive}, lead.AssignedRoles)
}

func TestCreateLeadRejectsUnknownRequirement(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), newFakeArchitectRepo())

	_, err := svc.CreateLead(context.Background(), CreateLeadRequest{
		Name:         "Mr. Sharma",
		Requirements: []string{"Flooring"},
	})
	assert.ErrorIs(t, err, ErrLeadValidation)
}

func TestCreateLeadRecordsArchitect(t *testing.T) {
	architectRepo := newFakeArchitectRepo()
	svc := NewLeadService(newFakeLeadRepo(), architectRepo)

	_, err := svc.CreateLead(context.Background(), CreateLeadRequest{
		Name:             "Mr. Sharma",
		ArchitectName:    strPtr("Studio North"),
		ArchitectContact: strPtr("9876543210"),
	})
	require.NoError(t, err)

	architect, err := architectRepo.GetArchitectByNameAndContact(context.Background(), "Studio North", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Studio North", architect.ArchitectName)
}

func TestCreateLeadArchitectDedup(t *testing.T) {
	architectRepo := newFakeArchitectRepo(&models.Architect{
		ID: "a1", ArchitectName: "Studio North", ArchitectContact: "9876543210",
	})
	svc := NewLeadService(newFakeLeadRepo(), architectRepo)

	_, err := svc.CreateLead(context.Background(), CreateLeadRequest{
		Name:             "Mrs. Rao",
		ArchitectName:    strPtr("Studio North"),
		ArchitectContact: strPtr("9876543210"),
	})
	require.NoError(t, err)

	architects, err := architectRepo.GetAllArchitects(context.Background())
	require.NoError(t, err)
	assert.Len(t, architects, 1, "matching architect is not duplicated")
}

func TestCreateLeadSurvivesArchitectFailure(t *testing.T) {
	architectRepo := newFakeArchitectRepo()
	architectRepo.createErr = errors.New("write denied")
	leadRepo := newFakeLeadRepo()
	svc := NewLeadService(leadRepo, architectRepo)

	lead, err := svc.CreateLead(context.Background(), CreateLeadRequest{
		Name:             "Mr. Sharma",
		ArchitectName:    strPtr("Studio North"),
		ArchitectContact: strPtr("9876543210"),
	})
	require.NoError(t, err, "architect bookkeeping failures never fail the lead write")

	stored, err := leadRepo.GetLeadByID(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mr. Sharma", stored.Name)
}

func TestGetLeadsForRoleVisibility(t *testing.T) {
	leadRepo := newFakeLeadRepo(
		&models.Lead{ID: "l1", Name: "Kitchen lead", AssignedRoles: []string{models.RoleKitchenSalesExecutive}},
		&models.Lead{ID: "l2", Name: "Facade lead", AssignedRoles: []string{models.RoleFacadeSalesExecutive}},
	)
	svc := NewLeadService(leadRepo, newFakeArchitectRepo())

	all, err := svc.GetLeadsForRole(context.Background(), models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2, "super admin sees every lead")

	kitchenOnly, err := svc.GetLeadsForRole(context.Background(), models.RoleKitchenSalesExecutive)
	require.NoError(t, err)
	require.Len(t, kitchenOnly, 1)
	assert.Equal(t, "l1", kitchenOnly[0].ID)

	designerView, err := svc.GetLeadsForRole(context.Background(), models.RoleDesigner)
	require.NoError(t, err)
	assert.Empty(t, designerView)
}

func TestUpdateLeadReassignsRoles(t *testing.T) {
	leadRepo := newFakeLeadRepo(&models.Lead{
		ID:            "l1",
		Name:          "Kitchen lead",
		Requirements:  []string{models.RequirementKitchen},
		AssignedRoles: []string{models.RoleKitchenSalesExecutive},
	})
	svc := NewLeadService(leadRepo, newFakeArchitectRepo())

	updated, err := svc.UpdateLead(context.Background(), "l1", UpdateLeadRequest{
		Requirements: &[]string{models.RequirementWardrobe},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleWardrobesSalesExecutive}, updated.AssignedRoles)
}

func TestDeleteLeadNotFound(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), newFakeArchitectRepo())
	assert.ErrorIs(t, svc.DeleteLead(context.Background(), "missing"), ErrLeadNotFound)
}
