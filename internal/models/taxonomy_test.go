package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidWorkType(t *testing.T) {
	for dept, workTypes := range DepartmentWorkTypeMap() {
		for _, wt := range workTypes {
			assert.True(t, IsValidWorkType(dept, wt), "%s / %s should be valid", dept, wt)
		}
	}

	assert.False(t, IsValidWorkType(DepartmentKitchen, "Elevation"), "Facade work type is not valid for Kitchen")
	assert.False(t, IsValidWorkType(DepartmentGlass, "Carcass"))
	assert.False(t, IsValidWorkType("Bathroom", "Carcass"), "unknown department")
	assert.False(t, IsValidWorkType(DepartmentKitchen, ""))
}

func TestIsValidDepartment(t *testing.T) {
	for _, dept := range Departments() {
		assert.True(t, IsValidDepartment(dept))
	}
	assert.False(t, IsValidDepartment("kitchen"), "department names are case sensitive")
	assert.False(t, IsValidDepartment(""))
}

func TestAllowedWorkTypes(t *testing.T) {
	wts, ok := AllowedWorkTypes(DepartmentGlass)
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"Sliding Partitions", "Shower Cubicles", "Mirrors", "Railing"}, wts)

	_, ok = AllowedWorkTypes("Garage")
	assert.False(t, ok)
}

func TestDepartmentWorkTypeMapIsACopy(t *testing.T) {
	m := DepartmentWorkTypeMap()
	m[DepartmentKitchen][0] = "tampered"

	fresh, _ := AllowedWorkTypes(DepartmentKitchen)
	assert.Equal(t, "Carcass", fresh[0])
}

func TestIsValidCategory(t *testing.T) {
	for _, cat := range Categories() {
		assert.True(t, IsValidCategory(cat))
	}
	assert.False(t, IsValidCategory("Luxury"))
}

func TestIsValidCatalogType(t *testing.T) {
	assert.True(t, IsValidCatalogType(CatalogTypeNormal))
	assert.True(t, IsValidCatalogType(CatalogTypePremium))
	assert.False(t, IsValidCatalogType("Deluxe"))
}

func TestRequirementRoleMap(t *testing.T) {
	for _, req := range LeadRequirements() {
		role, ok := RequirementRoleMap[req]
		assert.True(t, ok)
		assert.True(t, IsValidAdminRole(role), "mapped role %q must be an admin role", role)
	}
	assert.False(t, IsValidRequirement("Flooring"))
}

func TestIsValidStage(t *testing.T) {
	for _, stage := range ProjectStages() {
		assert.True(t, IsValidStage(stage))
	}
	assert.False(t, IsValidStage("Completed"))
}

func TestInspectionStatuses(t *testing.T) {
	for _, status := range InspectionStatuses() {
		assert.True(t, IsValidInspectionStatus(status))
	}
	assert.False(t, IsValidInspectionStatus("Done"))
}

func TestInspectionVideoURLs(t *testing.T) {
	plumbing := "https://cdn.test/plumbing.mp4"
	flooring := "https://cdn.test/flooring.mp4"
	i := Inspection{
		PlumbingVideo: &plumbing,
		FlooringVideo: &flooring,
		OtherVideos:   []string{"https://cdn.test/extra.mp4"},
	}
	assert.ElementsMatch(t, []string{plumbing, flooring, "https://cdn.test/extra.mp4"}, i.VideoURLs())
}
