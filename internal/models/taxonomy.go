package models

import "strings"

// Department names form a closed set; each department owns a fixed list of
// work types. The mapping is process-wide static configuration: populated
// here, read everywhere, never mutated at runtime.
const (
	DepartmentKitchen  = "Kitchen"
	DepartmentWardrobe = "Wardrobe"
	DepartmentGlass    = "Glass"
	DepartmentFacade   = "Facade"
)

var departmentWorkTypes = map[string][]string{
	DepartmentKitchen: {
		"Carcass", "Shutters", "Visibles", "Base And Back",
		"Basic Hardware", "Additional Hardware", "Other Hardware",
		"Countertop", "Appliances",
	},
	DepartmentWardrobe: {
		"Carcass", "Shutters", "Base And Back", "Visibles",
		"Basic Hardware", "Additional Hardware", "Other Hardware",
	},
	DepartmentGlass: {
		"Sliding Partitions", "Shower Cubicles", "Mirrors", "Railing",
	},
	DepartmentFacade: {
		"Elevation", "Double Height Lobby", "Highlighter Wall",
		"Washrooms", "Countertop",
	},
}

// Departments returns the closed set of department names.
func Departments() []string {
	return []string{DepartmentKitchen, DepartmentWardrobe, DepartmentGlass, DepartmentFacade}
}

// DepartmentWorkTypeMap returns a copy of the department -> work types mapping,
// e.g. for frontend dropdowns. Callers may mutate the copy freely.
func DepartmentWorkTypeMap() map[string][]string {
	out := make(map[string][]string, len(departmentWorkTypes))
	for dept, wts := range departmentWorkTypes {
		out[dept] = append([]string(nil), wts...)
	}
	return out
}

// AllowedWorkTypes returns the work types configured for a department.
// The second return value is false for an unknown department.
func AllowedWorkTypes(department string) ([]string, bool) {
	wts, ok := departmentWorkTypes[department]
	if !ok {
		return nil, false
	}
	return append([]string(nil), wts...), true
}

// IsValidDepartment reports whether department is one of the known departments.
func IsValidDepartment(department string) bool {
	_, ok := departmentWorkTypes[department]
	return ok
}

// IsValidWorkType reports whether workType belongs to department's configured
// list. Unknown departments always report false.
func IsValidWorkType(department, workType string) bool {
	wts, ok := departmentWorkTypes[department]
	if !ok {
		return false
	}
	for _, wt := range wts {
		if wt == workType {
			return true
		}
	}
	return false
}

// AllowedWorkTypesMessage renders the allowed work-type list for user-facing
// validation errors.
func AllowedWorkTypesMessage(department string) string {
	wts, ok := departmentWorkTypes[department]
	if !ok {
		return "unknown department " + department + "; allowed departments: " + strings.Join(Departments(), ", ")
	}
	return strings.Join(wts, ", ")
}

// Catalog categories and item types.
const (
	CategoryBuilder  = "Builder"
	CategoryEconomy  = "Economy"
	CategoryStandard = "Standard"
	CategoryVedaX    = "VedaX"

	CatalogTypeNormal  = "Normal"
	CatalogTypePremium = "Premium"
)

var validCategories = map[string]struct{}{
	CategoryBuilder:  {},
	CategoryEconomy:  {},
	CategoryStandard: {},
	CategoryVedaX:    {},
}

var validCatalogTypes = map[string]struct{}{
	CatalogTypeNormal:  {},
	CatalogTypePremium: {},
}

// Categories returns the closed set of catalog/project categories.
func Categories() []string {
	return []string{CategoryBuilder, CategoryEconomy, CategoryStandard, CategoryVedaX}
}

// IsValidCategory reports whether value is a known category.
func IsValidCategory(value string) bool {
	_, ok := validCategories[value]
	return ok
}

// CatalogTypes returns the closed set of catalog item types.
func CatalogTypes() []string {
	return []string{CatalogTypeNormal, CatalogTypePremium}
}

// IsValidCatalogType reports whether value is a known catalog item type.
func IsValidCatalogType(value string) bool {
	_, ok := validCatalogTypes[value]
	return ok
}
