package models

// User roles. Regular customers hold RoleUser; back-office staff hold one of
// the admin roles.
const (
	RoleUser       = "user"
	RoleSuperAdmin = "super admin"

	RoleDesigner                = "designer"
	RoleSiteSupervisor          = "site supervisor"
	RoleKitchenSalesExecutive   = "kitchen sales executive"
	RoleGlassSalesExecutive     = "glass sales executive"
	RoleWardrobesSalesExecutive = "wardrobes sales executive"
	RoleFacadeSalesExecutive    = "facade sales executive"
)

// AdminRoles lists every role with back-office access.
var AdminRoles = []string{
	RoleSuperAdmin,
	RoleDesigner,
	RoleSiteSupervisor,
	RoleKitchenSalesExecutive,
	RoleGlassSalesExecutive,
	RoleWardrobesSalesExecutive,
	RoleFacadeSalesExecutive,
}

var validAdminRoles = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AdminRoles))
	for _, r := range AdminRoles {
		m[r] = struct{}{}
	}
	return m
}()

// IsValidAdminRole reports whether value is one of the admin roles.
func IsValidAdminRole(value string) bool {
	_, ok := validAdminRoles[value]
	return ok
}

// Lead requirement options and the admin role responsible for each.
const (
	RequirementKitchen   = "Kitchen"
	RequirementGlassWork = "Glass Work"
	RequirementWardrobe  = "Wardrobe"
	RequirementFacade    = "Facade"
)

// RequirementRoleMap maps a lead requirement to the sales role that should
// see the lead. Requirements outside this map contribute no roles.
var RequirementRoleMap = map[string]string{
	RequirementKitchen:   RoleKitchenSalesExecutive,
	RequirementGlassWork: RoleGlassSalesExecutive,
	RequirementWardrobe:  RoleWardrobesSalesExecutive,
	RequirementFacade:    RoleFacadeSalesExecutive,
}

// LeadRequirements returns the closed set of lead requirement options.
func LeadRequirements() []string {
	return []string{RequirementKitchen, RequirementGlassWork, RequirementWardrobe, RequirementFacade}
}

// IsValidRequirement reports whether value is a known lead requirement.
func IsValidRequirement(value string) bool {
	_, ok := RequirementRoleMap[value]
	return ok
}
