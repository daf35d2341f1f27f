package domain

// UserRole defines the access level of an authenticated user.
type UserRole string

const (
	// RoleOperator records intake, sorting and sales at a single facility.
	RoleOperator UserRole = "operator"
	// RoleManager additionally manages users, categories and sale corrections.
	RoleManager UserRole = "manager"
	// RolePanchayat is the regional oversight role with cross-facility visibility.
	RolePanchayat UserRole = "panchayat"
)

// ValidUserRoles enumerates the accepted roles.
var ValidUserRoles = map[UserRole]bool{
	RoleOperator:  true,
	RoleManager:   true,
	RolePanchayat: true,
}
