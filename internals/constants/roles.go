package constants

import "fmt"

// Closed role set. Everything outside this set is treated as a plain user.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// Forbidden message templates per gate
const (
	ErrOnlyAdminsCanAccess      = "Only admins can access %s."
	ErrOnlyInstructorsCanAccess = "Only instructors can access %s."
	ErrOnlyStaffCanAccess       = "Only admins or instructors can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AssignableRoles = []string{
		RoleAdmin,
		RoleInstructor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	InstructorOnly = []string{
		RoleInstructor,
	}

	AdminOrInstructor = []string{
		RoleAdmin,
		RoleInstructor,
	}
)

// IsAssignableRole reports whether role belongs to the closed set.
func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if role == r {
			return true
		}
	}
	return false
}
