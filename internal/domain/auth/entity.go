package auth

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Can run and approve payroll
	RoleEmployee Role = "employee" // Can record own attendance
)

// CanManagePayroll reports whether the role may run payroll or change record status.
func (r Role) CanManagePayroll() bool {
	return r == RoleOwner || r == RoleManager
}
