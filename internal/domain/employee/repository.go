package employee

import "context"

// EmployeeRepository defines data access methods for employees and their employment terms.
type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound when no employee matches.
	GetByID(ctx context.Context, id string) (Employee, error)
}
