package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	// employees.id is a UUID column; no other id can match a row.
	if _, err := uuid.Parse(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, shift_id, employee_code, full_name, employment_status,
			rate, rate_type, fund_member, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	var rateType *string
	err := q.QueryRow(ctx, query, id).
		Scan(
			&found.ID, &found.ShiftID, &found.EmployeeCode, &found.FullName, &found.EmploymentStatus,
			&found.Rate, &rateType, &found.FundMember, &found.CreatedAt, &found.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	if rateType != nil {
		found.RateType = employee.RateType(*rateType)
	}

	return found, nil
}
