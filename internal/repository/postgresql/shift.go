package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `s.id, s.name, to_char(s.start_time, 'HH24:MI:SS'), to_char(s.end_time, 'HH24:MI:SS'), s.created_at, s.updated_at`

// GetByID implements schedule.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts s WHERE s.id = $1`

	return scanShift(q.QueryRow(ctx, query, id))
}

// GetByEmployeeID implements schedule.ShiftRepository.
func (s *shiftRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.shift_id = s.id
		WHERE e.id = $1
	`

	return scanShift(q.QueryRow(ctx, query, employeeID))
}

func scanShift(row pgx.Row) (schedule.Shift, error) {
	var found schedule.Shift
	err := row.Scan(&found.ID, &found.Name, &found.StartTime, &found.EndTime, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return found, nil
}
