package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup wraps a connection to the test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, applies the schema and empties
// the tables. Tests are skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	ctx := context.Background()
	require.NoError(t, postgresql.EnsureSchema(ctx, db))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)

	return setup
}

// TruncateAllTables deletes all rows from the payroll tables.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"payroll_records",
		"attendance_records",
		"employees",
		"shifts",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

// insertShift stores a shift and returns its id.
func (s *TestDatabaseSetup) insertShift(t *testing.T, name, start, end string) string {
	t.Helper()
	id := newID(t)
	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO shifts (id, name, start_time, end_time) VALUES ($1, $2, $3::text::time, $4::text::time)`,
		id, name, start, end)
	require.NoError(t, err)
	return id
}

// insertEmployee stores an employee; rate and rateType may be empty for an
// employee without an employment record.
func (s *TestDatabaseSetup) insertEmployee(t *testing.T, code string, shiftID *string, rate, rateType string, fund bool) string {
	t.Helper()
	id := newID(t)

	var ratePtr, rateTypePtr *string
	if rate != "" {
		ratePtr = &rate
		rateTypePtr = &rateType
	}

	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO employees (id, shift_id, employee_code, full_name, rate, rate_type, fund_member)
		 VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $7)`,
		id, shiftID, code, "Employee "+code, ratePtr, rateTypePtr, fund)
	require.NoError(t, err)
	return id
}
