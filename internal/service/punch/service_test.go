package punch

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
	"github.com/pontosweb/pontosweb-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPunchDB *database.DB

func punchTestInit(t *testing.T) {
	if testPunchDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	schema, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)
	_, err = db.Exec(context.Background(), string(schema))
	require.NoError(t, err)

	testPunchDB = db
}

func truncatePunchTables(t *testing.T, ctx context.Context) {
	tables := []string{"punches", "employees"}
	for _, table := range tables {
		_, err := testPunchDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func TestPunchService_Import(t *testing.T) {
	ctx := context.Background()
	punchTestInit(t)
	truncatePunchTables(t, ctx)

	punchRepo := postgresql.NewPunchRepository(testPunchDB)
	employeeRepo := postgresql.NewEmployeeRepository(testPunchDB)
	svc := NewPunchService(punchRepo, employeeRepo)

	content := "No\tMchn\tEnNo\tName\tMode\tIOMd\tDateTime\n" +
		"1\t1\t000000123\tMARIA SILVA\t0\t0\t2025/12/01  07:41:00\n" +
		"2\t1\t000000123\tMARIA SILVA\t0\t1\t2025/12/01  12:03:00\n" +
		"3\t1\t000000456\tJOAO SOUZA\t0\t0\t2025/12/02  08:00:00\n" +
		"4\t1\t000000123\tMARIA SILVA\t0\tXX\t2025/12/01  13:00:00\n"

	result, err := svc.Import(ctx, content)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 4, result.Total)
	assert.Len(t, result.Errors, 1)
	assert.Len(t, result.Meta.AffectedEmployeeIDs, 2)
	require.NotNil(t, result.Meta.MinDate)
	require.NotNil(t, result.Meta.MaxDate)
	assert.Equal(t, time.Date(2025, 12, 1, 7, 41, 0, 0, time.Local), *result.Meta.MinDate)
	assert.Equal(t, time.Date(2025, 12, 2, 8, 0, 0, 0, time.Local), *result.Meta.MaxDate)

	// Employee onboarded from the file
	emp, err := employeeRepo.GetByEnrollmentNo(ctx, "000000123")
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "MARIA SILVA", emp.Name)

	punches, err := punchRepo.ListByEmployeeBetween(ctx, emp.ID,
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 12, 3, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, punches, 2)

	// Re-importing the same file creates nothing new
	again, err := svc.Import(ctx, content)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Processed)

	punches, err = punchRepo.ListByEmployeeBetween(ctx, emp.ID,
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 12, 3, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Len(t, punches, 2)
}

func TestPunchService_ImportEmptyFile(t *testing.T) {
	ctx := context.Background()
	punchTestInit(t)

	punchRepo := postgresql.NewPunchRepository(testPunchDB)
	employeeRepo := postgresql.NewEmployeeRepository(testPunchDB)
	svc := NewPunchService(punchRepo, employeeRepo)

	_, err := svc.Import(ctx, "   \n  ")
	assert.ErrorIs(t, err, punch.ErrEmptyFile)
}
