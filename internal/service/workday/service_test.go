package workday

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/database"
	"github.com/pontosweb/pontosweb-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWorkdayDB *database.DB

func workdayTestInit(t *testing.T) {
	if testWorkdayDB != nil {
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

	testWorkdayDB = db
}

func truncateWorkdayTables(t *testing.T, ctx context.Context) {
	tables := []string{"adjustments", "abonos", "workdays", "punches", "holidays", "employees"}
	for _, table := range tables {
		_, err := testWorkdayDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, repo employee.EmployeeRepository) employee.Employee {
	emp, err := repo.Create(ctx, employee.Employee{
		EnrollmentNo: fmt.Sprintf("EMP-%d", time.Now().UnixNano()),
		Name:         "MARIA SILVA",
	})
	require.NoError(t, err)

	s := func(v string) *string { return &v }
	emp, err = repo.UpdateSchedule(ctx, emp.ID, s("08:00"), s("12:00"), s("13:00"), s("17:48"))
	require.NoError(t, err)
	return emp
}

func createTestPunch(t *testing.T, ctx context.Context, repo punch.PunchRepository, employeeID string, at time.Time) {
	_, err := repo.Create(ctx, punch.Punch{
		EmployeeID: employeeID,
		DateTime:   at,
		Imported:   true,
	})
	require.NoError(t, err)
}

func newTestWorkdayService() workday.WorkdayService {
	workdayRepo := postgresql.NewWorkdayRepository(testWorkdayDB)
	punchRepo := postgresql.NewPunchRepository(testWorkdayDB)
	employeeRepo := postgresql.NewEmployeeRepository(testWorkdayDB)
	holidayRepo := postgresql.NewHolidayRepository(testWorkdayDB)
	abonoRepo := postgresql.NewAbonoRepository(testWorkdayDB)
	return NewWorkdayService(testWorkdayDB, workdayRepo, punchRepo, employeeRepo, holidayRepo, abonoRepo, DefaultDedupWindow)
}

func TestWorkdayService_ReconcileAndEdit(t *testing.T) {
	ctx := context.Background()
	workdayTestInit(t)
	truncateWorkdayTables(t, ctx)

	employeeRepo := postgresql.NewEmployeeRepository(testWorkdayDB)
	punchRepo := postgresql.NewPunchRepository(testWorkdayDB)
	workdayRepo := postgresql.NewWorkdayRepository(testWorkdayDB)
	svc := newTestWorkdayService()

	emp := createTestEmployee(t, ctx, employeeRepo)

	day := time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(7*time.Hour+41*time.Minute))
	// Duplicate tap two minutes later must be dropped
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(7*time.Hour+43*time.Minute))
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(12*time.Hour+3*time.Minute))
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(13*time.Hour+10*time.Minute))
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(17*time.Hour+52*time.Minute))

	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	results, err := svc.Reconcile(ctx, emp.ID, start, start)
	require.NoError(t, err)
	require.Len(t, results, 1)

	wd := results[0]
	assert.Equal(t, 544, wd.WorkedMinutes)
	assert.Equal(t, 480, wd.ExpectedMinutes)
	assert.Equal(t, 64, wd.BalanceMinutes)
	assert.Equal(t, workday.StatusOK, wd.Status)

	// Reconciling again changes nothing
	results, err = svc.Reconcile(ctx, emp.ID, start, start)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, wd.ID, results[0].ID)
	assert.Equal(t, 544, results[0].WorkedMinutes)

	// Manual edit of saida1 records exactly one adjustment
	newValue := "12:30"
	reason := "esqueceu de bater o ponto"
	edited, err := svc.ApplyEdit(ctx, wd.ID, workday.EditRequest{
		Updates: map[string]*string{"saida1": &newValue},
		Reason:  &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, workday.StatusEdited, edited.Status)
	assert.Equal(t, 571, edited.WorkedMinutes)
	require.NotNil(t, edited.Saida1)
	assert.Equal(t, "12:30", *edited.Saida1)

	history, err := svc.History(ctx, wd.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "saida1", history[0].Field)
	require.NotNil(t, history[0].OldValue)
	assert.Equal(t, "12:03", *history[0].OldValue)
	require.NotNil(t, history[0].NewValue)
	assert.Equal(t, "12:30", *history[0].NewValue)

	// Submitting the same value again marks the day edited but records
	// no new adjustment
	_, err = svc.ApplyEdit(ctx, wd.ID, workday.EditRequest{
		Updates: map[string]*string{"saida1": &newValue},
	})
	require.NoError(t, err)
	history, err = svc.History(ctx, wd.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	// Reconciling after the edit keeps the operator's times
	results, err = svc.Reconcile(ctx, emp.ID, start, start)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, workday.StatusEdited, results[0].Status)
	assert.Equal(t, 571, results[0].WorkedMinutes)

	stored, err := workdayRepo.GetByID(ctx, wd.ID)
	require.NoError(t, err)
	assert.Equal(t, workday.StatusEdited, stored.Status)
	assert.Equal(t, 571, stored.WorkedMinutes)
}

func TestWorkdayService_MonthlyTimecard(t *testing.T) {
	ctx := context.Background()
	workdayTestInit(t)
	truncateWorkdayTables(t, ctx)

	employeeRepo := postgresql.NewEmployeeRepository(testWorkdayDB)
	punchRepo := postgresql.NewPunchRepository(testWorkdayDB)
	svc := newTestWorkdayService()

	emp := createTestEmployee(t, ctx, employeeRepo)

	day := time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(8*time.Hour))
	createTestPunch(t, ctx, punchRepo, emp.ID, day.Add(12*time.Hour))

	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.Reconcile(ctx, emp.ID, start, end)
	require.NoError(t, err)

	timecard, err := svc.MonthlyTimecard(ctx, emp.ID, 2025, 12)
	require.NoError(t, err)

	assert.Equal(t, emp.ID, timecard.Employee.ID)
	assert.Equal(t, "2025-12", timecard.Month)
	require.Len(t, timecard.Workdays, 2)
	assert.Equal(t, 240, timecard.Totals.WorkedMinutes)
	assert.Equal(t, 960, timecard.Totals.ExpectedMinutes)
	assert.Equal(t, -720, timecard.Totals.BalanceMinutes)
	assert.Equal(t, 720, timecard.Totals.DelayMinutes)
	assert.Equal(t, "-12:00", timecard.Totals.BalanceHours)
}
