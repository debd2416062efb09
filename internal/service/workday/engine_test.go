package workday

import (
	"testing"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-12-01 is a Monday
var testDate = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

var testSchedule = employee.WorkSchedule{
	Start1: "08:00",
	End1:   "12:00",
	Start2: "13:00",
	End2:   "17:48",
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 12, 1, hour, minute, 0, 0, time.Local)
}

func TestDedupePunches(t *testing.T) {
	cases := []struct {
		name  string
		times []time.Time
		want  []time.Time
	}{
		{
			name:  "double tap collapsed",
			times: []time.Time{at(7, 0), at(7, 3)},
			want:  []time.Time{at(7, 0)},
		},
		{
			name:  "chain of close taps collapses to first",
			times: []time.Time{at(7, 0), at(7, 10), at(7, 12)},
			want:  []time.Time{at(7, 0)},
		},
		{
			name:  "punches past the window are kept",
			times: []time.Time{at(7, 0), at(7, 20), at(12, 0)},
			want:  []time.Time{at(7, 0), at(7, 20), at(12, 0)},
		},
		{
			name:  "unsorted input is sorted first",
			times: []time.Time{at(12, 0), at(7, 0)},
			want:  []time.Time{at(7, 0), at(12, 0)},
		},
		{
			name:  "empty",
			times: nil,
			want:  nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := dedupePunches(c.times, DefaultDedupWindow)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPairPunches(t *testing.T) {
	pairs := pairPunches([]time.Time{at(7, 41), at(12, 3), at(13, 10)})

	require.Len(t, pairs, 2)
	assert.Equal(t, at(7, 41), pairs[0].in)
	require.NotNil(t, pairs[0].out)
	assert.Equal(t, at(12, 3), *pairs[0].out)
	assert.Equal(t, at(13, 10), pairs[1].in)
	assert.Nil(t, pairs[1].out)
}

func TestPairedMinutes(t *testing.T) {
	pairs := pairPunches([]time.Time{at(7, 41), at(12, 3), at(13, 10), at(17, 52)})
	assert.Equal(t, 544, pairedMinutes(pairs))

	// Trailing unmatched punch contributes nothing
	pairs = pairPunches([]time.Time{at(7, 41), at(12, 3), at(13, 10)})
	assert.Equal(t, 262, pairedMinutes(pairs))

	// A third pair is dropped entirely
	pairs = pairPunches([]time.Time{at(7, 0), at(8, 0), at(9, 0), at(10, 0), at(11, 0), at(12, 0)})
	assert.Equal(t, 120, pairedMinutes(pairs))
}

func TestBuildWorkday_FullDay(t *testing.T) {
	punches := []time.Time{at(7, 41), at(12, 3), at(13, 10), at(17, 52)}

	wd := buildWorkday("emp-1", testDate, punches, testSchedule, false, nil, DefaultDedupWindow)

	assert.Equal(t, "emp-1", wd.EmployeeID)
	assert.Equal(t, 544, wd.WorkedMinutes)
	assert.Equal(t, 480, wd.ExpectedMinutes)
	assert.Equal(t, 64, wd.BalanceMinutes)
	assert.Equal(t, 64, wd.ExtraMinutes)
	assert.Equal(t, workday.StatusOK, wd.Status)
	require.NotNil(t, wd.Entrada1)
	assert.Equal(t, at(7, 41), *wd.Entrada1)
	require.NotNil(t, wd.Saida2)
	assert.Equal(t, at(17, 52), *wd.Saida2)
}

func TestBuildWorkday_IncompleteDay(t *testing.T) {
	punches := []time.Time{at(8, 0), at(11, 20)}

	wd := buildWorkday("emp-1", testDate, punches, testSchedule, false, nil, DefaultDedupWindow)

	assert.Equal(t, 200, wd.WorkedMinutes)
	assert.Equal(t, -280, wd.BalanceMinutes)
	assert.Equal(t, 0, wd.ExtraMinutes)
	assert.Equal(t, workday.StatusIncomplete, wd.Status)
	assert.Nil(t, wd.Entrada2)
}

func TestBuildWorkday_SingleShiftCoversExpectation(t *testing.T) {
	sched := employee.WorkSchedule{Start1: "08:00", End1: "16:00"}
	punches := []time.Time{at(8, 0), at(16, 0)}

	wd := buildWorkday("emp-1", testDate, punches, sched, false, nil, DefaultDedupWindow)

	assert.Equal(t, 480, wd.WorkedMinutes)
	assert.Equal(t, 480, wd.ExpectedMinutes)
	assert.Equal(t, workday.StatusOK, wd.Status)
}

func TestBuildWorkday_NonWorkingDay(t *testing.T) {
	saturday := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)

	wd := buildWorkday("emp-1", saturday, nil, testSchedule, false, nil, DefaultDedupWindow)

	assert.Equal(t, 0, wd.ExpectedMinutes)
	assert.Equal(t, 0, wd.WorkedMinutes)
	assert.Equal(t, workday.StatusOK, wd.Status)
}

func TestBuildWorkday_EditedRecordPreserved(t *testing.T) {
	entrada := at(8, 0)
	saida := at(16, 0)
	existing := &workday.Workday{
		ID:              "wd-1",
		EmployeeID:      "emp-1",
		Date:            testDate,
		Entrada1:        &entrada,
		Saida1:          &saida,
		WorkedMinutes:   480,
		ExpectedMinutes: 480,
		Status:          workday.StatusEdited,
	}

	// New punches and a shorter schedule must not disturb the
	// operator-entered times
	sched := employee.WorkSchedule{Start1: "08:00", End1: "15:30"}
	punches := []time.Time{at(9, 0), at(10, 0)}

	wd := buildWorkday("emp-1", testDate, punches, sched, false, existing, DefaultDedupWindow)

	assert.Equal(t, "wd-1", wd.ID)
	assert.Equal(t, workday.StatusEdited, wd.Status)
	assert.Equal(t, 480, wd.WorkedMinutes)
	require.NotNil(t, wd.Entrada1)
	assert.Equal(t, entrada, *wd.Entrada1)
	assert.Equal(t, 450, wd.ExpectedMinutes)
	assert.Equal(t, 30, wd.BalanceMinutes)
	assert.Equal(t, 30, wd.ExtraMinutes)
}

func TestBuildWorkday_Idempotent(t *testing.T) {
	punches := []time.Time{at(7, 41), at(12, 3), at(13, 10), at(17, 52)}

	first := buildWorkday("emp-1", testDate, punches, testSchedule, false, nil, DefaultDedupWindow)
	second := buildWorkday("emp-1", testDate, punches, testSchedule, false, &first, DefaultDedupWindow)

	assert.Equal(t, first.WorkedMinutes, second.WorkedMinutes)
	assert.Equal(t, first.ExpectedMinutes, second.ExpectedMinutes)
	assert.Equal(t, first.BalanceMinutes, second.BalanceMinutes)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Entrada1, second.Entrada1)
	assert.Equal(t, first.Saida2, second.Saida2)
}

func TestBuildWorkday_Holiday(t *testing.T) {
	punches := []time.Time{at(8, 0), at(12, 0)}

	wd := buildWorkday("emp-1", testDate, punches, testSchedule, true, nil, DefaultDedupWindow)

	assert.Equal(t, 0, wd.ExpectedMinutes)
	assert.Equal(t, 240, wd.WorkedMinutes)
	assert.Equal(t, 240, wd.ExtraMinutes)
	assert.Equal(t, workday.StatusOK, wd.Status)
}

func TestTotalClockMinutes(t *testing.T) {
	s := func(v string) *string { return &v }

	cases := []struct {
		name     string
		entrada1 *string
		saida1   *string
		entrada2 *string
		saida2   *string
		want     int
	}{
		{"two full shifts", s("08:00"), s("12:00"), s("13:00"), s("17:52"), 532},
		{"single shift", s("08:00"), s("12:00"), nil, nil, 240},
		{"incomplete pair ignored", s("08:00"), nil, s("13:00"), s("17:00"), 240},
		{"night shift crosses midnight", s("22:00"), s("06:00"), nil, nil, 480},
		{"crossing beyond ceiling is invalid", s("08:00"), s("07:00"), nil, nil, 0},
		{"all empty", nil, nil, nil, nil, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := totalClockMinutes(c.entrada1, c.saida1, c.entrada2, c.saida2)
			assert.Equal(t, c.want, got)
		})
	}
}
