package workday

import (
	"testing"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func TestParseClockMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"08:00", 480, true},
		{"0:05", 5, true},
		{"23:59", 1439, true},
		{" 08:00 ", 480, true},
		{"24:00", 0, false},
		{"08:60", 0, false},
		{"8", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := parseClockMinutes(c.input)
		assert.Equal(t, c.ok, ok, "parseClockMinutes(%q)", c.input)
		if c.ok {
			assert.Equal(t, c.want, got, "parseClockMinutes(%q)", c.input)
		}
	}
}

func TestSlotMinutes(t *testing.T) {
	assert.Equal(t, 240, slotMinutes("08:00", "12:00"))
	assert.Equal(t, 0, slotMinutes("12:00", "08:00"))
	assert.Equal(t, 0, slotMinutes("12:00", "12:00"))
	assert.Equal(t, 0, slotMinutes("", "12:00"))
}

func TestConfiguredSlots(t *testing.T) {
	assert.Equal(t, 2, configuredSlots(employee.WorkSchedule{
		Start1: "08:00", End1: "12:00", Start2: "13:00", End2: "17:48",
	}))
	assert.Equal(t, 1, configuredSlots(employee.WorkSchedule{
		Start1: "08:00", End1: "16:00",
	}))
	assert.Equal(t, 0, configuredSlots(employee.WorkSchedule{}))
}

func TestExpectedMinutes(t *testing.T) {
	sched := employee.WorkSchedule{
		Start1: "08:00", End1: "12:00", Start2: "13:00", End2: "17:48",
	}

	monday := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 480, expectedMinutes(sched, monday, false))
	assert.Equal(t, 0, expectedMinutes(sched, saturday, false))
	assert.Equal(t, 0, expectedMinutes(sched, sunday, false))
	assert.Equal(t, 0, expectedMinutes(sched, monday, true))

	// Only the morning slot configured
	morning := employee.WorkSchedule{Start1: "08:00", End1: "12:00"}
	assert.Equal(t, 240, expectedMinutes(morning, monday, false))

	// An inverted slot contributes nothing
	inverted := employee.WorkSchedule{Start1: "12:00", End1: "08:00", Start2: "13:00", End2: "17:00"}
	assert.Equal(t, 240, expectedMinutes(inverted, monday, false))
}
