package workday

import (
	"strconv"
	"strings"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
)

// parseClockMinutes parses an "HH:MM" string into minutes since midnight.
func parseClockMinutes(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// slotMinutes returns the duration of one shift slot. A slot whose end
// does not come after its start is treated as not configured.
func slotMinutes(start, end string) int {
	s, okStart := parseClockMinutes(start)
	e, okEnd := parseClockMinutes(end)
	if !okStart || !okEnd || e <= s {
		return 0
	}
	return e - s
}

// configuredSlots counts the shift slots with a positive duration.
func configuredSlots(sched employee.WorkSchedule) int {
	count := 0
	if slotMinutes(sched.Start1, sched.End1) > 0 {
		count++
	}
	if slotMinutes(sched.Start2, sched.End2) > 0 {
		count++
	}
	return count
}

// expectedMinutes computes the scheduled minutes for a calendar date.
// Weekends and holidays expect zero minutes regardless of the template.
// The date's own weekday is used, never a timezone-shifted one.
func expectedMinutes(sched employee.WorkSchedule, date time.Time, isHoliday bool) int {
	if isHoliday {
		return 0
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return 0
	}
	return slotMinutes(sched.Start1, sched.End1) + slotMinutes(sched.Start2, sched.End2)
}
