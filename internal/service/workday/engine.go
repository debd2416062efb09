package workday

import (
	"sort"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/employee"
	"github.com/pontosweb/pontosweb-backend-go/internal/domain/workday"
)

// DefaultDedupWindow is the minimum interval between punches before the
// later one is considered a duplicate tap on the reader.
const DefaultDedupWindow = 15 * time.Minute

// maxCrossingMinutes caps a midnight-crossing shift at 16 hours; pairs
// beyond it are treated as garbled input and contribute nothing.
const maxCrossingMinutes = 16 * 60

// shiftPair is a matched (in, out) punch pair within a day. A trailing
// unmatched punch yields an in with no out.
type shiftPair struct {
	in  time.Time
	out *time.Time
}

// dedupePunches walks punches in timestamp order and drops any punch
// within window of the previously kept one.
func dedupePunches(times []time.Time, window time.Duration) []time.Time {
	if len(times) == 0 {
		return nil
	}

	sorted := make([]time.Time, len(times))
	copy(sorted, times)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	kept := []time.Time{sorted[0]}
	for _, t := range sorted[1:] {
		if t.Sub(kept[len(kept)-1]) < window {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// pairPunches pairs consecutive punches as (in, out).
func pairPunches(times []time.Time) []shiftPair {
	var pairs []shiftPair
	for i := 0; i < len(times); i += 2 {
		pair := shiftPair{in: times[i]}
		if i+1 < len(times) {
			out := times[i+1]
			pair.out = &out
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// pairedMinutes sums whole minutes over the complete pairs among the
// first two; incomplete pairs and third+ pairs contribute nothing.
func pairedMinutes(pairs []shiftPair) int {
	total := 0
	for i, pair := range pairs {
		if i >= 2 {
			break
		}
		if pair.out == nil {
			continue
		}
		total += int(pair.out.Sub(pair.in) / time.Minute)
	}
	return total
}

// determineStatus decides OK vs INCOMPLETE for a freshly derived day.
// A non-working day is always OK. A working day is OK when every
// configured shift slot has a complete pair, or when a single complete
// shift already covers the full expectation.
func determineStatus(sched employee.WorkSchedule, expected, worked int, pairs []shiftPair) string {
	if expected == 0 {
		return workday.StatusOK
	}

	complete := 0
	for i, pair := range pairs {
		if i >= 2 {
			break
		}
		if pair.out != nil {
			complete++
		}
	}

	if complete >= configuredSlots(sched) {
		return workday.StatusOK
	}
	if complete >= 1 && worked >= expected {
		return workday.StatusOK
	}
	return workday.StatusIncomplete
}

// buildWorkday derives the workday record for one employee and date from
// that date's punches, the schedule snapshot and the holiday calendar.
//
// When the existing record is EDITED its shift times, worked minutes and
// status are operator-authoritative: only the schedule-derived fields are
// refreshed. Otherwise the result is a full overwrite of the existing
// record. Running it twice over unchanged input yields identical fields.
func buildWorkday(employeeID string, date time.Time, punchTimes []time.Time, sched employee.WorkSchedule, isHoliday bool, existing *workday.Workday, window time.Duration) workday.Workday {
	expected := expectedMinutes(sched, date, isHoliday)

	if existing != nil && existing.Status == workday.StatusEdited {
		wd := *existing
		wd.ExpectedMinutes = expected
		wd.BalanceMinutes = wd.WorkedMinutes - expected
		wd.ExtraMinutes = positivePart(wd.BalanceMinutes)
		return wd
	}

	kept := dedupePunches(punchTimes, window)
	pairs := pairPunches(kept)

	worked := pairedMinutes(pairs)
	balance := worked - expected

	wd := workday.Workday{
		EmployeeID:      employeeID,
		Date:            date,
		WorkedMinutes:   worked,
		ExpectedMinutes: expected,
		BalanceMinutes:  balance,
		ExtraMinutes:    positivePart(balance),
		Status:          determineStatus(sched, expected, worked, pairs),
	}
	if existing != nil {
		wd.ID = existing.ID
	}

	if len(pairs) > 0 {
		wd.Entrada1 = timePtr(pairs[0].in)
		wd.Saida1 = pairs[0].out
	}
	if len(pairs) > 1 {
		wd.Entrada2 = timePtr(pairs[1].in)
		wd.Saida2 = pairs[1].out
	}

	return wd
}

// clockPairMinutes computes the duration of an (in, out) pair given as
// HH:MM strings. An out before its in is assumed to cross midnight,
// unless the resulting shift exceeds the sanity ceiling, in which case
// the pair is invalid and contributes nothing.
func clockPairMinutes(in, out *string) int {
	if in == nil || out == nil {
		return 0
	}
	start, okStart := parseClockMinutes(*in)
	end, okEnd := parseClockMinutes(*out)
	if !okStart || !okEnd {
		return 0
	}

	diff := end - start
	if diff < 0 {
		diff += 24 * 60
		if diff > maxCrossingMinutes {
			return 0
		}
	}
	return diff
}

// totalClockMinutes recomputes worked minutes from the four shift time
// strings after a manual edit.
func totalClockMinutes(entrada1, saida1, entrada2, saida2 *string) int {
	return clockPairMinutes(entrada1, saida1) + clockPairMinutes(entrada2, saida2)
}

func positivePart(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
