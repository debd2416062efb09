package punch

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pontosweb/pontosweb-backend-go/internal/domain/punch"
	"github.com/pontosweb/pontosweb-backend-go/internal/pkg/validator"
)

// ParsePunchFile parses the raw text of a punch-clock export.
//
// Two row shapes are accepted: the 7-field export
// `No Mchn EnNo Name Mode IOMd DateTime` and the short 4-field variant
// `EnNo Name IOMd DateTime`. Header, separator and total rows are
// skipped silently. Malformed lines are collected as errors with their
// line number; parsing never aborts the batch.
func ParsePunchFile(content string) punch.ParseResult {
	var result punch.ParseResult

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		lineNo := i + 1

		if line == "" {
			continue
		}
		if isNoiseLine(line) {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			if err == errTooShort {
				// Stray fragments, not data rows
				continue
			}
			result.Errors = append(result.Errors, punch.ParseError{
				Line:    lineNo,
				Error:   err.Error(),
				Content: line,
			})
			continue
		}
		if record == nil {
			// Header row that slipped past the noise check
			continue
		}

		result.Records = append(result.Records, *record)
	}

	return result
}

var errTooShort = fmt.Errorf("line has too few fields")

// isNoiseLine recognizes headers, separators and summary rows.
func isNoiseLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "no\t") ||
		strings.HasPrefix(line, "---") ||
		strings.Contains(lower, "total")
}

func parseLine(line string) (*punch.Record, error) {
	enNo, name, modeStr, ioModeStr, dateTimeStr, err := splitFields(line)
	if err != nil {
		return nil, err
	}

	if enNo == "EnNo" {
		return nil, nil
	}
	if enNo == "" || name == "" || dateTimeStr == "" {
		return nil, fmt.Errorf("missing required fields")
	}

	ioMode, err := strconv.Atoi(ioModeStr)
	if err != nil {
		return nil, fmt.Errorf("missing required fields")
	}

	var mode *int
	if m, err := strconv.Atoi(modeStr); err == nil {
		mode = &m
	}

	dateTime, err := parseLocalDateTime(dateTimeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid datetime: %s", dateTimeStr)
	}

	return &punch.Record{
		EnrollmentNo: enNo,
		Name:         name,
		Mode:         mode,
		IOMode:       ioMode,
		DateTime:     dateTime,
	}, nil
}

// splitFields extracts the interesting columns from either row shape.
func splitFields(line string) (enNo, name, mode, ioMode, dateTime string, err error) {
	if strings.Contains(line, "\t") {
		parts := strings.Split(line, "\t")
		fields := make([]string, 0, len(parts))
		for _, p := range parts {
			fields = append(fields, strings.TrimSpace(p))
		}

		switch {
		case len(fields) >= 7:
			// No, Mchn, EnNo, Name, Mode, IOMd, DateTime
			return fields[2], fields[3], fields[4], fields[5], fields[6], nil
		case len(fields) == 4:
			// EnNo, Name, IOMd, DateTime
			return fields[0], fields[1], "", fields[2], fields[3], nil
		case len(fields) <= 2:
			return "", "", "", "", "", errTooShort
		default:
			return "", "", "", "", "", fmt.Errorf("invalid format - expected 7 fields")
		}
	}

	// Whitespace-delimited fallback; the datetime splits into date and
	// time, and the name may span several fields
	fields := strings.Fields(line)
	if len(fields) <= 2 {
		return "", "", "", "", "", errTooShort
	}
	if len(fields) < 5 {
		return "", "", "", "", "", fmt.Errorf("invalid format - expected at least 5 fields")
	}

	n := len(fields)
	dateTime = fields[n-2] + " " + fields[n-1]

	// A full export row keeps its positional layout even when the tabs
	// were flattened to spaces. Recognize it by the numeric row and
	// machine counters in front; otherwise the counters would be taken
	// for the enrollment number and the name would swallow the
	// surrounding columns.
	if n >= 8 && validator.IsNumeric(fields[0]) && validator.IsNumeric(fields[1]) {
		// No, Mchn, EnNo, Name..., Mode, IOMd, Date, Time
		return fields[2], strings.Join(fields[3:n-4], " "), fields[n-4], fields[n-3], dateTime, nil
	}

	// EnNo, Name..., IOMd, Date, Time
	return fields[0], strings.Join(fields[1:n-3], " "), "", fields[n-3], dateTime, nil
}

// parseLocalDateTime parses "YYYY/MM/DD  HH:MM:SS" (or the dashed date
// form) as local wall-clock time. Splitting the parts manually avoids
// timezone conversions that could shift the date near midnight.
func parseLocalDateTime(s string) (time.Time, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("expected date and time components")
	}

	datePart := strings.FieldsFunc(parts[0], func(r rune) bool { return r == '/' || r == '-' })
	if len(datePart) != 3 {
		return time.Time{}, fmt.Errorf("malformed date: %s", parts[0])
	}
	timePart := strings.Split(parts[1], ":")
	if len(timePart) < 2 {
		return time.Time{}, fmt.Errorf("malformed time: %s", parts[1])
	}

	nums := make([]int, 0, 6)
	for _, p := range append(datePart, timePart...) {
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("non-numeric component: %s", p)
		}
		nums = append(nums, v)
	}

	year, month, day := nums[0], nums[1], nums[2]
	hour, minute := nums[3], nums[4]
	second := 0
	if len(nums) > 5 {
		second = nums[5]
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)

	// time.Date normalizes out-of-range components; reject rollovers
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("out-of-range component")
	}

	return t, nil
}
