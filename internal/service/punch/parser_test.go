package punch

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punchLine(no int, enNo, name string, dateTime string) string {
	return fmt.Sprintf("%d\t1\t%s\t%s\t0\t0\t%s", no, enNo, name, dateTime)
}

func TestParsePunchFile_FullExport(t *testing.T) {
	content := strings.Join([]string{
		"No\tMchn\tEnNo\tName\tMode\tIOMd\tDateTime",
		punchLine(1, "000000123", "MARIA SILVA", "2025/12/01  07:41:00"),
		punchLine(2, "000000123", "MARIA SILVA", "2025/12/01  12:03:00"),
		punchLine(3, "000000456", "JOAO SOUZA", "2025/12/01  08:00:00"),
		"---------------------------------",
		"Total: 3",
	}, "\n")

	result := ParsePunchFile(content)

	require.Len(t, result.Records, 3)
	assert.Empty(t, result.Errors)

	first := result.Records[0]
	assert.Equal(t, "000000123", first.EnrollmentNo)
	assert.Equal(t, "MARIA SILVA", first.Name)
	require.NotNil(t, first.Mode)
	assert.Equal(t, 0, *first.Mode)
	assert.Equal(t, time.Date(2025, 12, 1, 7, 41, 0, 0, time.Local), first.DateTime)
}

func TestParsePunchFile_ShortFormat(t *testing.T) {
	content := "000000123\tMARIA SILVA\t0\t2025-12-01 07:41:00\n"

	result := ParsePunchFile(content)

	require.Len(t, result.Records, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "000000123", result.Records[0].EnrollmentNo)
	assert.Nil(t, result.Records[0].Mode)
	assert.Equal(t, time.Date(2025, 12, 1, 7, 41, 0, 0, time.Local), result.Records[0].DateTime)
}

func TestParsePunchFile_MalformedLinesReported(t *testing.T) {
	var lines []string
	lines = append(lines, "No\tMchn\tEnNo\tName\tMode\tIOMd\tDateTime")
	for i := 0; i < 100; i++ {
		day := 1 + i%28
		lines = append(lines, punchLine(i+1, "000000123", "MARIA SILVA",
			fmt.Sprintf("2025/12/%02d  07:%02d:00", day, i%60)))
	}
	// Three malformed rows in the middle of the file
	lines = append(lines, "101\t1\t000000123\tMARIA SILVA\t0\tXX\t2025/12/01  07:41:00")
	lines = append(lines, "102\t1\t000000123\tMARIA SILVA\t0\t0\t2025/13/45  99:99:00")
	lines = append(lines, "103\t1\t000000123\tMARIA SILVA\t0\t0")

	result := ParsePunchFile(strings.Join(lines, "\n"))

	assert.Len(t, result.Records, 100)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 102, result.Errors[0].Line)
	assert.Equal(t, 103, result.Errors[1].Line)
	assert.Equal(t, 104, result.Errors[2].Line)
	for _, pe := range result.Errors {
		assert.NotEmpty(t, pe.Error)
		assert.NotEmpty(t, pe.Content)
	}
}

func TestParsePunchFile_SkipsNoiseSilently(t *testing.T) {
	content := strings.Join([]string{
		"",
		"No\tMchn\tEnNo\tName\tMode\tIOMd\tDateTime",
		"-----",
		"x\ty",
		"Total 0",
	}, "\n")

	result := ParsePunchFile(content)

	assert.Empty(t, result.Records)
	assert.Empty(t, result.Errors)
}

func TestParsePunchFile_WhitespaceDelimited(t *testing.T) {
	content := "000000123 MARIA SILVA 0 2025-12-01 07:41:00\n"

	result := ParsePunchFile(content)

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "000000123", rec.EnrollmentNo)
	assert.Equal(t, "MARIA SILVA", rec.Name)
	assert.Equal(t, 0, rec.IOMode)
	assert.Equal(t, time.Date(2025, 12, 1, 7, 41, 0, 0, time.Local), rec.DateTime)
}

func TestParsePunchFile_WhitespaceDelimitedFullExport(t *testing.T) {
	content := strings.Join([]string{
		"000001 1 000000052 HENRIQUE 1 0 2025/12/01 07:41:00",
		"000002 1 000000052 HENRIQUE DE ALMEIDA 1 0 2025/12/01 12:03:00",
	}, "\n")

	result := ParsePunchFile(content)

	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Errors)

	first := result.Records[0]
	assert.Equal(t, "000000052", first.EnrollmentNo)
	assert.Equal(t, "HENRIQUE", first.Name)
	require.NotNil(t, first.Mode)
	assert.Equal(t, 1, *first.Mode)
	assert.Equal(t, 0, first.IOMode)
	assert.Equal(t, time.Date(2025, 12, 1, 7, 41, 0, 0, time.Local), first.DateTime)

	second := result.Records[1]
	assert.Equal(t, "000000052", second.EnrollmentNo)
	assert.Equal(t, "HENRIQUE DE ALMEIDA", second.Name)
	assert.Equal(t, time.Date(2025, 12, 1, 12, 3, 0, 0, time.Local), second.DateTime)
}

func TestParseLocalDateTime_RejectsRollover(t *testing.T) {
	_, err := parseLocalDateTime("2025/02/30  08:00:00")
	assert.Error(t, err)

	_, err = parseLocalDateTime("2025/12/01  24:30:00")
	assert.Error(t, err)
}
