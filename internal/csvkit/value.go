package csvkit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseAmount parses a monetary cell into integer currency units. Thousands
// separators are stripped first. Empty cells and parse failures yield zero:
// feed values are best-effort and must never abort an import.
func ParseAmount(raw string) int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return int64(parsed)
}

// ParseQuantity parses a quantity cell the same best-effort way as ParseAmount.
func ParseQuantity(raw string) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return parsed
}

var (
	ymdPattern = regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})$`)
	mdyPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// NormalizeDate converts YYYY-M-D, YYYY/M/D and M/D/YYYY forms to zero-padded
// YYYY-MM-DD. Anything else passes through unchanged; the store's date column
// rejects values it cannot interpret.
func NormalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if m := ymdPattern.FindStringSubmatch(trimmed); m != nil {
		return formatDate(m[1], m[2], m[3])
	}
	if m := mdyPattern.FindStringSubmatch(trimmed); m != nil {
		return formatDate(m[3], m[1], m[2])
	}
	return trimmed
}

func formatDate(year, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, m, d)
}
