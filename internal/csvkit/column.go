package csvkit

import (
	"errors"
	"strings"
)

// ErrInvalidColumnLabel is returned when a spreadsheet column label is empty or
// contains characters other than ASCII letters.
var ErrInvalidColumnLabel = errors.New("invalid_column_label")

// ColumnToIndex converts a spreadsheet column label ("A", "AB", ...) to a
// zero-based index. Labels are case-insensitive bijective base-26 numerals
// (A=1 .. Z=26, AA=27), so "A" maps to 0.
func ColumnToIndex(label string) (int, error) {
	upper := strings.ToUpper(strings.TrimSpace(label))
	if upper == "" {
		return 0, ErrInvalidColumnLabel
	}

	index := 0
	for _, ch := range upper {
		if ch < 'A' || ch > 'Z' {
			return 0, ErrInvalidColumnLabel
		}
		index = index*26 + int(ch-'A'+1)
	}
	return index - 1, nil
}

// ColumnLabel is the inverse of ColumnToIndex: 0 -> "A", 26 -> "AA". It is
// used to label preview columns the same way the mapping configuration
// references them.
func ColumnLabel(index int) string {
	if index < 0 {
		return ""
	}
	var b []byte
	n := index + 1
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
