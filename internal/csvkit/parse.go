package csvkit

import "strings"

// ParseDocument splits already-decoded CSV text into rows of fields.
//
// Lines are separated by CRLF or LF; lines that are empty after trimming are
// dropped. Within a line, commas split fields except inside double-quoted
// spans, a doubled quote inside a quoted span is a literal quote, and an
// unterminated quote runs to the end of the line. Quoted spans never continue
// onto the next line, which is why this does not use encoding/csv: WMS exports
// routinely contain stray quotes and the import must stay line-oriented.
func ParseDocument(text string) [][]string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, parseLine(line))
	}
	return rows
}

func parseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuotes {
			switch {
			case ch == '"' && i+1 < len(line) && line[i+1] == '"':
				current.WriteByte('"')
				i++
			case ch == '"':
				inQuotes = false
			default:
				current.WriteByte(ch)
			}
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
		case ',':
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// Field returns the trimmed cell at index, or "" when the row is too short or
// the index is negative (unconfigured optional column).
func Field(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
