package statement

import "strings"

// ScanLine splits one CSV line into fields. A double quote toggles quoted
// mode and is stripped from the output; commas split fields only outside
// quotes. Any input yields some sequence of fields; malformed quoting
// degrades into garbled tokens rather than an error. Escaped quotes ("")
// are not unescaped, they toggle quoted mode twice.
//
// Bank exports in the wild produce lines with stray quotes and unbalanced
// fields, so this deliberately stays lenient where encoding/csv would fail.
func ScanLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	fields = append(fields, current.String())
	return fields
}
