// Package position isolates the numbering-annotator column heuristics: which
// header fields are position labels, and how a label maps to a number.
package position

import "strconv"

// Labels returns the suffix of fields starting at the first field whose text
// begins with a decimal digit. Leading metadata columns (ids, scores, chain
// types) vary in count between annotator versions; position columns are
// always digit-led and run to the end of the header.
func Labels(fields []string) []string {
	for i, f := range fields {
		if len(f) > 0 && isDigit(f[0]) {
			return fields[i:]
		}
	}
	return nil
}

// LeadingInt parses the leading digit run of label ("111A" → 111).
// ok is false when label does not start with a digit.
func LeadingInt(label string) (n int, ok bool) {
	end := 0
	for end < len(label) && isDigit(label[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
