// Package dsv parses the delimited observation files. The format is
// deliberately narrow: single-character delimiter, header row first, no
// quoting or escapes, one record per line.
package dsv

import "strings"

// Record maps a header name to the raw field value of one line.
type Record map[string]string

// Parse splits text into field-keyed records. The first line is the header
// row; each header is trimmed of surrounding whitespace. Every following
// non-blank line is split on the delimiter and zipped positionally against
// the headers: short rows yield empty strings for the missing fields, extra
// fields beyond the header count are discarded. Blank lines contribute no
// record. Output order equals input line order.
func Parse(text string, delim rune) []Record {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil
	}

	sep := string(delim)
	headers := strings.Split(lines[0], sep)
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var records []Record
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, sep)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				rec[h] = fields[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
