package record

import (
	"strconv"
	"strings"
)

// floatOr parses a string as a float64, returning def if parsing fails or
// the field is empty. The FEC summary feed routinely ships blank or garbage
// amounts; a bad field degrades to the default instead of failing the row.
func floatOr(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// intOr parses a string as an integer, returning def if parsing fails.
func intOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// field returns the trimmed value at index i, or empty string when the row
// is too short to hold it.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// padDistrict left-pads a district code to two digits so "5" and "05"
// compare equal. Blank stays blank (statewide races carry no district).
func padDistrict(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	for len(d) < 2 {
		d = "0" + d
	}
	return d
}
