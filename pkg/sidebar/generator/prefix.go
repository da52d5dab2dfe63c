package generator

import (
	"regexp"
	"strconv"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

var (
	numberPrefixPattern = regexp.MustCompile(`^(\d+)\s*[-_.]+\s*([^-_.\s].*)$`)

	// Dates (2021-01-31) and versions (1.0, 1_1) look like prefixes but
	// are part of the name.
	ignoredPrefixPattern = regexp.MustCompile(`^(\d{4}[-_.]\d{2}[-_.]\d{2})|^(\d+[-_.]\d+)`)
)

// DefaultNumberPrefixParser strips an ordering prefix such as "01-" or
// "2 . " from a name.
func DefaultNumberPrefixParser(name string) (string, int, bool) {
	if ignoredPrefixPattern.MatchString(name) {
		return name, 0, false
	}
	m := numberPrefixPattern.FindStringSubmatch(name)
	if m == nil {
		return name, 0, false
	}
	prefix, err := strconv.Atoi(m[1])
	if err != nil {
		return name, 0, false
	}
	return m[2], prefix, true
}

// DisabledNumberPrefixParser never strips anything.
func DisabledNumberPrefixParser(name string) (string, int, bool) {
	return name, 0, false
}

// StripNumberPrefix returns name without its prefix, if any.
func StripNumberPrefix(parser sidebar.NumberPrefixParser, name string) string {
	filename, _, _ := parser(name)
	return filename
}
