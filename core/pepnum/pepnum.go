// Package pepnum extracts PEP numbers from repository file paths.
package pepnum

import (
	"regexp"
	"strconv"
	"strings"
)

// pepFileRe matches filenames like pep-0001.rst, PEP-815.md or
// pep-0001-draft.rst. Only the digit run is captured; any suffix or
// extension is ignored.
var pepFileRe = regexp.MustCompile(`(?i)^pep-(\d+)`)

// Extract returns the PEP number implied by a file path, or false when the
// path does not name a PEP file. The path may be absolute, relative or a bare
// filename, with either slash style. Leading zeros are permitted, so
// pep-0001.rst yields 1 and pep-0000.rst yields 0.
func Extract(path string) (int, bool) {
	if path == "" {
		return 0, false
	}

	// Reduce to the filename, accepting both separator styles.
	filename := path
	if idx := strings.LastIndexAny(filename, `/\`); idx >= 0 {
		filename = filename[idx+1:]
	}

	m := pepFileRe.FindStringSubmatch(filename)
	if m == nil {
		return 0, false
	}

	// Digit runs longer than an int can hold are not plausible PEP numbers.
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
