// Package scan locates occurrences of a single token spelling within a line.
package scan

import "strings"

// Occurrence records the start indexes of the first and last match of a spelling.
// First == Last when the spelling occurs exactly once.
type Occurrence struct {
	First int
	Last  int
}

// Find reports where spelling first and last starts in line. The search is
// case-sensitive and never consumes characters, so overlapping spellings
// such as "one" and "eight" in "oneight" are each found. ok is false when
// spelling does not occur or is empty.
func Find(line, spelling string) (occ Occurrence, ok bool) {
	if spelling == "" {
		return Occurrence{}, false
	}
	first := strings.Index(line, spelling)
	if first < 0 {
		return Occurrence{}, false
	}
	return Occurrence{First: first, Last: strings.LastIndex(line, spelling)}, true
}
