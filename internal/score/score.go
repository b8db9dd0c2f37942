// Package score computes the two-digit calibration value of a single line.
package score

import (
	"errors"
	"fmt"

	"github.com/jordansgrant/advent-of-code-2023/internal/scan"
	"github.com/jordansgrant/advent-of-code-2023/internal/vocab"
)

// ErrNoToken is returned when a line contains no recognizable digit token.
var ErrNoToken = errors.New("no digit token in line")

// Result is the scored outcome of one line.
type Result struct {
	First      vocab.Token `json:"first"`
	FirstIndex int         `json:"first_index"`
	Last       vocab.Token `json:"last"`
	LastIndex  int         `json:"last_index"`
	Score      int         `json:"score"`
}

// Line returns 10*first + last, where first is the value of the token that
// starts earliest in line and last the value of the token whose final
// occurrence starts latest. A line with a single token uses it for both.
func Line(line string, v *vocab.Vocabulary) (Result, error) {
	var (
		r     Result
		found bool
	)
	for _, tok := range v.Tokens() {
		occ, ok := scan.Find(line, tok.Spelling)
		if !ok {
			continue
		}
		if !found || occ.First < r.FirstIndex {
			r.First, r.FirstIndex = tok, occ.First
		}
		if !found || occ.Last > r.LastIndex {
			r.Last, r.LastIndex = tok, occ.Last
		}
		found = true
	}
	if !found {
		return Result{}, fmt.Errorf("score.Line: %w: %q", ErrNoToken, line)
	}
	r.Score = 10*r.First.Value + r.Last.Value
	return r, nil
}
