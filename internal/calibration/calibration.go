// Package calibration folds per-line scores into a document total.
package calibration

import (
	"fmt"

	"github.com/jordansgrant/advent-of-code-2023/internal/score"
	"github.com/jordansgrant/advent-of-code-2023/internal/vocab"
)

// LineResult is the score of one input line. Number is 1-based.
type LineResult struct {
	Number int    `json:"line"`
	Text   string `json:"text"`
	score.Result
}

// Summary holds every line's score and their total.
type Summary struct {
	Lines []LineResult `json:"lines"`
	Total int64        `json:"total"`
}

// LineError reports the line that could not be scored.
type LineError struct {
	Number int
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Number, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Sum scores lines in order and adds them up. The first line that cannot be
// scored aborts the sum; no partial summary is returned.
func Sum(lines []string, v *vocab.Vocabulary) (*Summary, error) {
	s := &Summary{Lines: make([]LineResult, 0, len(lines))}
	for i, line := range lines {
		r, err := score.Line(line, v)
		if err != nil {
			return nil, fmt.Errorf("calibration.Sum: %w", &LineError{Number: i + 1, Err: err})
		}
		s.Lines = append(s.Lines, LineResult{Number: i + 1, Text: line, Result: r})
		s.Total += int64(r.Score)
	}
	return s, nil
}
