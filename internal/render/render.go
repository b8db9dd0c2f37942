// Package render produces text, JSON, and Markdown output from a calibration summary.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jordansgrant/advent-of-code-2023/internal/calibration"
)

// Report is the full output object.
type Report struct {
	Tool       string                   `json:"tool"`
	Version    string                   `json:"version"`
	Input      Input                    `json:"input"`
	Vocabulary string                   `json:"vocabulary"`
	Lines      []calibration.LineResult `json:"lines"`
	Total      int64                    `json:"total"`
}

// Input describes the file the report was computed from.
type Input struct {
	File string `json:"file"`
	Hash string `json:"hash"`
}

// Text renders only the total, followed by a newline.
func Text(r *Report) string {
	return fmt.Sprintf("%d\n", r.Total)
}

// JSON renders the report as indented JSON.
func JSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// Markdown renders the report as a Markdown table of line scores.
func Markdown(r *Report) string {
	var b strings.Builder

	b.WriteString("# Calibration Report\n\n")
	fmt.Fprintf(&b, "**Input:** %s (%s)\n", r.Input.File, r.Input.Hash)
	fmt.Fprintf(&b, "**Lines:** %d\n", len(r.Lines))
	fmt.Fprintf(&b, "**Total:** %d\n\n", r.Total)

	if len(r.Lines) == 0 {
		b.WriteString("No lines scored.\n")
		return b.String()
	}

	width := lineNumberWidth(len(r.Lines))
	label := fmt.Sprintf("L%%0%dd", width)

	b.WriteString("| Line | Text | First | Last | Score |\n")
	b.WriteString("|------|------|-------|------|-------|\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "| %s | `%s` | %s@%d | %s@%d | %d |\n",
			fmt.Sprintf(label, l.Number), l.Text,
			l.First.Spelling, l.FirstIndex,
			l.Last.Spelling, l.LastIndex,
			l.Score)
	}
	b.WriteString("\n")

	return b.String()
}

// lineNumberWidth sizes the zero-padded L%0Nd line labels for the report.
func lineNumberWidth(totalLines int) int {
	switch {
	case totalLines >= 10000:
		return 5
	case totalLines >= 1000:
		return 4
	default:
		return 3
	}
}
