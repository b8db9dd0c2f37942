package internal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jordansgrant/advent-of-code-2023/internal/calibration"
	"github.com/jordansgrant/advent-of-code-2023/internal/input"
	"github.com/jordansgrant/advent-of-code-2023/internal/score"
	"github.com/jordansgrant/advent-of-code-2023/internal/vocab"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

type golden struct {
	Total  int64 `json:"total"`
	Scores []int `json:"scores"`
}

func loadInput(t *testing.T, name string) *input.Document {
	t.Helper()
	d, err := input.Load(filepath.Join(projectRoot(), "testdata", "inputs", name))
	if err != nil {
		t.Fatalf("load input: %v", err)
	}
	return d
}

func TestGoldenWords(t *testing.T) {
	root := projectRoot()

	data, err := os.ReadFile(filepath.Join(root, "testdata", "golden", "words.json"))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	var want golden
	if err := json.Unmarshal(data, &want); err != nil {
		t.Fatalf("failed to parse golden JSON: %v", err)
	}

	doc := loadInput(t, "words.txt")
	sum, err := calibration.Sum(doc.Lines, vocab.English())
	if err != nil {
		t.Fatal(err)
	}

	if sum.Total != want.Total {
		t.Errorf("total = %d, want %d", sum.Total, want.Total)
	}
	if len(sum.Lines) != len(want.Scores) {
		t.Fatalf("got %d lines, want %d", len(sum.Lines), len(want.Scores))
	}
	var folded int64
	for i, l := range sum.Lines {
		if l.Score != want.Scores[i] {
			t.Errorf("line %d (%q) = %d, want %d", l.Number, l.Text, l.Score, want.Scores[i])
		}
		folded += int64(want.Scores[i])
	}
	if folded != want.Total {
		t.Errorf("golden scores sum to %d, golden total is %d", folded, want.Total)
	}
}

func TestGoldenDigits(t *testing.T) {
	doc := loadInput(t, "digits.txt")
	sum, err := calibration.Sum(doc.Lines, vocab.English())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Total != 142 {
		t.Errorf("total = %d, want 142", sum.Total)
	}
}

func TestGoldenMalformed(t *testing.T) {
	doc := loadInput(t, "malformed.txt")
	_, err := calibration.Sum(doc.Lines, vocab.English())
	if !errors.Is(err, score.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	var le *calibration.LineError
	if !errors.As(err, &le) || le.Number != 2 {
		t.Errorf("expected failure on line 2, got %v", err)
	}
}
