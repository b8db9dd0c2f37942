// Package input handles reading and hashing calibration documents.
package input

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"
)

// Document holds a loaded calibration file with its lines and metadata.
type Document struct {
	FilePath string
	Lines    []string
	Hash     string
}

// Load reads a calibration file and computes its SHA-256 hash.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input.Load: %w", err)
	}
	return Parse(path, data), nil
}

// Parse splits data into lines. The empty element left by a trailing
// newline is dropped; an empty document has no lines.
func Parse(path string, data []byte) *Document {
	h := sha256.Sum256(data)
	return &Document{
		FilePath: path,
		Lines:    splitLines(string(data)),
		Hash:     fmt.Sprintf("sha256:%x", h),
	}
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
