package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jordansgrant/advent-of-code-2023/internal/calibration"
	"github.com/jordansgrant/advent-of-code-2023/internal/input"
	"github.com/jordansgrant/advent-of-code-2023/internal/render"
	"github.com/jordansgrant/advent-of-code-2023/internal/score"
	"github.com/jordansgrant/advent-of-code-2023/internal/vocab"
)

const defaultInput = "input.txt"

const (
	exitInput     = 3
	exitMalformed = 5
)

type sumFlags struct {
	format  string
	out     string
	verbose bool

	stdout io.Writer
	stderr io.Writer
}

func newSumCmd() *cobra.Command {
	f := &sumFlags{}

	cmd := &cobra.Command{
		Use:   "sum [input-file]",
		Short: "Sum the calibration value of every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInput
			if len(args) == 1 {
				path = args[0]
			}
			f.stdout = cmd.OutOrStdout()
			f.stderr = cmd.ErrOrStderr()
			return runSum(path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, json, or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runSum(path string, f *sumFlags) error {
	stdout, stderr := f.stdout, f.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := log.New(stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	switch f.format {
	case "text", "json", "md":
	default:
		return exitError(exitInput, "unknown format: %s", f.format)
	}

	// 1. Load input
	verbose("Loading input: %s", path)
	doc, err := input.Load(path)
	if err != nil {
		return exitError(exitInput, "failed to load input: %v", err)
	}
	verbose("Read %d lines (%s)", len(doc.Lines), doc.Hash)

	// 2. Score and sum
	v := vocab.English()
	verbose("Scoring with %s vocabulary", v.Name())
	sum, err := calibration.Sum(doc.Lines, v)
	if err != nil {
		if errors.Is(err, score.ErrNoToken) {
			return exitError(exitMalformed, "malformed input %s: %v", filepath.Base(path), err)
		}
		return fmt.Errorf("failed to score input: %w", err)
	}
	verbose("Scored %d lines, total %d", len(sum.Lines), sum.Total)

	rep := &render.Report{
		Tool:       "trebuchet",
		Version:    version,
		Input:      render.Input{File: filepath.Base(doc.FilePath), Hash: doc.Hash},
		Vocabulary: v.Name(),
		Lines:      sum.Lines,
		Total:      sum.Total,
	}

	// 3. Output
	var output string
	switch f.format {
	case "json":
		output, err = render.JSON(rep)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
	case "md":
		output = render.Markdown(rep)
	default:
		output = render.Text(rep)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, output)
	return err
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
