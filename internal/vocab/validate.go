package vocab

import (
	"fmt"
	"strings"
)

// ValidationError describes a single table violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// ValidationErrors collects every violation found in a table.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks that a table has exactly Size words, values 1..Size each
// used once, and distinct non-empty spellings.
func Validate(t *Table) ValidationErrors {
	var errs ValidationErrors

	if len(t.Words) != Size {
		errs = append(errs, ValidationError{"words", fmt.Sprintf("expected %d entries, got %d", Size, len(t.Words))})
	}

	spellings := make(map[string]int)
	values := make(map[int]int)
	for i, w := range t.Words {
		prefix := fmt.Sprintf("words[%d]", i)

		if w.Spelling == "" {
			errs = append(errs, ValidationError{prefix + ".spelling", "required"})
		} else if j, dup := spellings[w.Spelling]; dup {
			errs = append(errs, ValidationError{prefix + ".spelling", fmt.Sprintf("duplicate of words[%d]: %q", j, w.Spelling)})
		} else {
			spellings[w.Spelling] = i
		}

		if w.Value < 1 || w.Value > Size {
			errs = append(errs, ValidationError{prefix + ".value", fmt.Sprintf("must be in 1..%d, got %d", Size, w.Value)})
		} else if j, dup := values[w.Value]; dup {
			errs = append(errs, ValidationError{prefix + ".value", fmt.Sprintf("duplicate of words[%d]: %d", j, w.Value)})
		} else {
			values[w.Value] = i
		}
	}

	return errs
}
