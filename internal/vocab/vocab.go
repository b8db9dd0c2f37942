// Package vocab holds the fixed token table used to recognize digits in a line.
package vocab

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/english.yaml
var englishYAML []byte

// Size is the number of word entries a vocabulary must carry.
const Size = 9

// Word maps a spelled-out number to its value.
type Word struct {
	Spelling string `yaml:"spelling"`
	Value    int    `yaml:"value"`
}

// Table is the on-disk shape of a vocabulary.
type Table struct {
	Name  string `yaml:"name"`
	Words []Word `yaml:"words"`
}

// Token is a spelling that denotes a single digit, either a word or a digit character.
type Token struct {
	Spelling string `json:"spelling"`
	Value    int    `json:"value"`
}

// Vocabulary is a validated, read-only token table.
type Vocabulary struct {
	name   string
	tokens []Token
}

var english = mustParse(englishYAML)

// English returns the built-in English vocabulary.
func English() *Vocabulary {
	return english
}

// Parse decodes and validates a vocabulary table.
func Parse(data []byte) (*Vocabulary, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("vocab.Parse: %w", err)
	}
	if errs := Validate(&t); len(errs) > 0 {
		return nil, fmt.Errorf("vocab.Parse: %w", errs)
	}
	return build(&t), nil
}

func mustParse(data []byte) *Vocabulary {
	v, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return v
}

// build lists the words in table order followed by their digit characters.
func build(t *Table) *Vocabulary {
	tokens := make([]Token, 0, 2*len(t.Words))
	for _, w := range t.Words {
		tokens = append(tokens, Token{Spelling: w.Spelling, Value: w.Value})
	}
	for _, w := range t.Words {
		tokens = append(tokens, Token{Spelling: strconv.Itoa(w.Value), Value: w.Value})
	}
	return &Vocabulary{name: t.Name, tokens: tokens}
}

// Name returns the vocabulary's table name.
func (v *Vocabulary) Name() string { return v.name }

// Tokens returns a copy of every recognizable token.
func (v *Vocabulary) Tokens() []Token {
	out := make([]Token, len(v.tokens))
	copy(out, v.tokens)
	return out
}
