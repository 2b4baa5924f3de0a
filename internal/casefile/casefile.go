// Package casefile handles reading, hashing, and decoding sentencing case files.
package casefile

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/sentence"
)

// Case holds a loaded case file: the crime, its statutory range, and the
// inputs of each phase that has been decided so far.
type Case struct {
	FilePath string `yaml:"-"`
	Raw      string `yaml:"-"`
	Hash     string `yaml:"-"`

	Name    string `yaml:"name"`
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`
	Profile string `yaml:"profile,omitempty"`

	Criteria    *int `yaml:"criteria,omitempty"`
	Aggravating *int `yaml:"aggravating,omitempty"`
	Mitigating  *int `yaml:"mitigating,omitempty"`

	Majoring []Factor `yaml:"majoring,omitempty"`
	Minoring []Factor `yaml:"minoring,omitempty"`
}

// HasBase reports whether phase one inputs are present.
func (c *Case) HasBase() bool { return c.Criteria != nil }

// HasCircumstances reports whether phase two inputs are present.
func (c *Case) HasCircumstances() bool { return c.Aggravating != nil || c.Mitigating != nil }

// HasModifiers reports whether phase three inputs are present. An explicit
// empty list ("majoring: []") closes phase three with no factors.
func (c *Case) HasModifiers() bool { return c.Majoring != nil || c.Minoring != nil }

// Counts returns the phase two inputs, zero when absent.
func (c *Case) Counts() (aggravating, mitigating int) {
	if c.Aggravating != nil {
		aggravating = *c.Aggravating
	}
	if c.Mitigating != nil {
		mitigating = *c.Mitigating
	}
	return aggravating, mitigating
}

// Factor is a phase-three entry as written: a YAML number is a fraction of the
// running sentence, a string is a "p/q" fraction or a qualified duration.
type Factor struct {
	Value   string
	Numeric bool
}

// UnmarshalYAML keeps the raw scalar; Modifier interprets it.
func (f *Factor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: factor must be a number or a string", node.Line)
	}
	f.Value = node.Value
	f.Numeric = node.Tag == "!!int" || node.Tag == "!!float"
	return nil
}

// Modifier converts the factor for the engine. Durations are measured on cal.
func (f Factor) Modifier(cal sentence.Calendar) (dosimetry.Modifier, error) {
	if f.Numeric {
		v, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			return dosimetry.Modifier{}, fmt.Errorf("invalid fraction %q", f.Value)
		}
		return dosimetry.Fraction(v), nil
	}
	return dosimetry.ParseModifierIn(cal, f.Value)
}

// Modifiers converts a list of factors on cal.
func Modifiers(cal sentence.Calendar, factors []Factor) ([]dosimetry.Modifier, error) {
	mods := make([]dosimetry.Modifier, 0, len(factors))
	for i, f := range factors {
		m, err := f.Modifier(cal)
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", i+1, err)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// Load reads a case file and computes its SHA-256 hash.
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("casefile.Load: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("casefile.Load: %s: %w", path, err)
	}
	c.FilePath = path
	return c, nil
}

// Parse decodes a case from YAML.
func Parse(data []byte) (*Case, error) {
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse case: %w", err)
	}
	h := sha256.Sum256(data)
	c.Raw = string(data)
	c.Hash = fmt.Sprintf("sha256:%x", h)
	return &c, nil
}
