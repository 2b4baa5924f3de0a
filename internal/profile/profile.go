// Package profile handles loading and describing built-in sentencing regimes.
package profile

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/sentence"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Default is the profile used when none is named.
const Default = "cp-br"

// ErrUnknownProfile is returned for a name with no built-in regime.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile defines the constants of a sentencing regime.
type Profile struct {
	Name        string            `yaml:"name"`
	Version     int               `yaml:"version"`
	Description string            `yaml:"description"`
	Calendar    sentence.Calendar `yaml:"calendar"`
	Weights     Weights           `yaml:"weights"`
	MaxCriteria int               `yaml:"max_criteria"`
	Fine        Fine              `yaml:"fine"`
}

// Weights holds the per-factor shares of phases one and two.
type Weights struct {
	Base          Ratio `yaml:"base"`
	Circumstances Ratio `yaml:"circumstances"`
}

// Fine defines the days-fine bounds and how phase one weighs them.
type Fine struct {
	MinDays int                  `yaml:"min_days"`
	MaxDays int                  `yaml:"max_days"`
	Policy  dosimetry.FinePolicy `yaml:"policy"`
}

// Ratio is a weight written either as a decimal or as "p/q".
type Ratio struct {
	Num, Den float64
}

// Float returns the ratio as a float64.
func (r Ratio) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return r.Num / r.Den
}

func (r Ratio) String() string {
	if r.Den == 1 {
		return strconv.FormatFloat(r.Num, 'g', -1, 64)
	}
	return strconv.FormatFloat(r.Num, 'g', -1, 64) + "/" + strconv.FormatFloat(r.Den, 'g', -1, 64)
}

// UnmarshalYAML accepts 0.125 as well as "1/8".
func (r *Ratio) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: weight must be a scalar", node.Line)
	}
	num, den, found := strings.Cut(node.Value, "/")
	p, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid weight %q", node.Line, node.Value)
	}
	q := 1.0
	if found {
		q, err = strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || q == 0 {
			return fmt.Errorf("line %d: invalid weight %q", node.Line, node.Value)
		}
	}
	r.Num, r.Den = p, q
	return nil
}

// Config converts the profile into engine constants.
func (p *Profile) Config() (dosimetry.Config, error) {
	cfg := dosimetry.Config{
		Calendar:           p.Calendar,
		BaseWeight:         p.Weights.Base.Float(),
		CircumstanceWeight: p.Weights.Circumstances.Float(),
		MaxCriteria:        p.MaxCriteria,
		FineMinDays:        p.Fine.MinDays,
		FineMaxDays:        p.Fine.MaxDays,
		FinePolicy:         p.Fine.Policy,
	}
	if cfg.FinePolicy == "" {
		cfg.FinePolicy = dosimetry.FineUnclamped
	}
	if err := cfg.Validate(); err != nil {
		return dosimetry.Config{}, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return cfg, nil
}

// Parse decodes a profile from YAML.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile.Parse: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile.Parse: name is required")
	}
	return &p, nil
}

// LoadBuiltin loads a built-in regime by name. Unknown names fail with
// ErrUnknownProfile and the list of regimes on offer.
func LoadBuiltin(name string) (*Profile, error) {
	names, err := List()
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: %w", err)
	}
	if !slices.Contains(names, name) {
		return nil, fmt.Errorf("profile.LoadBuiltin: %w %q (available: %s)",
			ErrUnknownProfile, name, strings.Join(names, ", "))
	}
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: %q: %w", name, err)
	}
	if p.Name != name {
		return nil, fmt.Errorf("profile.LoadBuiltin: file %q declares regime %q", name, p.Name)
	}
	return p, nil
}

// List returns the names of the built-in regimes in lexical order.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("profile.List: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok && !e.IsDir() {
			names = append(names, n)
		}
	}
	return names, nil
}

// Describe renders the profile as Markdown for inclusion in a report.
func Describe(p *Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Regime: %s\n\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(p.Description))
	}

	fmt.Fprintf(&b, "- Calendar: %d days per month, %d months per year\n",
		p.Calendar.DaysPerMonth, p.Calendar.MonthsPerYear)
	fmt.Fprintf(&b, "- Phase one: %s of the range per criterion, up to %d criteria\n",
		p.Weights.Base, p.MaxCriteria)
	fmt.Fprintf(&b, "- Phase two: %s of the sentence per circumstance\n", p.Weights.Circumstances)
	fmt.Fprintf(&b, "- Fine: %d to %d days-fine (%s)\n", p.Fine.MinDays, p.Fine.MaxDays, p.Fine.Policy)
	b.WriteString("\n")

	return b.String()
}
