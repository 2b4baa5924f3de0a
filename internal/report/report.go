// Package report runs a case file through the sentencing engine and records
// every step.
package report

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dshills/dosimetria/internal/casefile"
	"github.com/dshills/dosimetria/internal/config"
	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/profile"
	"github.com/dshills/dosimetria/internal/sentence"
)

// Tool identifies the producer of a report.
const Tool = "dosimetria"

// Report is the computed outcome of one case.
type Report struct {
	Tool     string  `json:"tool" yaml:"tool"`
	Input    Input   `json:"input" yaml:"input"`
	Crime    string  `json:"crime,omitempty" yaml:"crime,omitempty"`
	MinDays  int     `json:"min_days" yaml:"min_days"`
	MaxDays  int     `json:"max_days" yaml:"max_days"`
	Steps    []Entry `json:"steps" yaml:"steps"`
	Final    Summary `json:"final" yaml:"final"`
	Complete bool    `json:"complete" yaml:"complete"`

	Calendar sentence.Calendar `json:"calendar" yaml:"calendar"`

	Regime string `json:"-" yaml:"-"`
}

// Input describes the case file and regime used.
type Input struct {
	CaseFile string `json:"case_file,omitempty" yaml:"case_file,omitempty"`
	CaseHash string `json:"case_hash" yaml:"case_hash"`
	Profile  string `json:"profile" yaml:"profile"`
}

// Entry is one engine step with its sentence snapshot.
type Entry struct {
	dosimetry.Step `yaml:",inline"`
	SentenceDays   int            `json:"sentence_days" yaml:"sentence_days"`
	Parts          sentence.Parts `json:"parts" yaml:"parts"`
}

// Summary is the sentence and fine after the last evaluated phase.
type Summary struct {
	SentenceDays int            `json:"sentence_days" yaml:"sentence_days"`
	Parts        sentence.Parts `json:"parts" yaml:"parts"`
	Text         string         `json:"text" yaml:"text"`
	FineDays     int            `json:"fine_days" yaml:"fine_days"`
}

// ErrInvalidCase is returned when a case fails validation.
var ErrInvalidCase = errors.New("invalid case")

// Compute resolves the sentencing regime, validates c, opens the crime, and
// evaluates each phase the case supplies. The regime is the named profile,
// else the case's own, else DOSIMETRIA_PROFILE. DOSIMETRIA_FINE_POLICY
// overrides the fine policy of whichever regime is chosen.
func Compute(c *casefile.Case, profileName string, opts ...dosimetry.Option) (*Report, error) {
	env, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("report.Compute: %w", err)
	}
	switch {
	case profileName != "":
		env.Profile = profileName
	case c.Profile != "":
		env.Profile = c.Profile
	}
	prof, cfg, err := config.Resolve(env)
	if err != nil {
		return nil, fmt.Errorf("report.Compute: %w", err)
	}

	if errs := casefile.Validate(c, cfg.Calendar); len(errs) > 0 {
		return nil, fmt.Errorf("report.Compute: %w: %s (%d problems)", ErrInvalidCase, errs[0], len(errs))
	}

	opts = append([]dosimetry.Option{dosimetry.WithConfig(cfg)}, opts...)
	cr, err := dosimetry.New(c.Name, c.Min, c.Max, opts...)
	if err != nil {
		return nil, fmt.Errorf("report.Compute: %w", err)
	}

	r := &Report{
		Tool: Tool,
		Input: Input{
			CaseHash: c.Hash,
			Profile:  prof.Name,
		},
		Crime:   cr.Name(),
		MinDays: cr.MinDays(),
		MaxDays: cr.MaxDays(),
		Regime:  profile.Describe(prof),

		Calendar: cr.Config().Calendar,
	}
	if c.FilePath != "" {
		r.Input.CaseFile = filepath.Base(c.FilePath)
	}
	r.add(cr.Opening())

	if c.HasBase() {
		step, err := cr.EvaluateBase(*c.Criteria)
		if err != nil {
			return nil, fmt.Errorf("report.Compute: %w", err)
		}
		r.add(step)
	}
	if c.HasCircumstances() {
		agg, mit := c.Counts()
		step, err := cr.EvaluateCircumstances(agg, mit)
		if err != nil {
			return nil, fmt.Errorf("report.Compute: %w", err)
		}
		r.add(step)
	}
	if c.HasModifiers() {
		majoring, err := casefile.Modifiers(r.Calendar, c.Majoring)
		if err != nil {
			return nil, fmt.Errorf("report.Compute: majoring: %w", err)
		}
		minoring, err := casefile.Modifiers(r.Calendar, c.Minoring)
		if err != nil {
			return nil, fmt.Errorf("report.Compute: minoring: %w", err)
		}
		out, err := cr.EvaluateModifiers(majoring, minoring)
		if err != nil {
			return nil, fmt.Errorf("report.Compute: %w", err)
		}
		for _, step := range out.Steps {
			r.add(step)
		}
	}

	final := cr.Sentence()
	r.Final = Summary{
		SentenceDays: final.Total(),
		Parts:        final.Parts(),
		Text:         final.Format(sentence.FormatOptions{}),
		FineDays:     cr.FineDays(),
	}
	r.Complete = cr.State() == dosimetry.ModifiersDone
	return r, nil
}

func (r *Report) add(s dosimetry.Step) {
	r.Steps = append(r.Steps, Entry{Step: s, SentenceDays: s.Sentence.Total(), Parts: s.Sentence.Parts()})
}
