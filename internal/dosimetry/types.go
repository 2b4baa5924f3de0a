// Package dosimetry computes a criminal sentence with the three-phase method:
// a base sentence within the statutory range, then aggravating and mitigating
// circumstances, then majoring and minoring factors.
package dosimetry

import "github.com/dshills/dosimetria/internal/sentence"

// Step is the outcome of one change to a case.
type Step struct {
	// Phase is zero for the opening step, which carries the statutory minimum.
	Phase     Phase             `json:"phase" yaml:"phase"`
	Item      int               `json:"item,omitempty" yaml:"item,omitempty"`
	Direction Direction         `json:"direction,omitempty" yaml:"direction,omitempty"`
	Delta     int               `json:"delta_days" yaml:"delta_days"`
	Sentence  sentence.Duration `json:"-" yaml:"-"`
	FineDays  int               `json:"fine_days" yaml:"fine_days"`
	FineDelta int               `json:"fine_delta_days,omitempty" yaml:"fine_delta_days,omitempty"`
}

// DeltaMonths returns the delta in fractional months of the sentence's calendar.
func (s Step) DeltaMonths() float64 {
	return s.Sentence.Calendar().InMonths(s.Delta)
}

// ModifierOutcome collects the steps of phase three in application order,
// majoring factors first.
type ModifierOutcome struct {
	Steps    []Step
	Sentence sentence.Duration
}
