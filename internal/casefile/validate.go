package casefile

import (
	"fmt"

	"github.com/dshills/dosimetria/internal/sentence"
)

// ValidationError describes a single problem in a case file.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a case for structural validity before it is computed.
// Bounds and duration factors are read on cal.
func Validate(c *Case, cal sentence.Calendar) []ValidationError {
	var errs []ValidationError

	minDays, minErr := cal.ParseBound(c.Min)
	if minErr != nil {
		errs = append(errs, ValidationError{"min", minErr.Error()})
	}
	maxDays, maxErr := cal.ParseBound(c.Max)
	if maxErr != nil {
		errs = append(errs, ValidationError{"max", maxErr.Error()})
	}
	if minErr == nil && maxErr == nil && minDays > maxDays {
		errs = append(errs, ValidationError{"min", fmt.Sprintf("minimum %s exceeds maximum %s", c.Min, c.Max)})
	}

	if c.Criteria != nil && *c.Criteria < 0 {
		errs = append(errs, ValidationError{"criteria", "must be >= 0"})
	}
	if c.Aggravating != nil && *c.Aggravating < 0 {
		errs = append(errs, ValidationError{"aggravating", "must be >= 0"})
	}
	if c.Mitigating != nil && *c.Mitigating < 0 {
		errs = append(errs, ValidationError{"mitigating", "must be >= 0"})
	}

	// Phases are applied in order, so a later phase needs the earlier ones.
	if c.HasCircumstances() && !c.HasBase() {
		errs = append(errs, ValidationError{"aggravating", "phase two given without criteria"})
	}
	if c.HasModifiers() && !c.HasCircumstances() {
		errs = append(errs, ValidationError{"majoring", "phase three given without aggravating/mitigating counts"})
	}

	errs = append(errs, validateFactors(cal, "majoring", c.Majoring)...)
	errs = append(errs, validateFactors(cal, "minoring", c.Minoring)...)

	return errs
}

func validateFactors(cal sentence.Calendar, field string, factors []Factor) []ValidationError {
	var errs []ValidationError
	for i, f := range factors {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		m, err := f.Modifier(cal)
		if err != nil {
			errs = append(errs, ValidationError{prefix, err.Error()})
			continue
		}
		if !m.IsAbsolute() && m.Value() < 0 {
			errs = append(errs, ValidationError{prefix, "fraction must be >= 0"})
		}
	}
	return errs
}
