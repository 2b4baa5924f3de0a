package dosimetry

import (
	"fmt"

	"github.com/dshills/dosimetria/internal/sentence"
)

// FinePolicy selects which criteria count drives the phase-one fine.
type FinePolicy string

const (
	// FineUnclamped weighs the fine by the criteria count as given, even when
	// the custodial delta clamps it to MaxCriteria.
	FineUnclamped FinePolicy = "unclamped"
	// FineClamped weighs the fine by the same clamped count as the sentence.
	FineClamped FinePolicy = "clamped"
)

func (p FinePolicy) Valid() bool {
	switch p {
	case FineUnclamped, FineClamped:
		return true
	}
	return false
}

// Config holds the constants of a sentencing regime.
type Config struct {
	Calendar sentence.Calendar

	// BaseWeight is the share of the statutory range added per unfavorable
	// judicial criterion in phase one.
	BaseWeight float64
	// CircumstanceWeight is the share of the current sentence added per net
	// aggravating circumstance in phase two.
	CircumstanceWeight float64
	// MaxCriteria caps the criteria count in phase one.
	MaxCriteria int

	FineMinDays int
	// FineMaxDays is the statutory ceiling for fine-days. It sizes the
	// phase-one fine range but is not enforced on the accumulator.
	FineMaxDays int
	FinePolicy  FinePolicy
}

// DefaultConfig returns the regime of the Brazilian Penal Code as commonly
// applied: 1/8 per judicial criterion, 1/6 per circumstance, fines between
// 10 and 360 days.
func DefaultConfig() Config {
	return Config{
		Calendar:           sentence.Standard,
		BaseWeight:         1.0 / 8,
		CircumstanceWeight: 1.0 / 6,
		MaxCriteria:        8,
		FineMinDays:        10,
		FineMaxDays:        360,
		FinePolicy:         FineUnclamped,
	}
}

// Validate checks that the constants describe a usable regime.
func (c Config) Validate() error {
	switch {
	case !c.Calendar.Valid():
		return fmt.Errorf("dosimetry.Config: invalid calendar %+v", c.Calendar)
	case c.BaseWeight <= 0 || c.CircumstanceWeight <= 0:
		return fmt.Errorf("dosimetry.Config: weights must be positive")
	case c.MaxCriteria < 0:
		return fmt.Errorf("dosimetry.Config: max criteria must be non-negative")
	case c.FineMinDays > c.FineMaxDays:
		return fmt.Errorf("dosimetry.Config: fine minimum %d exceeds maximum %d", c.FineMinDays, c.FineMaxDays)
	case !c.FinePolicy.Valid():
		return fmt.Errorf("dosimetry.Config: invalid fine policy %q", c.FinePolicy)
	}
	return nil
}

func (c Config) fineCount(given, clamped int) int {
	if c.FinePolicy == FineClamped {
		return clamped
	}
	return given
}
