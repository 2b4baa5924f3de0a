package dosimetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dshills/dosimetria/internal/sentence"
)

// Modifier is a phase-three factor: either a fraction of the running sentence
// or an absolute number of days.
type Modifier struct {
	fraction float64
	days     int
	absolute bool
}

// Fraction returns a modifier worth f times the running sentence.
func Fraction(f float64) Modifier {
	return Modifier{fraction: f}
}

// Absolute returns a modifier worth a fixed number of days.
func Absolute(days int) Modifier {
	return Modifier{days: days, absolute: true}
}

// ParseModifier reads a modifier token on the standard calendar.
func ParseModifier(token string) (Modifier, error) {
	return ParseModifierIn(sentence.Standard, token)
}

// ParseModifierIn reads a modifier token. "p/q" is a fraction such as "1/3";
// anything else is a qualified duration such as "6m" or "1.5a", measured on cal.
func ParseModifierIn(cal sentence.Calendar, token string) (Modifier, error) {
	t := strings.TrimSpace(token)
	if num, den, ok := strings.Cut(t, "/"); ok {
		p, perr := strconv.ParseFloat(strings.TrimSpace(num), 64)
		q, qerr := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if perr != nil || qerr != nil || q == 0 || math.IsNaN(p/q) || math.IsInf(p/q, 0) {
			return Modifier{}, fmt.Errorf("dosimetry.ParseModifier: invalid fraction %q", token)
		}
		return Fraction(p / q), nil
	}
	days, err := cal.ParseQualified(t)
	if err != nil {
		return Modifier{}, fmt.Errorf("dosimetry.ParseModifier: %w", err)
	}
	return Absolute(days), nil
}

// IsAbsolute reports whether m is a fixed number of days.
func (m Modifier) IsAbsolute() bool { return m.absolute }

// Value returns the fraction, or the day count for absolute modifiers.
func (m Modifier) Value() float64 {
	if m.absolute {
		return float64(m.days)
	}
	return m.fraction
}

// delta returns the unsigned contribution of m against the running total.
func (m Modifier) delta(current sentence.Duration) int {
	if m.absolute {
		return m.days
	}
	return int(float64(current.Total()) * m.fraction)
}

func (m Modifier) String() string {
	if m.absolute {
		return sentence.Days(m.days).Format(sentence.FormatOptions{RawDays: true})
	}
	return strconv.FormatFloat(m.fraction, 'g', -1, 64)
}
