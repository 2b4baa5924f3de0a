package sentence

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Unit suffixes for qualified tokens.
const (
	UnitYears  = 'a'
	UnitMonths = 'm'
	UnitDays   = 'd'
)

var (
	ErrEmptyToken   = errors.New("token too short")
	ErrMissingUnit  = errors.New("missing unit suffix")
	ErrBadMagnitude = errors.New("invalid magnitude")
)

// ParseError reports a malformed duration token.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse duration %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseQualified converts a qualified token such as "1.5a", "3m" or "10d" to
// days on the standard calendar.
func ParseQualified(token string) (int, error) {
	return Standard.ParseQualified(token)
}

// ParseBound converts a statutory bound such as "6a" or "18m" to days on the
// standard calendar.
func ParseBound(token string) (int, error) {
	return Standard.ParseBound(token)
}

// ParseQualified converts a token whose last rune is a unit ('a' years,
// 'm' months, anything else raw days) and whose prefix is a signed decimal
// magnitude. The result is truncated toward zero.
func (c Calendar) ParseQualified(token string) (int, error) {
	magnitude, u, err := split(token)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(magnitude, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ParseError{Token: token, Err: ErrBadMagnitude}
	}
	switch u {
	case UnitYears:
		f *= float64(c.DaysPerYear())
	case UnitMonths:
		f *= float64(c.DaysPerMonth)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, &ParseError{Token: token, Err: ErrBadMagnitude}
	}
	return int(f), nil
}

// ParseBound converts a statutory bound: 'm' means months and any other unit
// means years. The magnitude must be a non-negative integer.
func (c Calendar) ParseBound(token string) (int, error) {
	magnitude, u, err := split(token)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(magnitude)
	if err != nil || n < 0 {
		return 0, &ParseError{Token: token, Err: ErrBadMagnitude}
	}
	per := c.DaysPerYear()
	if u == UnitMonths {
		per = c.DaysPerMonth
	}
	if n > math.MaxInt32/per {
		return 0, &ParseError{Token: token, Err: ErrBadMagnitude}
	}
	return n * per, nil
}

func split(token string) (string, rune, error) {
	t := strings.TrimSpace(token)
	if utf8.RuneCountInString(t) < 2 {
		return "", 0, &ParseError{Token: token, Err: ErrEmptyToken}
	}
	u, size := utf8.DecodeLastRuneInString(t)
	if u >= '0' && u <= '9' || u == '.' {
		return "", 0, &ParseError{Token: token, Err: ErrMissingUnit}
	}
	return t[:len(t)-size], u, nil
}
