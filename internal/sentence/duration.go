// Package sentence models a custodial sentence as an absolute number of days
// and derives its years/months/days breakdown on a fixed legal calendar.
package sentence

// Calendar fixes the unit sizes used to decompose and parse durations.
// Sentencing practice counts every month as 30 days and every year as 12
// months, so a year is 360 days rather than 365.
type Calendar struct {
	DaysPerMonth  int `json:"days_per_month" yaml:"days_per_month"`
	MonthsPerYear int `json:"months_per_year" yaml:"months_per_year"`
}

// Standard is the 30-day month, 12-month year calendar.
var Standard = Calendar{DaysPerMonth: 30, MonthsPerYear: 12}

// DaysPerYear returns the number of days in a calendar year.
func (c Calendar) DaysPerYear() int {
	return c.DaysPerMonth * c.MonthsPerYear
}

// Valid reports whether both unit sizes are positive.
func (c Calendar) Valid() bool {
	return c.DaysPerMonth > 0 && c.MonthsPerYear > 0
}

// Parts is the calendar breakdown of a duration.
type Parts struct {
	Years       int `json:"years" yaml:"years"`
	Months      int `json:"months" yaml:"months"`
	Days        int `json:"days" yaml:"days"`
	TotalMonths int `json:"total_months" yaml:"total_months"`
}

// Days returns a duration of n days measured on c.
func (c Calendar) Days(n int) Duration {
	return Duration{total: n, cal: c}
}

// InMonths converts days to fractional months.
func (c Calendar) InMonths(days int) float64 {
	return float64(days) / float64(c.DaysPerMonth)
}

// Split decomposes d with floor division, so the remainders always carry the
// sign of the divisor: -1 day splits into -1 years, 11 months, 29 days.
func (c Calendar) Split(d Duration) Parts {
	totalMonths := floorDiv(d.total, c.DaysPerMonth)
	return Parts{
		Years:       floorDiv(totalMonths, c.MonthsPerYear),
		Months:      floorMod(totalMonths, c.MonthsPerYear),
		Days:        floorMod(d.total, c.DaysPerMonth),
		TotalMonths: totalMonths,
	}
}

// Duration is an immutable span of days tied to the calendar that breaks it
// down. The zero value is an empty sentence on the standard calendar.
type Duration struct {
	total int
	cal   Calendar
}

// Zero is the empty duration.
var Zero = Duration{}

// Days returns a duration of n days on the standard calendar.
func Days(n int) Duration {
	return Standard.Days(n)
}

// Adjust returns a new duration moved by delta days. Negative deltas are
// allowed and may take the total below zero.
func (d Duration) Adjust(delta int) Duration {
	return Duration{total: d.total + delta, cal: d.cal}
}

// Total returns the absolute number of days.
func (d Duration) Total() int { return d.total }

// Calendar returns the calendar d is measured on.
func (d Duration) Calendar() Calendar {
	if !d.cal.Valid() {
		return Standard
	}
	return d.cal
}

// Equal reports whether d and o span the same number of days.
func (d Duration) Equal(o Duration) bool { return d.total == o.total }

// IsZero reports whether the duration is empty.
func (d Duration) IsZero() bool { return d.total == 0 }

// Parts returns the breakdown on d's calendar.
func (d Duration) Parts() Parts { return d.Calendar().Split(d) }

// Years returns whole years.
func (d Duration) Years() int { return d.Parts().Years }

// Months returns the months left after whole years.
func (d Duration) Months() int { return d.Parts().Months }

// TotalMonths returns whole months, floor-divided.
func (d Duration) TotalMonths() int { return d.Parts().TotalMonths }

// DaysPart returns the days left after whole months.
func (d Duration) DaysPart() int { return d.Parts().Days }

// InMonths converts delta days to fractional months on the standard calendar.
func InMonths(days int) float64 {
	return Standard.InMonths(days)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
