package sentence

import (
	"fmt"
	"strings"
)

// LeadPhrase opens a full sentence about the penalty.
const LeadPhrase = "A pena é de "

// FormatOptions controls Format.
type FormatOptions struct {
	RawDays bool // render only the absolute day count
	Lead    bool // prepend LeadPhrase
	Period  bool // append a full stop
}

// Format renders d in Portuguese, e.g. "14 anos e 9 meses" or
// "2 anos, 3 meses e 10 dias". An empty duration always renders as raw days.
func (d Duration) Format(opts FormatOptions) string {
	var b strings.Builder
	if opts.Lead {
		b.WriteString(LeadPhrase)
	}

	if opts.RawDays || d.total == 0 {
		b.WriteString(unit(d.total, "dia", "dias"))
	} else {
		p := d.Parts()
		if p.Years != 0 {
			b.WriteString(unit(p.Years, "ano", "anos"))
		}
		switch {
		case p.Months != 0 && p.Days != 0:
			if p.Years != 0 {
				b.WriteString(", ")
			}
			b.WriteString(unit(p.Months, "mês", "meses"))
		case p.Months != 0:
			if p.Years != 0 {
				b.WriteString(" e ")
			}
			b.WriteString(unit(p.Months, "mês", "meses"))
		}
		if p.Days != 0 {
			if p.Years != 0 || p.Months != 0 {
				b.WriteString(" e ")
			}
			b.WriteString(unit(p.Days, "dia", "dias"))
		}
	}

	if opts.Period {
		b.WriteString(".")
	}
	return b.String()
}

// String renders the duration without lead phrase or period.
func (d Duration) String() string {
	return d.Format(FormatOptions{})
}

func unit(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
