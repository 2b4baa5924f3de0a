// Package render produces the Portuguese messages and reports for a case.
package render

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/sentence"
)

var phaseWords = map[dosimetry.Phase]string{
	dosimetry.PhaseBase:          "primeira",
	dosimetry.PhaseCircumstances: "segunda",
	dosimetry.PhaseModifiers:     "terceira",
}

var directionWords = map[dosimetry.Direction]string{
	dosimetry.Majoring: "majorante",
	dosimetry.Minoring: "minorante",
}

// Opening announces the statutory minimum of a newly opened case.
func Opening(name string, s dosimetry.Step) string {
	subject := "avaliado"
	if name != "" {
		subject = "de " + name
	}
	return fmt.Sprintf("Para o crime %s, pena mínima é de %s",
		subject, s.Sentence.Format(sentence.FormatOptions{Period: true}))
}

// Step describes the sentence after an evaluated step.
func Step(name string, s dosimetry.Step) string {
	switch s.Phase {
	case dosimetry.PhaseBase, dosimetry.PhaseCircumstances:
		return fmt.Sprintf("A pena após valoração da %dª fase é de %s (%s meses).",
			s.Phase.Ordinal(), inline(s.Sentence), signedMonths(s))
	case dosimetry.PhaseModifiers:
		return fmt.Sprintf("A pena após a %dª %s é de %s (%s meses).",
			s.Item, directionWords[s.Direction], inline(s.Sentence), signedMonths(s))
	}
	return Opening(name, s)
}

// Final states the definitive sentence after phase three.
func Final(d sentence.Duration) string {
	return fmt.Sprintf("A pena definitiva é de %s", d.Format(sentence.FormatOptions{Period: true}))
}

// Fine states the accumulated days-fine.
func Fine(days int) string {
	return fmt.Sprintf("A multa é de %d dias-multa.", days)
}

// Notice explains why a phase was not evaluated. Errors other than
// *dosimetry.PhaseError are returned as their message.
func Notice(name string, err error) string {
	var pe *dosimetry.PhaseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	if pe.Kind == dosimetry.PrerequisiteMissing {
		subject := "crime"
		if name != "" {
			subject = name
		}
		return fmt.Sprintf("O %s ainda não foi avaliado na %s fase.", subject, phaseWords[pe.Missing])
	}
	subject := "Crime"
	if name != "" {
		subject = capitalize(name)
	}
	return fmt.Sprintf("%s já avaliado na %s fase.", subject, phaseWords[pe.Phase])
}

func inline(d sentence.Duration) string {
	return d.Format(sentence.FormatOptions{})
}

func signedMonths(s dosimetry.Step) string {
	m := s.DeltaMonths()
	if s.Delta >= 0 {
		return fmt.Sprintf("+%.1f", m)
	}
	return fmt.Sprintf("%.1f", m)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.BrazilianPortuguese).String(string(r)) + s[size:]
}
