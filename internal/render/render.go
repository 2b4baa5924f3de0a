package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/report"
	"github.com/dshills/dosimetria/internal/sentence"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	// Summary
	b.WriteString("# Dosimetria\n\n")
	if r.Crime != "" {
		fmt.Fprintf(&b, "**Crime:** %s\n", r.Crime)
	}
	fmt.Fprintf(&b, "**Pena em abstrato:** %s a %s\n",
		inline(r.Calendar.Days(r.MinDays)), inline(r.Calendar.Days(r.MaxDays)))
	fmt.Fprintf(&b, "**Pena:** %s\n", r.Final.Text)
	fmt.Fprintf(&b, "**Multa:** %d dias-multa\n\n", r.Final.FineDays)

	if r.Regime != "" {
		b.WriteString(r.Regime)
	}

	// Phases
	b.WriteString("## Fases\n\n")
	for _, e := range r.Steps {
		fmt.Fprintf(&b, "- %s\n", Step(r.Crime, e.Step))
	}
	b.WriteString("\n")

	// Modifiers
	modifiers := filterSteps(r.Steps, dosimetry.PhaseModifiers)
	if len(modifiers) > 0 {
		b.WriteString("## Causas de aumento e diminuição\n\n")
		b.WriteString("| # | Tipo | Dias | Pena |\n|---|---|---|---|\n")
		for _, e := range modifiers {
			fmt.Fprintf(&b, "| %d | %s | %+d | %s |\n",
				e.Item, directionWords[e.Direction], e.Delta, inline(e.Sentence))
		}
		b.WriteString("\n")
	}

	// Result
	b.WriteString("## Resultado\n\n")
	final := r.Calendar.Days(r.Final.SentenceDays)
	if r.Complete {
		fmt.Fprintf(&b, "%s\n", Final(final))
	} else {
		fmt.Fprintf(&b, "%s\n", final.Format(sentence.FormatOptions{Lead: true, Period: true}))
	}
	fmt.Fprintf(&b, "%s\n", Fine(r.Final.FineDays))

	if r.Input.CaseFile != "" {
		fmt.Fprintf(&b, "\n_%s, %s, regime %s_\n", r.Input.CaseFile, r.Input.CaseHash, r.Input.Profile)
	}

	return b.String()
}

// JSON renders a report as indented JSON.
func JSON(r *report.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render.JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAML renders a report as YAML.
func YAML(r *report.Report) ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("render.YAML: %w", err)
	}
	return data, nil
}

func filterSteps(entries []report.Entry, phase dosimetry.Phase) []report.Entry {
	var result []report.Entry
	for _, e := range entries {
		if e.Phase == phase {
			result = append(result, e)
		}
	}
	return result
}
