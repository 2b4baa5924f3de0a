package render

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dosimetria/internal/casefile"
	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/report"
	"github.com/dshills/dosimetria/internal/sentence"
)

func sampleReport(t *testing.T) *report.Report {
	t.Helper()
	c, err := casefile.Parse([]byte(`name: Roubo
min: 4a
max: 10a
criteria: 3
aggravating: 1
mitigating: 0
majoring: [0.25, "6m"]
minoring: ["1/2"]
`))
	if err != nil {
		t.Fatal(err)
	}
	c.FilePath = "/cases/roubo.yaml"
	r, err := report.Compute(c, "")
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport(t))

	checks := []string{
		"# Dosimetria",
		"**Crime:** roubo",
		"**Pena em abstrato:** 4 anos a 10 anos",
		"## Regime: cp-br",
		"## Fases",
		"- Para o crime de roubo, pena mínima é de 4 anos.",
		"- A pena após valoração da 1ª fase é de 6 anos e 3 meses (+27.0 meses).",
		"- A pena após valoração da 2ª fase é de 7 anos, 3 meses e 15 dias (+12.5 meses).",
		"## Causas de aumento e diminuição",
		"| 1 | majorante | +656 |",
		"| 1 | minorante |",
		"## Resultado",
		"A pena definitiva é de",
		"A multa é de 141 dias-multa.",
		"_roubo.yaml, sha256:",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestMarkdownPartial(t *testing.T) {
	c, err := casefile.Parse([]byte("min: 6a\nmax: 20a\ncriteria: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	r, err := report.Compute(c, "")
	if err != nil {
		t.Fatal(err)
	}
	md := Markdown(r)
	if strings.Contains(md, "## Causas de aumento") {
		t.Error("partial report should have no modifiers table")
	}
	if strings.Contains(md, "**Crime:**") {
		t.Error("unnamed case should have no crime line")
	}
	if !strings.Contains(md, "A pena é de 14 anos e 9 meses.") {
		t.Errorf("expected provisional sentence, got:\n%s", md)
	}
}

func TestJSON(t *testing.T) {
	data, err := JSON(sampleReport(t))
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["tool"] != "dosimetria" {
		t.Errorf("tool = %v", decoded["tool"])
	}
	steps, ok := decoded["steps"].([]any)
	if !ok || len(steps) != 6 {
		t.Fatalf("steps = %v", decoded["steps"])
	}
	first := steps[1].(map[string]any)
	if first["delta_days"] != float64(810) || first["sentence_days"] != float64(2250) {
		t.Errorf("phase one entry = %v", first)
	}
}

func TestYAML(t *testing.T) {
	data, err := YAML(sampleReport(t))
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Tool  string `yaml:"tool"`
		Final struct {
			SentenceDays int `yaml:"sentence_days"`
			FineDays     int `yaml:"fine_days"`
		} `yaml:"final"`
		Steps []struct {
			Phase     int    `yaml:"phase"`
			Direction string `yaml:"direction"`
		} `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Tool != "dosimetria" || decoded.Final.FineDays != 141 {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Steps) != 6 || decoded.Steps[5].Direction != "minoring" {
		t.Errorf("steps = %+v", decoded.Steps)
	}
}

func TestMarkdownUsesReportCalendar(t *testing.T) {
	cal := sentence.Calendar{DaysPerMonth: 31, MonthsPerYear: 12}
	r := &report.Report{
		Tool:     report.Tool,
		MinDays:  31,
		MaxDays:  62,
		Calendar: cal,
		Steps: []report.Entry{{
			Step:         dosimetry.Step{Delta: 31, Sentence: cal.Days(31), FineDays: 10},
			SentenceDays: 31,
		}},
		Final: report.Summary{SentenceDays: 31, FineDays: 10},
	}
	md := Markdown(r)
	for _, want := range []string{
		"**Pena em abstrato:** 1 mês a 2 meses",
		"- Para o crime avaliado, pena mínima é de 1 mês.",
		"A pena é de 1 mês.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}
