package render

import (
	"errors"
	"testing"

	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/sentence"
)

// The reference scenario: 6 to 20 years, five criteria, one net aggravating
// circumstance.
func TestReferenceMessages(t *testing.T) {
	c, err := dosimetry.New("", "6a", "20a")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	got = append(got, Step(c.Name(), c.Opening()))

	s1, err := c.EvaluateBase(5)
	if err != nil {
		t.Fatal(err)
	}
	got = append(got, Step(c.Name(), s1))

	s2, err := c.EvaluateCircumstances(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	got = append(got, Step(c.Name(), s2))

	want := []string{
		"Para o crime avaliado, pena mínima é de 6 anos.",
		"A pena após valoração da 1ª fase é de 14 anos e 9 meses (+105.0 meses).",
		"A pena após valoração da 2ª fase é de 17 anos, 2 meses e 15 dias (+29.5 meses).",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d:\n got %q\nwant %q", i, got[i], want[i])
		}
	}
}

func TestOpeningWithName(t *testing.T) {
	c, err := dosimetry.New(" Furto ", "1a", "4a")
	if err != nil {
		t.Fatal(err)
	}
	got := Opening(c.Name(), c.Opening())
	want := "Para o crime de furto, pena mínima é de 1 ano."
	if got != want {
		t.Errorf("Opening() = %q, want %q", got, want)
	}
}

func TestStepNegativeDelta(t *testing.T) {
	s := dosimetry.Step{Phase: dosimetry.PhaseCircumstances, Delta: -82, Sentence: sentence.Days(413)}
	got := Step("", s)
	want := "A pena após valoração da 2ª fase é de 1 ano, 1 mês e 23 dias (-2.7 meses)."
	if got != want {
		t.Errorf("Step() = %q, want %q", got, want)
	}
}

func TestStepModifiers(t *testing.T) {
	tests := []struct {
		step dosimetry.Step
		want string
	}{
		{
			dosimetry.Step{Phase: dosimetry.PhaseModifiers, Item: 1, Direction: dosimetry.Majoring, Delta: 1548, Sentence: sentence.Days(7743)},
			"A pena após a 1ª majorante é de 21 anos, 6 meses e 3 dias (+51.6 meses).",
		},
		{
			dosimetry.Step{Phase: dosimetry.PhaseModifiers, Item: 2, Direction: dosimetry.Minoring, Delta: -30, Sentence: sentence.Days(3932)},
			"A pena após a 2ª minorante é de 10 anos, 11 meses e 2 dias (-1.0 meses).",
		},
	}
	for _, tt := range tests {
		if got := Step("", tt.step); got != tt.want {
			t.Errorf("Step() = %q, want %q", got, tt.want)
		}
	}
}

func TestStepMonthsFollowCalendar(t *testing.T) {
	cal := sentence.Calendar{DaysPerMonth: 31, MonthsPerYear: 12}
	s := dosimetry.Step{Phase: dosimetry.PhaseBase, Delta: 62, Sentence: cal.Days(93)}
	want := "A pena após valoração da 1ª fase é de 3 meses (+2.0 meses)."
	if got := Step("", s); got != want {
		t.Errorf("Step() = %q, want %q", got, want)
	}
}

func TestFinalAndFine(t *testing.T) {
	if got := Final(sentence.Days(3932)); got != "A pena definitiva é de 10 anos, 11 meses e 2 dias." {
		t.Errorf("Final() = %q", got)
	}
	if got := Fine(228); got != "A multa é de 228 dias-multa." {
		t.Errorf("Fine() = %q", got)
	}
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name  string
		crime string
		err   error
		want  string
	}{
		{
			"already, unnamed", "",
			&dosimetry.PhaseError{Kind: dosimetry.AlreadyEvaluated, Phase: dosimetry.PhaseBase},
			"Crime já avaliado na primeira fase.",
		},
		{
			"already, named", "estupro de vulnerável",
			&dosimetry.PhaseError{Kind: dosimetry.AlreadyEvaluated, Phase: dosimetry.PhaseCircumstances},
			"Estupro de vulnerável já avaliado na segunda fase.",
		},
		{
			"accented name", "ameaça",
			&dosimetry.PhaseError{Kind: dosimetry.AlreadyEvaluated, Phase: dosimetry.PhaseModifiers},
			"Ameaça já avaliado na terceira fase.",
		},
		{
			"missing, unnamed", "",
			&dosimetry.PhaseError{Kind: dosimetry.PrerequisiteMissing, Phase: dosimetry.PhaseCircumstances, Missing: dosimetry.PhaseBase},
			"O crime ainda não foi avaliado na primeira fase.",
		},
		{
			"missing, named", "roubo",
			&dosimetry.PhaseError{Kind: dosimetry.PrerequisiteMissing, Phase: dosimetry.PhaseModifiers, Missing: dosimetry.PhaseCircumstances},
			"O roubo ainda não foi avaliado na segunda fase.",
		},
		{
			"other error", "roubo", errors.New("boom"), "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Notice(tt.crime, tt.err); got != tt.want {
				t.Errorf("Notice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNoticeFromEngine(t *testing.T) {
	c, err := dosimetry.New("Lesão corporal", "3m", "1a")
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.EvaluateCircumstances(1, 0)
	if got := Notice(c.Name(), err); got != "O lesão corporal ainda não foi avaliado na primeira fase." {
		t.Errorf("Notice() = %q", got)
	}
}
