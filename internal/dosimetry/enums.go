package dosimetry

// Phase identifies one of the three sentencing phases.
type Phase int

const (
	PhaseBase          Phase = iota + 1 // judicial criteria over the statutory range
	PhaseCircumstances                  // aggravating and mitigating circumstances
	PhaseModifiers                      // majoring and minoring factors
)

func (p Phase) Valid() bool {
	return p >= PhaseBase && p <= PhaseModifiers
}

// Ordinal returns the 1-based phase number.
func (p Phase) Ordinal() int { return int(p) }

func (p Phase) String() string {
	switch p {
	case PhaseBase:
		return "base"
	case PhaseCircumstances:
		return "circumstances"
	case PhaseModifiers:
		return "modifiers"
	}
	return "unknown"
}

// State records how far a case has progressed.
type State int

const (
	NotStarted State = iota
	BaseDone
	CircumstancesDone
	ModifiersDone
)

// transitions maps each phase to the only state it may run from.
var transitions = map[Phase]State{
	PhaseBase:          NotStarted,
	PhaseCircumstances: BaseDone,
	PhaseModifiers:     CircumstancesDone,
}

// Done reports whether phase p has been evaluated.
func (s State) Done(p Phase) bool {
	return int(s) >= int(p)
}

// Next returns the state reached after evaluating p from s, or false when p
// cannot run from s.
func (s State) Next(p Phase) (State, bool) {
	from, ok := transitions[p]
	if !ok || from != s {
		return s, false
	}
	return State(p), true
}

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case BaseDone:
		return "base_done"
	case CircumstancesDone:
		return "circumstances_done"
	case ModifiersDone:
		return "modifiers_done"
	}
	return "unknown"
}

// Direction tells whether a phase-three factor raises or lowers the sentence.
type Direction string

const (
	Majoring Direction = "majoring"
	Minoring Direction = "minoring"
)

func (d Direction) Valid() bool {
	return d == Majoring || d == Minoring
}

func (d Direction) sign() int {
	if d == Minoring {
		return -1
	}
	return 1
}
