package dosimetry

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/dosimetria/internal/sentence"
)

// Crime is one sentencing case. It is not safe for concurrent use; each case
// belongs to a single caller.
type Crime struct {
	name     string
	minDays  int
	maxDays  int
	sentence sentence.Duration
	fineDays int
	state    State

	cfg Config
	log *zap.Logger
}

// Option configures a Crime.
type Option func(*Crime)

// WithConfig replaces the default sentencing constants.
func WithConfig(cfg Config) Option {
	return func(c *Crime) { c.cfg = cfg }
}

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Crime) {
		if l != nil {
			c.log = l
		}
	}
}

// New opens a case for a crime punished with minToken to maxToken, e.g.
// "6a" and "20a". The sentence starts at the minimum.
func New(name, minToken, maxToken string, opts ...Option) (*Crime, error) {
	c := &Crime{
		name: strings.ToLower(strings.TrimSpace(name)),
		cfg:  DefaultConfig(),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dosimetry.New: %w", err)
	}

	var err error
	if c.minDays, err = c.cfg.Calendar.ParseBound(minToken); err != nil {
		return nil, fmt.Errorf("dosimetry.New: %w", &ValidationError{Field: "min", Err: err})
	}
	if c.maxDays, err = c.cfg.Calendar.ParseBound(maxToken); err != nil {
		return nil, fmt.Errorf("dosimetry.New: %w", &ValidationError{Field: "max", Err: err})
	}
	if c.minDays > c.maxDays {
		return nil, fmt.Errorf("dosimetry.New: %w", &ValidationError{Field: "min", Err: ErrInvertedRange})
	}

	c.sentence = c.cfg.Calendar.Days(c.minDays)
	c.fineDays = c.cfg.FineMinDays
	c.log = c.log.With(zap.String("crime", c.displayName()))
	c.log.Info("case opened",
		zap.Int("min_days", c.minDays),
		zap.Int("max_days", c.maxDays),
		zap.Stringer("minimum", c.sentence),
	)
	return c, nil
}

// Name returns the normalized crime name, empty when none was given.
func (c *Crime) Name() string { return c.name }

func (c *Crime) MinDays() int                { return c.minDays }
func (c *Crime) MaxDays() int                { return c.maxDays }
func (c *Crime) Sentence() sentence.Duration { return c.sentence }
func (c *Crime) FineDays() int               { return c.fineDays }
func (c *Crime) State() State                { return c.state }

// Config returns the sentencing constants the case was opened with.
func (c *Crime) Config() Config { return c.cfg }

// Opening returns the step that set the sentence to the statutory minimum.
func (c *Crime) Opening() Step {
	return Step{Delta: c.minDays, Sentence: c.cfg.Calendar.Days(c.minDays), FineDays: c.cfg.FineMinDays}
}

// EvaluateBase runs phase one with the number of judicial criteria weighed
// against the defendant. The count is clamped to [0, MaxCriteria].
func (c *Crime) EvaluateBase(criteria int) (Step, error) {
	if err := c.enter(PhaseBase); err != nil {
		return Step{}, err
	}

	clamped := max(min(c.cfg.MaxCriteria, criteria), 0)
	rangeDays := c.maxDays - c.minDays
	delta := int(float64(rangeDays) * c.cfg.BaseWeight * float64(clamped))

	fineRange := c.cfg.FineMaxDays - c.cfg.FineMinDays
	fineDelta := int(float64(fineRange) * c.cfg.BaseWeight * float64(c.cfg.fineCount(criteria, clamped)))

	c.sentence = c.sentence.Adjust(delta)
	c.fineDays += fineDelta

	step := Step{Phase: PhaseBase, Delta: delta, Sentence: c.sentence, FineDays: c.fineDays, FineDelta: fineDelta}
	c.logStep(step, zap.Int("criteria", criteria))
	return step, nil
}

// EvaluateCircumstances runs phase two. Each net aggravating circumstance adds
// CircumstanceWeight of the current sentence; a net mitigating balance
// subtracts. The delta is truncated toward zero.
func (c *Crime) EvaluateCircumstances(aggravating, mitigating int) (Step, error) {
	if err := c.enter(PhaseCircumstances); err != nil {
		return Step{}, err
	}

	weight := float64(c.sentence.Total()) * c.cfg.CircumstanceWeight
	delta := int(weight * float64(aggravating-mitigating))
	c.sentence = c.sentence.Adjust(delta)

	step := Step{Phase: PhaseCircumstances, Delta: delta, Sentence: c.sentence, FineDays: c.fineDays}
	c.logStep(step, zap.Int("aggravating", aggravating), zap.Int("mitigating", mitigating))
	return step, nil
}

// EvaluateModifiers runs phase three. Majoring factors are applied first, then
// minoring ones, each in the given order and each against the sentence left
// by the previous factor.
func (c *Crime) EvaluateModifiers(majoring, minoring []Modifier) (ModifierOutcome, error) {
	if err := c.enter(PhaseModifiers); err != nil {
		return ModifierOutcome{}, err
	}

	var out ModifierOutcome
	apply := func(dir Direction, mods []Modifier) {
		for i, m := range mods {
			delta := dir.sign() * m.delta(c.sentence)
			c.sentence = c.sentence.Adjust(delta)
			step := Step{
				Phase:     PhaseModifiers,
				Item:      i + 1,
				Direction: dir,
				Delta:     delta,
				Sentence:  c.sentence,
				FineDays:  c.fineDays,
			}
			out.Steps = append(out.Steps, step)
			c.logStep(step, zap.Stringer("modifier", m))
		}
	}
	apply(Majoring, majoring)
	apply(Minoring, minoring)

	out.Sentence = c.sentence
	c.log.Info("final sentence", zap.Stringer("sentence", c.sentence), zap.Int("days", c.sentence.Total()))
	return out, nil
}

// enter checks the phase guard and advances the state. A rejected call leaves
// the case unchanged.
func (c *Crime) enter(p Phase) error {
	next, ok := c.state.Next(p)
	if ok {
		c.state = next
		return nil
	}

	var err *PhaseError
	if c.state.Done(p) {
		err = &PhaseError{Kind: AlreadyEvaluated, Phase: p}
	} else {
		err = &PhaseError{Kind: PrerequisiteMissing, Phase: p, Missing: Phase(c.state + 1)}
	}
	c.log.Debug("phase rejected", zap.Stringer("phase", p), zap.Stringer("state", c.state), zap.Error(err))
	return err
}

func (c *Crime) logStep(s Step, fields ...zap.Field) {
	fields = append(fields,
		zap.Stringer("phase", s.Phase),
		zap.Int("delta_days", s.Delta),
		zap.Stringer("sentence", s.Sentence),
		zap.Int("fine_days", s.FineDays),
	)
	if s.Item > 0 {
		fields = append(fields, zap.Int("item", s.Item), zap.String("direction", string(s.Direction)))
	}
	c.log.Info("phase evaluated", fields...)
}

func (c *Crime) displayName() string {
	if c.name == "" {
		return "crime"
	}
	return c.name
}
