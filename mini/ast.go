package mini

import (
	"math/big"

	"github.com/cyclepattern/mini/pattern"
	"github.com/cyclepattern/mini/srcpos"
)

// TPat is the mini-notation AST, polymorphic in its leaf value type T
// (spec.md §3). Rather than a single tagged-union struct (as the teacher's
// Java parser.Node is), it is modelled as an interface implemented by one
// concrete type per variant, so each node carries its own compile
// behaviour.
// compile is unexported: only this package may fold a TPat into a Pattern.
type TPat[T any] interface {
	compile() pattern.Pattern[T]
}

// Atom is a literal leaf, optionally tagged with the source span it was
// read from. An Atom built without a location (e.g. synthesised during
// enumeration) carries no context.
type Atom[T any] struct {
	Loc   *srcpos.Span
	Value T
}

func (a *Atom[T]) compile() pattern.Pattern[T] {
	if a.Loc == nil {
		return pattern.Pure(a.Value)
	}
	ctx := []srcpos.Position{a.Loc.Start}
	return pattern.WithEvents(pattern.Pure(a.Value), func(e pattern.Event[T]) pattern.Event[T] {
		e.Context = ctx
		return e
	})
}

// Fast speeds up Inner by Factor.
type Fast[T any] struct {
	Factor TPat[*big.Rat]
	Inner  TPat[T]
}

func (f *Fast[T]) compile() pattern.Pattern[T] {
	factorPat := f.Factor.compile()
	inner := f.Inner.compile()
	return pattern.InnerJoin(pattern.MapValues(factorPat, func(r *big.Rat) pattern.Pattern[T] {
		return pattern.Fast(r, inner)
	}))
}

// Slow slows down Inner by Factor.
type Slow[T any] struct {
	Factor TPat[*big.Rat]
	Inner  TPat[T]
}

func (s *Slow[T]) compile() pattern.Pattern[T] {
	factorPat := s.Factor.compile()
	inner := s.Inner.compile()
	return pattern.InnerJoin(pattern.MapValues(factorPat, func(r *big.Rat) pattern.Pattern[T] {
		return pattern.Slow(r, inner)
	}))
}

// DegradeBy probabilistically drops events from Inner. Seed is assigned
// once, at parse time, by the monotone counter in state.
type DegradeBy[T any] struct {
	Seed   int
	Amount float64
	Inner  TPat[T]
}

// seedPhase is the fixed seed-to-phase multiplier spec.md §4.4 specifies.
const seedPhase = 0.0001

func seedPhaseRat(seed int) *big.Rat {
	return new(big.Rat).Mul(big.NewRat(int64(seed), 1), big.NewRat(1, 10000))
}

func (d *DegradeBy[T]) compile() pattern.Pattern[T] {
	phase := pattern.RotL(seedPhaseRat(d.Seed), pattern.Rand())
	return pattern.DegradeByUsing(phase, d.Amount, d.Inner.compile())
}

// CycleChoose picks one child pattern per cycle, deterministically from Seed.
type CycleChoose[T any] struct {
	Seed     int
	Children []TPat[T]
}

func (c *CycleChoose[T]) compile() pattern.Pattern[T] {
	if len(c.Children) == 0 {
		return pattern.Silence[T]()
	}
	phase := pattern.RotL(seedPhaseRat(c.Seed), pattern.Rand())
	pats := make([]pattern.Pattern[T], len(c.Children))
	for i, ch := range c.Children {
		pats[i] = ch.compile()
	}
	chosen := pattern.ChooseBy(phase, pats)
	return pattern.Unwrap(pattern.Segment(1, chosen))
}

// Euclid applies a Bjorklund rhythm of Pulses over Steps, rotated by Rot,
// to Inner.
type Euclid[T any] struct {
	Pulses TPat[int]
	Steps  TPat[int]
	Rot    TPat[int]
	Inner  TPat[T]
	Leaf   Leaf[T]
}

func (e *Euclid[T]) compile() pattern.Pattern[T] {
	n := e.Pulses.compile()
	k := e.Steps.compile()
	r := e.Rot.compile()
	return e.Leaf.CompileEuclid(n, k, r, e.Inner.compile())
}

// Stack layers Children simultaneously.
type Stack[T any] struct {
	Children []TPat[T]
}

func (s *Stack[T]) compile() pattern.Pattern[T] {
	pats := make([]pattern.Pattern[T], len(s.Children))
	for i, ch := range s.Children {
		pats[i] = ch.compile()
	}
	return pattern.Stack(pats)
}

// Polyrhythm layers Children, each normalised to a common StepRate (the
// first child's own step count, unless StepRate is given explicitly).
type Polyrhythm[T any] struct {
	StepRate TPat[*big.Rat] // nil => derive from first child
	Children []seqChild[T]  // each child carries its own weighted step list
}

func (p *Polyrhythm[T]) compile() pattern.Pattern[T] {
	if len(p.Children) == 0 {
		return pattern.Silence[T]()
	}
	sizes := make([]*big.Rat, len(p.Children))
	for i, ch := range p.Children {
		sizes[i] = totalWeight(ch.weighted)
	}
	var stepRate *big.Rat
	if p.StepRate != nil {
		v, evs := pattern.SampleOnce(p.StepRate.compile(), pattern.Cycle())
		if evs != nil {
			stepRate = v
		}
	}
	if stepRate == nil {
		stepRate = sizes[0]
	}
	pats := make([]pattern.Pattern[T], len(p.Children))
	for i, ch := range p.Children {
		childSize := sizes[i]
		childPat := timeCatFrom(ch.weighted)
		if childSize.Sign() == 0 {
			pats[i] = pattern.Silence[T]()
			continue
		}
		factor := new(big.Rat).Quo(stepRate, childSize)
		pats[i] = pattern.Fast(factor, childPat)
	}
	return pattern.Stack(pats)
}

// Seq concatenates Children sequentially, each occupying a share of the
// cycle determined by the size resolver (size.go).
type Seq[T any] struct {
	Children []TPat[T]
}

func (s *Seq[T]) compile() pattern.Pattern[T] {
	return timeCatFrom(resolveSizes(s.Children))
}

// Silence never produces an event.
type Silence[T any] struct{}

func (Silence[T]) compile() pattern.Pattern[T] {
	return pattern.Silence[T]()
}

// Foot is a placeholder marking a `.` split point; it must never survive
// foot resolution into compile (spec.md §3 invariant).
type Foot[T any] struct{}

func (Foot[T]) compile() pattern.Pattern[T] {
	panic("mini: internal error: Foot node reached compile; foot resolution was not run")
}

// Elongate gives Inner a Ratio-sized share of its enclosing Seq. Outside a
// Seq it has no meaning and compiles to Silence (spec.md §9 Open Question,
// resolved: this is the source's own stated behaviour).
type Elongate[T any] struct {
	Ratio *big.Rat
	Inner TPat[T]
}

func (*Elongate[T]) compile() pattern.Pattern[T] { return pattern.Silence[T]() }

// Repeat emits Inner N adjacent times, each weight 1. Outside a Seq it
// compiles to Silence, same rationale as Elongate.
type Repeat[T any] struct {
	N     int
	Inner TPat[T]
}

func (*Repeat[T]) compile() pattern.Pattern[T] { return pattern.Silence[T]() }

// EnumFromTo is an inclusive enumeration from From to To.
type EnumFromTo[T any] struct {
	From, To TPat[T]
	Leaf     Leaf[T]
}

func (e *EnumFromTo[T]) compile() pattern.Pattern[T] {
	return pattern.EnumFromTo(e.From.compile(), e.To.compile(), e.Leaf.FromTo)
}

// Var references a named external control channel.
type Var[T any] struct {
	Name string
	Leaf Leaf[T]
}

func (v *Var[T]) compile() pattern.Pattern[T] {
	return v.Leaf.Control(v.Name)
}

// ModifierKind enumerates the chord-modifier variants, spec.md §3.
type ModifierKind int

const (
	ModRange ModifierKind = iota
	ModDrop
	ModInvert
	ModOpen
)

// Modifier is a single chord-voicing transformation; N is only meaningful
// for Range and Drop.
type Modifier struct {
	Kind ModifierKind
	N    int
}

// Chord expands a (root, chord-name, modifiers) triple into a list of
// semitone-offset values, injected into the outer leaf type T via Inject.
type Chord[T any] struct {
	Root   TPat[int]
	Name   TPat[string]
	Mods   TPat[[]Modifier]
	Inject func(int) T
}

func (c *Chord[T]) compile() pattern.Pattern[T] {
	return chordToPat(c.Root.compile(), c.Name.compile(), c.Mods.compile(), c.Inject)
}
