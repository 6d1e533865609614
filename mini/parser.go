package mini

import (
	"fmt"
	"math/big"

	"github.com/cyclepattern/mini/pattern"
	"github.com/cyclepattern/mini/srcpos"
)

// parser is the typed view a single parse uses over the shared *state:
// every grammar position knows which leaf type it is building (spec.md §9
// "type-directed leaf parsing"), but position, line/column and the seed
// counter are single-threaded through one underlying state regardless of
// how many different T's are in play across a grammar production (Euclid's
// int arguments, a `*r` multiplier's rational, a chord's modifier list).
type parser[T any] struct {
	st   *state
	leaf Leaf[T]
	src  string
}

func newParser[T any](input string, leaf Leaf[T]) *parser[T] {
	return &parser[T]{st: newState(input), leaf: leaf, src: input}
}

// withLeaf builds a sibling parser of a different leaf type over the same
// underlying state, so position and seed allocation stay shared.
func withLeaf[U any](st *state, src string, leaf Leaf[U]) *parser[U] {
	return &parser[U]{st: st, leaf: leaf, src: src}
}

func (p *parser[T]) errorf(expected []string, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:      p.st.position(),
		Message:  fmt.Sprintf(format, args...),
		Expected: expected,
		Source:   p.src,
	}
}

// parseTopLevel parses a whole input string: one sequence, then demands
// end-of-input (spec.md §4.1 "the top-level entry parses a sequence
// terminated by end-of-input").
func (p *parser[T]) parseTopLevel() (TPat[T], *ParseError) {
	p.st.skipBlanks()
	seq, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	p.st.skipBlanks()
	if !p.st.eof() {
		return nil, p.errorf(nil, "unexpected character %q", p.st.peek())
	}
	return seq, nil
}

// closesSequence reports whether b terminates a sequence started inside a
// bracket/brace/angle group or euclid parentheses, or a stack/choice/
// polyrhythm/euclid-argument separator.
func closesSequence(b byte) bool {
	switch b {
	case 0, ']', '}', '>', ')', ',', '|':
		return true
	}
	return false
}

// parseSequence parses a whitespace-separated run of parts, each optionally
// punctuated by a foot ("."), then foot-resolves the result (spec.md
// §4.1/§4.2). It stops at end-of-input or any bracket/separator character,
// so the same routine serves the top level and every nested group.
func (p *parser[T]) parseSequence() (TPat[T], *ParseError) {
	var children []TPat[T]
	for {
		p.st.skipBlanks()
		if closesSequence(p.st.peek()) {
			break
		}
		if p.st.peek() == '.' && p.st.peekAt(1) != '.' {
			p.st.advance()
			children = append(children, Foot[T]{})
			continue
		}
		item, err := p.parseSequenceItem()
		if err != nil {
			return nil, err
		}
		children = append(children, item)
	}
	return resolveFeet(children), nil
}

// parseSequenceItem parses one part, then at most one of its postfixes:
// ".." enumeration, "@r"/"_r" elongation, or "!n" repetition (spec.md
// §4.1).
func (p *parser[T]) parseSequenceItem() (TPat[T], *ParseError) {
	part, err := p.parsePart()
	if err != nil {
		return nil, err
	}
	switch p.st.peek() {
	case '@', '_':
		p.st.advance()
		return &Elongate[T]{Ratio: p.parseElongateRatio(), Inner: part}, nil
	case '!':
		p.st.advance()
		return &Repeat[T]{N: p.parseRepeatCount(), Inner: part}, nil
	}
	m := p.st.mark()
	p.st.skipBlanks()
	if p.st.peek() == '.' && p.st.peekAt(1) == '.' {
		p.st.advance()
		p.st.advance()
		p.st.skipBlanks()
		to, err := p.parsePart()
		if err != nil {
			return nil, err
		}
		return &EnumFromTo[T]{From: part, To: to, Leaf: p.leaf}, nil
	}
	p.st.reset(m)
	return part, nil
}

func (p *parser[T]) parseElongateRatio() *big.Rat {
	if r, ok := p.st.scanUnsignedRatLiteral(); ok {
		return r
	}
	return big.NewRat(1, 1)
}

func (p *parser[T]) parseRepeatCount() int {
	if n, ok := p.st.scanUnsignedInt(); ok {
		return n
	}
	return 2
}

// parsePart parses a single grammar core (leaf, group, or var), then applies
// any run of postfixes in any order: euclid parens, degrade, mult/div. The
// surface grammar documents these as attaching at specific layers (pE/pRand
// around part, pRand/pMult around single); a single postfix loop here is a
// strict superset that also tolerates them combined or reordered, which
// matches how the notation is used in practice.
func (p *parser[T]) parsePart() (TPat[T], *ParseError) {
	core, err := p.parseCore()
	if err != nil {
		return nil, err
	}
	for {
		switch p.st.peek() {
		case '(':
			core, err = p.wrapEuclid(core)
		case '?':
			core, err = p.wrapDegrade(core)
		case '*', '/':
			core, err = p.wrapMult(core)
		default:
			return core, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser[T]) parseCore() (TPat[T], *ParseError) {
	p.st.skipBlanks()
	switch p.st.peek() {
	case 0:
		return nil, p.errorf([]string{"pattern"}, "unexpected end of input")
	case '~':
		p.st.advance()
		return Silence[T]{}, nil
	case '[':
		return p.parsePolyIn()
	case '{':
		return p.parsePolyOutBrace()
	case '<':
		return p.parsePolyOutAngle()
	case '^':
		return p.parseVar()
	}

	startPos := p.st.position()
	v, ok := p.leaf.parseLeaf(p)
	if !ok {
		if le, ok := any(p.leaf).(LeafErrorer[T]); ok {
			return nil, le.parseError(p)
		}
		return nil, p.errorf([]string{"pattern"}, "unexpected character %q", p.st.peek())
	}
	loc := &srcpos.Span{Start: startPos, End: p.st.position()}
	var node TPat[T] = &Atom[T]{Loc: loc, Value: v}

	if cc, ok := any(p.leaf).(ChordCapableLeaf[T]); ok && p.st.peek() == '\'' {
		chordNode, cerr := p.parseChordSuffix(v, loc, cc)
		if cerr != nil {
			return nil, cerr
		}
		node = chordNode
	}
	return node, nil
}

// parsePolyIn parses "[" sequence ( ("," sequence)+ | ("|" sequence)+ )? "]"
// (spec.md §4.1): comma groups become a Stack, bar groups a CycleChoose, a
// single group is returned unwrapped.
func (p *parser[T]) parsePolyIn() (TPat[T], *ParseError) {
	p.st.advance() // '['
	first, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	groups := []TPat[T]{first}
	mode := byte(0)
	for {
		p.st.skipBlanks()
		switch p.st.peek() {
		case ',', '|':
			sep := p.st.peek()
			if mode != 0 && mode != sep {
				return nil, p.errorf([]string{"','", "'|'"}, "cannot mix ',' and '|' in the same group")
			}
			mode = sep
			p.st.advance()
			nxt, err := p.parseSequence()
			if err != nil {
				return nil, err
			}
			groups = append(groups, nxt)
		case ']':
			p.st.advance()
			return p.finishPolyIn(mode, groups), nil
		default:
			return nil, p.errorf([]string{"','", "'|'", "']'"}, "unexpected character %q", p.st.peek())
		}
	}
}

func (p *parser[T]) finishPolyIn(mode byte, groups []TPat[T]) TPat[T] {
	switch mode {
	case '|':
		return &CycleChoose[T]{Seed: p.st.nextSeed(), Children: groups}
	case ',':
		return &Stack[T]{Children: groups}
	default:
		return groups[0]
	}
}

// parsePolyBranch parses one polyrhythm branch sequence and resolves it
// directly to a weighted step list (spec.md §4.3/§4.4), rather than leaving
// it wrapped in a Seq node, since Polyrhythm.compile needs each branch's own
// step count.
func (p *parser[T]) parsePolyBranch() ([]pattern.Weighted[T], *ParseError) {
	node, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	seqNode, _ := node.(*Seq[T])
	return resolveSizes(seqNode.Children), nil
}

// parsePolyOutBrace parses "{" sequence ("," sequence)* "}" ["%" rational].
func (p *parser[T]) parsePolyOutBrace() (TPat[T], *ParseError) {
	p.st.advance() // '{'
	children, err := p.parsePolyBranchList('}')
	if err != nil {
		return nil, err
	}
	p.st.advance() // '}'
	var stepRate TPat[*big.Rat]
	if p.st.peek() == '%' {
		p.st.advance()
		ratP := withLeaf[*big.Rat](p.st, p.src, RationalLeaf{})
		stepRate, err = ratP.parsePart()
		if err != nil {
			return nil, err
		}
	}
	return &Polyrhythm[T]{StepRate: stepRate, Children: children}, nil
}

// parsePolyOutAngle parses "<" sequence ("," sequence)* ">", which is
// equivalent to the brace form with an explicit step-rate of 1.
func (p *parser[T]) parsePolyOutAngle() (TPat[T], *ParseError) {
	p.st.advance() // '<'
	children, err := p.parsePolyBranchList('>')
	if err != nil {
		return nil, err
	}
	p.st.advance() // '>'
	one := TPat[*big.Rat](&Atom[*big.Rat]{Value: big.NewRat(1, 1)})
	return &Polyrhythm[T]{StepRate: one, Children: children}, nil
}

func (p *parser[T]) parsePolyBranchList(closer byte) ([]seqChild[T], *ParseError) {
	w, err := p.parsePolyBranch()
	if err != nil {
		return nil, err
	}
	children := []seqChild[T]{{weighted: w}}
	for {
		p.st.skipBlanks()
		if p.st.peek() != ',' {
			break
		}
		p.st.advance()
		w, err := p.parsePolyBranch()
		if err != nil {
			return nil, err
		}
		children = append(children, seqChild[T]{weighted: w})
	}
	p.st.skipBlanks()
	if p.st.peek() != closer {
		return nil, p.errorf([]string{"','", string(closer)}, "unexpected character %q", p.st.peek())
	}
	return children, nil
}

// parseVar parses "^" identifier (spec.md §4.1/§6).
func (p *parser[T]) parseVar() (TPat[T], *ParseError) {
	p.st.advance() // '^'
	start := p.st.pos
	if !isIdentChar(p.st.peek()) {
		return nil, p.errorf([]string{"identifier"}, "expected identifier after '^'")
	}
	for isIdentChar(p.st.peek()) {
		p.st.advance()
	}
	name := string(p.st.src[start:p.st.pos])
	return &Var[T]{Name: name, Leaf: p.leaf}, nil
}

// wrapEuclid parses "(" seq(Int) "," seq(Int) ["," seq(Int)] ")", the third
// argument defaulting to 0 (spec.md §4.1).
func (p *parser[T]) wrapEuclid(inner TPat[T]) (TPat[T], *ParseError) {
	p.st.advance() // '('
	intP := withLeaf[int](p.st, p.src, IntLeaf{})
	pulses, err := intP.parseSequence()
	if err != nil {
		return nil, err
	}
	p.st.skipBlanks()
	if p.st.peek() != ',' {
		return nil, p.errorf([]string{"','"}, "expected ',' in euclid arguments")
	}
	p.st.advance()
	steps, err := intP.parseSequence()
	if err != nil {
		return nil, err
	}
	var rot TPat[int] = &Atom[int]{Value: 0}
	p.st.skipBlanks()
	if p.st.peek() == ',' {
		p.st.advance()
		rot, err = intP.parseSequence()
		if err != nil {
			return nil, err
		}
	}
	p.st.skipBlanks()
	if p.st.peek() != ')' {
		return nil, p.errorf([]string{"')'"}, "expected ')' to close euclid arguments")
	}
	p.st.advance()
	return &Euclid[T]{Pulses: pulses, Steps: steps, Rot: rot, Inner: inner, Leaf: p.leaf}, nil
}

// wrapDegrade parses "?" [float], defaulting to 0.5, and allocates a fresh
// seed only once the construct is confirmed (spec.md §4.4/§5/§9).
func (p *parser[T]) wrapDegrade(inner TPat[T]) (TPat[T], *ParseError) {
	p.st.advance() // '?'
	amount := 0.5
	if r, ok := p.st.scanUnsignedRatLiteral(); ok {
		amount, _ = r.Float64()
	}
	return &DegradeBy[T]{Seed: p.st.nextSeed(), Amount: amount, Inner: inner}, nil
}

// wrapMult parses "*" rational | "/" rational, where the rational may
// itself be a bracketed poly-pattern of rationals (spec.md §4.1/§6).
func (p *parser[T]) wrapMult(inner TPat[T]) (TPat[T], *ParseError) {
	op := p.st.advance() // '*' or '/'
	ratP := withLeaf[*big.Rat](p.st, p.src, RationalLeaf{})
	factor, err := ratP.parsePart()
	if err != nil {
		return nil, err
	}
	if op == '*' {
		return &Fast[T]{Factor: factor, Inner: inner}, nil
	}
	return &Slow[T]{Factor: factor, Inner: inner}, nil
}

// parseChordSuffix parses "'" vocable ("'" modifiers)* (spec.md §4.1), once
// a chord-capable leaf's atom has already been read.
func (p *parser[T]) parseChordSuffix(v T, loc *srcpos.Span, cc ChordCapableLeaf[T]) (TPat[T], *ParseError) {
	p.st.advance() // '\''
	nameP := withLeaf[string](p.st, p.src, StringLeaf{})
	nameVal, ok := nameP.leaf.parseLeaf(nameP)
	if !ok {
		return nil, p.errorf([]string{"chord name"}, "expected a chord name after '\\''")
	}
	var mods []Modifier
	for p.st.peek() == '\'' {
		p.st.advance()
		modP := withLeaf[[]Modifier](p.st, p.src, ModifierListLeaf{})
		group, ok := modP.leaf.parseLeaf(modP)
		if !ok {
			return nil, p.errorf([]string{"chord modifier"}, "expected a chord modifier after '\\''")
		}
		mods = append(mods, group...)
	}
	root := TPat[int](&Atom[int]{Loc: loc, Value: cc.ToSemitone(v)})
	name := TPat[string](&Atom[string]{Value: nameVal})
	modsNode := TPat[[]Modifier](&Atom[[]Modifier]{Value: mods})
	return &Chord[T]{Root: root, Name: name, Mods: modsNode, Inject: cc.Inject}, nil
}
