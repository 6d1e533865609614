package mini

// ModifierListLeaf parses one chord-suffix modifier group (spec.md §4.1
// "Chord suffix"): one or more 'i' (Invert), one or more 'o' (Open), or a
// single integer. A non-negative integer is Range n; a negative integer is
// Drop(-n). The textual grammar lists Range/Invert/Open but gives no
// surface syntax for Drop, which is nonetheless an AST Modifier variant;
// the negative integer is this parser's spelling for it.
type ModifierListLeaf struct {
	noControl[[]Modifier]
	defaultEuclid[[]Modifier]
	twoElement[[]Modifier]
}

var _ Leaf[[]Modifier] = ModifierListLeaf{}

func (ModifierListLeaf) parseLeaf(p *parser[[]Modifier]) ([]Modifier, bool) {
	switch {
	case p.st.peek() == 'i':
		n := 0
		for p.st.peek() == 'i' {
			p.st.advance()
			n++
		}
		return repeatModifier(ModInvert, n), true
	case p.st.peek() == 'o':
		n := 0
		for p.st.peek() == 'o' {
			p.st.advance()
			n++
		}
		return repeatModifier(ModOpen, n), true
	case p.st.peek() == '-' || isDigit(p.st.peek()):
		n, ok := p.st.scanSignedInt()
		if !ok {
			return nil, false
		}
		if n < 0 {
			return []Modifier{{Kind: ModDrop, N: -n}}, true
		}
		return []Modifier{{Kind: ModRange, N: n}}, true
	}
	return nil, false
}

func repeatModifier(kind ModifierKind, n int) []Modifier {
	out := make([]Modifier, n)
	for i := range out {
		out[i] = Modifier{Kind: kind}
	}
	return out
}
