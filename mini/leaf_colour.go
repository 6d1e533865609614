package mini

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cyclepattern/mini/colour"
)

// ColourLeaf parses spec.md §4.1's "Colour": an alphabetic name looked up in
// a fixed named-colour table. Unlike vocables or chord names, an unknown
// colour name is a parse failure rather than an open vocabulary.
type ColourLeaf struct {
	noControl[colorful.Color]
	defaultEuclid[colorful.Color]
	twoElement[colorful.Color]
}

var _ Leaf[colorful.Color] = ColourLeaf{}
var _ LeafErrorer[colorful.Color] = ColourLeaf{}

func (ColourLeaf) parseLeaf(p *parser[colorful.Color]) (colorful.Color, bool) {
	if !isAlpha(p.st.peek()) {
		return colorful.Color{}, false
	}
	start := p.st.pos
	m := p.st.mark()
	p.st.advance()
	for isAlpha(p.st.peek()) {
		p.st.advance()
	}
	name := string(p.st.src[start:p.st.pos])
	c, ok := colour.Lookup(name)
	if !ok {
		p.st.reset(m)
		return colorful.Color{}, false
	}
	return c, true
}

// parseError satisfies LeafErrorer: when the failure was an alphabetic
// name just not present in the table, name the closed vocabulary rather
// than falling back to parseCore's generic "unexpected character".
func (ColourLeaf) parseError(p *parser[colorful.Color]) *ParseError {
	if !isAlpha(p.st.peek()) {
		return p.errorf([]string{"colour name"}, "unexpected character %q", p.st.peek())
	}
	end := 0
	for isAlpha(p.st.peekAt(end)) {
		end++
	}
	name := string(p.st.src[p.st.pos : p.st.pos+end])
	return p.errorf(colour.Names(), "unknown colour name %q", name)
}
