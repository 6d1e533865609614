package mini

import "math/big"

// RationalLeaf parses spec.md §4.1's "Rational" leaf: the full sign /
// literal / %denominator / duration-letter grammar, exact throughout.
type RationalLeaf struct {
	noControl[*big.Rat]
	defaultEuclid[*big.Rat]
	twoElement[*big.Rat]
}

var _ Leaf[*big.Rat] = RationalLeaf{}

func (RationalLeaf) parseLeaf(p *parser[*big.Rat]) (*big.Rat, bool) {
	return p.st.scanRational()
}
