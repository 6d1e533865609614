package mini

import "math/big"

// IntegerLeaf parses spec.md §4.1's distinct "Integer" type, an arbitrary-
// precision signed integer (the grammar calls for Int at most grammar
// positions; Integer is kept as its own leaf type per spec.md §9's
// "Supported T" list, backed by math/big to avoid an artificial overflow
// ceiling).
type IntegerLeaf struct {
	noControl[*big.Int]
	defaultEuclid[*big.Int]
}

var _ Leaf[*big.Int] = IntegerLeaf{}

func (IntegerLeaf) parseLeaf(p *parser[*big.Int]) (*big.Int, bool) {
	neg := false
	m := p.st.mark()
	if p.st.peek() == '-' {
		neg = true
		p.st.advance()
	}
	digits, ok := p.st.scanDigits()
	if !ok {
		p.st.reset(m)
		return nil, false
	}
	n := new(big.Int)
	n.SetString(digits, 10)
	if neg {
		n.Neg(n)
	}
	return n, true
}

// FromTo enumerates inclusively, ascending or descending.
func (IntegerLeaf) FromTo(a, b *big.Int) []*big.Int {
	out := []*big.Int{}
	one := big.NewInt(1)
	if a.Cmp(b) <= 0 {
		for v := new(big.Int).Set(a); v.Cmp(b) <= 0; v.Add(v, one) {
			out = append(out, new(big.Int).Set(v))
		}
		return out
	}
	for v := new(big.Int).Set(a); v.Cmp(b) >= 0; v.Sub(v, one) {
		out = append(out, new(big.Int).Set(v))
	}
	return out
}
