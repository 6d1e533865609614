package mini

import "github.com/cyclepattern/mini/pattern"

// BoolLeaf parses t/1 as true and f/0 as false (spec.md §4.1), and is the
// leaf type Euclid nodes special-case: the Bjorklund hits are emitted
// directly rather than gating an inner pattern.
type BoolLeaf struct {
	noControl[bool]
	twoElement[bool]
}

var _ Leaf[bool] = BoolLeaf{}

func (BoolLeaf) parseLeaf(p *parser[bool]) (bool, bool) {
	switch p.st.peek() {
	case 't', '1':
		p.st.advance()
		return true, true
	case 'f', '0':
		p.st.advance()
		return false, true
	}
	return false, false
}

func (BoolLeaf) CompileEuclid(n, k, rot pattern.Pattern[int], x pattern.Pattern[bool]) pattern.Pattern[bool] {
	_ = x
	return pattern.DoEuclidBool(n, k, rot)
}
