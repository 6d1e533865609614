package mini

import (
	"fmt"
	"strings"
)

// Describe renders a TPat as an indented, lisp-like tree, primarily for the
// CLI's "ast" subcommand and for debugging; it is not part of the
// compilation path.
func Describe[T any](node TPat[T]) string {
	var b strings.Builder
	describe(node, 0, &b)
	return b.String()
}

func describe[T any](node TPat[T], depth int, b *strings.Builder) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *Atom[T]:
		fmt.Fprintf(b, "%sAtom %v\n", indent, n.Value)
	case *Fast[T]:
		fmt.Fprintf(b, "%sFast\n", indent)
		describe(n.Factor, depth+1, b)
		describe(n.Inner, depth+1, b)
	case *Slow[T]:
		fmt.Fprintf(b, "%sSlow\n", indent)
		describe(n.Factor, depth+1, b)
		describe(n.Inner, depth+1, b)
	case *DegradeBy[T]:
		fmt.Fprintf(b, "%sDegradeBy seed=%d amount=%v\n", indent, n.Seed, n.Amount)
		describe(n.Inner, depth+1, b)
	case *CycleChoose[T]:
		fmt.Fprintf(b, "%sCycleChoose seed=%d\n", indent, n.Seed)
		for _, c := range n.Children {
			describe(c, depth+1, b)
		}
	case *Euclid[T]:
		fmt.Fprintf(b, "%sEuclid\n", indent)
		describe(n.Pulses, depth+1, b)
		describe(n.Steps, depth+1, b)
		describe(n.Rot, depth+1, b)
		describe(n.Inner, depth+1, b)
	case *Stack[T]:
		fmt.Fprintf(b, "%sStack\n", indent)
		for _, c := range n.Children {
			describe(c, depth+1, b)
		}
	case *Polyrhythm[T]:
		fmt.Fprintf(b, "%sPolyrhythm children=%d\n", indent, len(n.Children))
	case *Seq[T]:
		fmt.Fprintf(b, "%sSeq\n", indent)
		for _, c := range n.Children {
			describe(c, depth+1, b)
		}
	case Silence[T]:
		fmt.Fprintf(b, "%sSilence\n", indent)
	case Foot[T]:
		fmt.Fprintf(b, "%sFoot\n", indent)
	case *Elongate[T]:
		fmt.Fprintf(b, "%sElongate ratio=%v\n", indent, n.Ratio)
		describe(n.Inner, depth+1, b)
	case *Repeat[T]:
		fmt.Fprintf(b, "%sRepeat n=%d\n", indent, n.N)
		describe(n.Inner, depth+1, b)
	case *EnumFromTo[T]:
		fmt.Fprintf(b, "%sEnumFromTo\n", indent)
		describe(n.From, depth+1, b)
		describe(n.To, depth+1, b)
	case *Var[T]:
		fmt.Fprintf(b, "%sVar name=%s\n", indent, n.Name)
	case *Chord[T]:
		fmt.Fprintf(b, "%sChord\n", indent)
		describe(n.Root, depth+1, b)
		describe(n.Name, depth+1, b)
	default:
		fmt.Fprintf(b, "%s%T\n", indent, n)
	}
}
