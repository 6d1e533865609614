// Package mini implements a temporal pattern mini-notation parser and
// compiler: a lexer, a backtracking recursive-descent combinator parser
// producing a polymorphic AST, a foot/size resolver, and a compiler that
// folds the AST into the pattern package's rational-time event algebra.
package mini

import (
	"github.com/pkg/errors"

	"github.com/cyclepattern/mini/pattern"
)

// ParseBP parses and compiles input for leaf type T, returning a structured
// *ParseError on failure rather than a bare error (spec.md §6/§7).
func ParseBP[T any](leaf Leaf[T], input string) (pattern.Pattern[T], *ParseError) {
	p := newParser(input, leaf)
	top, err := p.parseTopLevel()
	if err != nil {
		return nil, err
	}
	return top.compile(), nil
}

// ParseBP_E is ParseBP but panics (stack-traced via pkg/errors) on failure,
// for call sites where a malformed pattern string is a programmer error
// rather than a recoverable condition (spec.md §6).
func ParseBP_E[T any](leaf Leaf[T], input string) pattern.Pattern[T] {
	pat, err := ParseBP(leaf, input)
	if err != nil {
		panic(errors.WithStack(err))
	}
	return pat
}

// DescribeBP parses input without compiling it and renders the resulting
// AST (see Describe), for tooling that wants to inspect the tree rather
// than sample it. TPat's compile method is unexported, so outside this
// package a parsed tree can be rendered this way but not compiled directly.
func DescribeBP[T any](leaf Leaf[T], input string) (string, *ParseError) {
	p := newParser(input, leaf)
	top, err := p.parseTopLevel()
	if err != nil {
		return "", err
	}
	return Describe(top), nil
}
