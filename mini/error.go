package mini

import (
	"strings"

	"github.com/cyclepattern/mini/srcpos"
)

// ParseError is the single error kind the core emits (spec.md §7): a
// structured {message, expecting-set, position} bundled with the original
// source text, so a caller can render a caret diagnostic without
// re-threading the input string through. Modelled on the teacher's
// parser.Error{Message, Expected, Got}.
type ParseError struct {
	Pos      srcpos.Position
	Message  string
	Expected []string
	Source   string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if len(e.Expected) > 0 {
		msg += "; expecting " + strings.Join(e.Expected, " or ")
	}
	return msg
}

// Render produces the teacher-style two-line diagnostic: the source line,
// then a caret under the failing column, then the message (spec.md §7).
func (e *ParseError) Render() string {
	var b strings.Builder
	lines := strings.Split(e.Source, "\n")
	lineIdx := e.Pos.Line - 1
	if lineIdx >= 0 && lineIdx < len(lines) {
		b.WriteString(lines[lineIdx])
		b.WriteByte('\n')
		col := e.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		b.WriteString(strings.Repeat(" ", col))
		b.WriteString("^\n")
	}
	b.WriteString(e.Error())
	return b.String()
}
