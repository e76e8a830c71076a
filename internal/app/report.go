package app

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/dfakit/internal/builder"
	"github.com/specialistvlad/dfakit/internal/kleene"
)

// writeReport renders everything the configuration asks for about one
// automaton into buf.
func (a *App) writeReport(buf *bytes.Buffer, e *builder.Entry) {
	m := e.Automaton
	finals := make([]string, 0, len(m.Finals()))
	for _, f := range m.Finals() {
		finals = append(finals, strconv.Itoa(f))
	}

	fmt.Fprintf(buf, "== %s %s (%d states, start %d, finals {%s}, total %t)\n",
		e.Kind, e.Name, m.NumStates(), m.Start(), strings.Join(finals, ", "), m.IsTotal())

	if a.config.Dump {
		_, _ = m.WriteTo(buf)
	}
	if a.config.DOT {
		buf.WriteString(m.DOT(e.Name))
	}
	if !a.config.Regex {
		return
	}

	if m.NumStates() > a.config.MaxRegexStates {
		fmt.Fprintf(buf, "regex: omitted, %d states exceed the limit of %d (length %s)\n",
			m.NumStates(), a.config.MaxRegexStates, formatLen(kleene.Length(m)))
		return
	}
	buf.WriteString("regex: ")
	_, _ = kleene.Synthesize(m).WriteTo(buf)
	buf.WriteString("\n")
}

func formatLen(n int) string {
	if n == math.MaxInt {
		return "overflow"
	}
	return strconv.Itoa(n)
}
