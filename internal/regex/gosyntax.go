package regex

import (
	"fmt"
	"regexp"
	"strings"
)

// noMatch is a character class that matches nothing.
const noMatch = `[^\x00-\x{10FFFF}]`

// GoSyntax translates n into an unanchored Go regexp pattern with the same
// language.
func GoSyntax(n *Node) string {
	var sb strings.Builder
	writeGo(&sb, n)
	return sb.String()
}

func writeGo(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case KindSymbol:
		sb.WriteByte(n.Symbol)
	case KindEpsilon:
		sb.WriteString("(?:)")
	case KindEmpty:
		sb.WriteString(noMatch)
	case KindAlt:
		sb.WriteString("(?:")
		for i, s := range n.Subs {
			if i > 0 {
				sb.WriteByte('|')
			}
			writeGo(sb, s)
		}
		sb.WriteByte(')')
	case KindConcat:
		for _, s := range n.Subs {
			writeGo(sb, s)
		}
	case KindStar:
		sb.WriteString("(?:")
		writeGo(sb, n.Subs[0])
		sb.WriteString(")*")
	}
}

// Compile parses expr and compiles it into a Go regexp that matches whole
// words only.
func Compile(expr string) (*regexp.Regexp, error) {
	n, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^(?:" + GoSyntax(n) + ")$")
	if err != nil {
		return nil, fmt.Errorf("regex: compiling translation of %q: %w", expr, err)
	}
	return re, nil
}
