package codegen

import (
	"fmt"
	"go/token"
	"io"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/specialistvlad/dfakit/internal/automaton"
)

// symbolIndexName is the shared byte-to-column lookup table. Entries are
// the column plus one so the zero value means "not in the alphabet".
const symbolIndexName = "symbolIndex"

// Matcher is one automaton to render.
type Matcher struct {
	Name      string
	Automaton *automaton.Automaton
}

// FuncName derives the exported matcher name from an automaton name:
// "even_b" becomes "MatchEvenB".
func FuncName(name string) string {
	var sb strings.Builder
	sb.WriteString("Match")
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Render writes a gofmt-ed Go file in package pkg holding one matcher per
// entry of matchers.
func Render(w io.Writer, pkg string, matchers ...Matcher) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by dfakit. DO NOT EDIT.")

	f.Comment("symbolIndex maps an input byte to its transition column plus one.")
	f.Var().Id(symbolIndexName).Op("=").Index(jen.Lit(256)).Uint8().Values(jen.DictFunc(func(d jen.Dict) {
		for i := 0; i < len(automaton.Alphabet); i++ {
			d[jen.LitRune(rune(automaton.Alphabet[i]))] = jen.Lit(i + 1)
		}
	}))

	seen := make(map[string]string, len(matchers))
	for _, m := range matchers {
		fn := FuncName(m.Name)
		if !token.IsIdentifier(fn) {
			return fmt.Errorf("automaton %q: %q is not a valid Go identifier", m.Name, fn)
		}
		if prev, ok := seen[fn]; ok {
			return fmt.Errorf("automata %q and %q both render as %s", prev, m.Name, fn)
		}
		seen[fn] = m.Name
		renderMatcher(f, fn, m)
	}

	return f.Render(w)
}

func renderMatcher(f *jen.File, fn string, m Matcher) {
	a := m.Automaton
	width := len(automaton.Alphabet)
	prefix := strings.ToLower(fn[:1]) + fn[1:]
	table, accepting := prefix+"Transitions", prefix+"Accepting"

	rows := make([]jen.Code, a.NumStates())
	finals := make([]jen.Code, a.NumStates())
	for s := 0; s < a.NumStates(); s++ {
		cells := make([]jen.Code, width)
		for i := 0; i < width; i++ {
			to, ok := a.Step(s, automaton.Alphabet[i])
			if !ok {
				to = -1
			}
			cells[i] = jen.Lit(to)
		}
		rows[s] = jen.Values(cells...)
		if a.IsFinal(s) {
			finals[s] = jen.True()
		} else {
			finals[s] = jen.False()
		}
	}

	f.Line()
	f.Commentf("%s is the transition table of %q; -1 means no transition.", table, m.Name)
	f.Var().Id(table).Op("=").Index(jen.Lit(a.NumStates())).Index(jen.Lit(width)).Int().Values(rows...)
	f.Line()
	f.Var().Id(accepting).Op("=").Index(jen.Lit(a.NumStates())).Bool().Values(finals...)
	f.Line()
	f.Commentf("%s reports whether the automaton %q accepts input.", fn, m.Name)
	f.Func().Id(fn).Params(jen.Id("input").String()).Bool().Block(
		jen.Id("state").Op(":=").Lit(a.Start()),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Len(jen.Id("input")), jen.Id("i").Op("++")).Block(
			jen.Id("col").Op(":=").Id(symbolIndexName).Index(jen.Id("input").Index(jen.Id("i"))),
			jen.If(jen.Id("col").Op("==").Lit(0)).Block(jen.Return(jen.False())),
			jen.Id("state").Op("=").Id(table).Index(jen.Id("state")).Index(jen.Id("col").Op("-").Lit(1)),
			jen.If(jen.Id("state").Op("<").Lit(0)).Block(jen.Return(jen.False())),
		),
		jen.Return(jen.Id(accepting).Index(jen.Id("state"))),
	)
}
