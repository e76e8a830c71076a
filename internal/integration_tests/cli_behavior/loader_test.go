package integration_tests

import (
	"testing"

	"github.com/specialistvlad/dfakit/internal/app"
	"github.com/specialistvlad/dfakit/internal/integration_tests/harness"
	"github.com/stretchr/testify/require"
)

// TestCLIBehavior_LoadsDirectoryInLexicalOrder checks that blocks spread over
// several files are merged and reported in file order.
func TestCLIBehavior_LoadsDirectoryInLexicalOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"b_second.hcl": `
automaton "second" {
  states = 1
}
`,
		"a_first.hcl": `
automaton "first" {
  states = 1
  final  = [0]
}
`,
		"nested/c_third.hcl": `
compose "third" {
  op       = "union"
  operands = ["first", "second"]
}
`,
		"notes.txt": "not a definitions file",
	}

	// --- Act ---
	result := harness.Run(t, files, nil)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Regexp(t, `(?s)== automaton first .*== automaton second .*== compose third `, result.Output)
	require.Contains(t, result.LogOutput, "Discovered HCL files.")
	require.Contains(t, result.LogOutput, "count=3")
}

func TestCLIBehavior_EmptyDirectoryIsAnError(t *testing.T) {
	t.Parallel()

	result := harness.Run(t, map[string]string{"readme.md": "# nothing"}, nil)

	require.Error(t, result.Err)
	require.ErrorContains(t, result.Err, "no .hcl files found")
}

// TestCLIBehavior_YAMLFormatIgnoresHCL checks that the YAML loader only
// picks up YAML files and feeds the same pipeline.
func TestCLIBehavior_YAMLFormatIgnoresHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"defs.yaml": `
automata:
  - name: odd_a
    states: 2
    final: [1]
    transitions:
      - {from: 0, on: a, to: 1}
      - {from: 1, on: a, to: 0}
compositions:
  - name: even_a
    op: complement
    operands: [odd_a]
checks:
  - name: even_a
    automaton: even_a
    accept: ["", aa, b]
    reject: [a]
`,
		"broken.hcl": `automaton "x" {`,
	}

	// --- Act ---
	result := harness.Run(t, files, func(c *app.Config) { c.Format = "yaml" })

	// --- Assert ---
	require.NoError(t, result.Err, result.Output)
	require.Contains(t, result.Output, "== compose even_a (3 states, start 0, finals {0, 2}, total true)")
	require.Contains(t, result.Output, "check even_a: ok\n")
	require.Contains(t, result.LogOutput, "Discovered YAML files.")
}
