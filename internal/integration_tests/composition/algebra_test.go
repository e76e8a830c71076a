package integration_tests

import (
	"testing"

	"github.com/specialistvlad/dfakit/internal/integration_tests/harness"
	"github.com/stretchr/testify/require"
)

const parityHCL = `
automaton "even_a" {
  states = 2
  final  = [0]

  transition {
    from = 0
    on   = "a"
    to   = 1
  }
  transition {
    from = 1
    on   = "a"
    to   = 0
  }
  transition {
    from = 0
    on   = ["b", "c"]
    to   = 0
  }
  transition {
    from = 1
    on   = ["b", "c"]
    to   = 1
  }
}

automaton "ends_b" {
  states = 2
  final  = [1]

  transition {
    from = 0
    on   = "ac"
    to   = 0
  }
  transition {
    from = 0
    on   = "b"
    to   = 1
  }
  transition {
    from = 1
    on   = "ac"
    to   = 0
  }
  transition {
    from = 1
    on   = "b"
    to   = 1
  }
}
`

// TestComposition_ChainedOperations builds compositions of compositions,
// declared out of dependency order.
func TestComposition_ChainedOperations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	composeHCL := `
compose "not_both" {
  op       = "complement"
  operands = ["both"]
}

compose "both" {
  op       = "intersection"
  operands = ["even_a", "ends_b"]
}

compose "any" {
  op       = "union"
  operands = ["even_a", "ends_b", "not_both"]
}

check "both" {
  automaton = "both"
  accept    = ["b", "aab", "abab"]
  reject    = ["ab", "aa", "bba"]
  equivalent = "((b+c)*a(b+c)*a)*(b+c)*b"
  sample_symbols = "abc"
  sample_length  = 5
}

check "not_both" {
  automaton = "not_both"
  accept    = ["ab", "", "zz"]
  reject    = ["b", "aab"]
}

check "any" {
  automaton = "any"
  accept    = ["", "a", "b", "ab", "q"]
}
`
	files := map[string]string{
		"automata.hcl": parityHCL,
		"compose.hcl":  composeHCL,
	}

	// --- Act ---
	result := harness.Run(t, files, nil)

	// --- Assert ---
	require.NoError(t, result.Err, result.Output)
	require.Contains(t, result.Output, "check both: ok\n")
	require.Contains(t, result.Output, "check not_both: ok\n")
	require.Contains(t, result.Output, "check any: ok\n")
}

// TestComposition_PartialOperandRequiresCompletion checks that opting out of
// completion surfaces the totality requirement.
func TestComposition_PartialOperandRequiresCompletion(t *testing.T) {
	t.Parallel()

	composeHCL := `
compose "not_even" {
  op       = "complement"
  operands = ["even_a"]
  complete = false
}
`
	result := harness.Run(t, map[string]string{"automata.hcl": parityHCL, "compose.hcl": composeHCL}, nil)

	require.Error(t, result.Err)
	require.ErrorContains(t, result.Err, "not total")
}

func TestComposition_FailingCheckFailsRun(t *testing.T) {
	t.Parallel()

	checkHCL := `
check "wrong" {
  automaton = "even_a"
  accept    = ["a"]
}
`
	result := harness.Run(t, map[string]string{"automata.hcl": parityHCL, "check.hcl": checkHCL}, nil)

	require.Error(t, result.Err)
	require.EqualError(t, result.Err, "1 of 1 checks failed")
	require.Contains(t, result.Output, "check wrong: FAIL\n  expected \"a\" to be accepted\n")
}
