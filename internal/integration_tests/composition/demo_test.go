package integration_tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/specialistvlad/dfakit/internal/app"
	"github.com/specialistvlad/dfakit/internal/integration_tests/harness"
	"github.com/stretchr/testify/require"
)

// TestComposition_DemoDefinitionsPass runs the bundled walkthrough and
// expects every one of its checks to hold.
func TestComposition_DemoDefinitionsPass(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	demo, err := os.ReadFile(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "examples", "demo.hcl"))
	require.NoError(t, err)

	// --- Act ---
	result := harness.Run(t, map[string]string{"demo.hcl": string(demo)}, func(c *app.Config) {
		c.Regex = true
	})

	// --- Assert ---
	require.NoError(t, result.Err, result.Output)
	for _, name := range []string{"toggle", "even_b", "either", "neither", "both", "a_loop", "odd_a", "chain", "anything"} {
		require.Contains(t, result.Output, "check "+name+": ok\n")
	}
	require.Contains(t, result.Output, "== compose neither (")
	require.Contains(t, result.LogOutput, "All checks passed.")
}
