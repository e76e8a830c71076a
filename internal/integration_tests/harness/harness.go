// Package harness runs the driver end to end against HCL written to a
// temporary directory.
package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/dfakit/internal/app"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/hcl"
	"github.com/specialistvlad/dfakit/internal/testutil"
	"github.com/specialistvlad/dfakit/internal/yaml"
	"github.com/stretchr/testify/require"
)

// Result holds the outcomes of an integration test run.
type Result struct {
	Output    string
	LogOutput string
	Err       error
}

// Run writes files into a temporary directory, points the driver at it and
// runs it. mutate, if non-nil, adjusts the configuration first.
func Run(t *testing.T, files map[string]string, mutate func(*app.Config)) *Result {
	t.Helper()
	return RunWithContext(context.Background(), t, files, mutate)
}

// RunWithContext is Run with a caller-provided context.
func RunWithContext(ctx context.Context, t *testing.T, files map[string]string, mutate func(*app.Config)) *Result {
	t.Helper()

	defsDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(defsDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := app.Config{
		DefsPaths:      []string{defsDir},
		Format:         "hcl",
		LogLevel:       "debug",
		LogFormat:      "text",
		WorkerCount:    4,
		MaxRegexStates: 8,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	var loader config.Loader = hcl.NewLoader()
	if validated.Format == "yaml" {
		loader = yaml.NewLoader()
	}
	runErr := app.NewApp(out, logs, validated, loader).Run(ctx)

	if os.Getenv("DFAKIT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &Result{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
