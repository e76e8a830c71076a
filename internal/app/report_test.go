package app

import (
	"bytes"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/specialistvlad/dfakit/internal/automaton"
	"github.com/specialistvlad/dfakit/internal/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLen(t *testing.T) {
	assert.Equal(t, "42", formatLen(42))
	assert.Equal(t, "overflow", formatLen(math.MaxInt))
}

func TestWriteReport_OmittedRegexStaysCheap(t *testing.T) {
	// --- Arrange ---
	const states = 300
	m, err := automaton.New(states, 0, states-1)
	require.NoError(t, err)
	for s := 0; s < states; s++ {
		require.NoError(t, m.AddTransition(s, 'a', (s+1)%states))
	}
	a, _, _ := newTestApp(t, toggleModel(), func(c *Config) {
		c.Regex = true
		c.MaxRegexStates = 6
	})
	entry := &builder.Entry{Name: "cycle", Kind: builder.KindDefinition, Automaton: m}

	// --- Act ---
	var buf bytes.Buffer
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	started := time.Now()
	a.writeReport(&buf, entry)
	elapsed := time.Since(started)
	runtime.ReadMemStats(&after)

	// --- Assert ---
	assert.Contains(t, buf.String(), "regex: omitted, 300 states exceed the limit of 6 (length overflow)\n")
	// Two layers of states*states ints, with slack for the report itself.
	assert.LessOrEqual(t, after.TotalAlloc-before.TotalAlloc, uint64(4*states*states*8))
	assert.Less(t, elapsed, 2*time.Second)
}

func TestWriteReport_OmittedRegexReportsExactLength(t *testing.T) {
	a, _, _ := newTestApp(t, toggleModel(), func(c *Config) {
		c.Regex = true
		c.MaxRegexStates = 1
	})
	m, err := automaton.New(2, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.AddTransition(0, 'a', 1))

	var buf bytes.Buffer
	a.writeReport(&buf, &builder.Entry{Name: "one", Kind: builder.KindDefinition, Automaton: m})

	// Every base cell prints one byte, the first layer 12+4*1 and the second
	// 12+4*16.
	assert.Contains(t, buf.String(), "regex: omitted, 2 states exceed the limit of 1 (length 76)\n")
}
