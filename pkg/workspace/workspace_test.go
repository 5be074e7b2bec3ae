package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReplaceAndGet(t *testing.T) {
	ws := NewMemory()
	ws.Replace(map[string]map[string]any{
		"params": {"hys": 25.0, "zero_thresh": 250.0},
	})

	v, ok := ws.Get("hys")
	require.True(t, ok)
	assert.Equal(t, 25.0, v)

	_, ok = ws.Get("missing")
	assert.False(t, ok)
}

func TestMemoryReplaceClearsScope(t *testing.T) {
	ws := NewMemory()
	ws.Replace(map[string]map[string]any{
		"dataset": {"a": 1.0, "b": 2.0},
	})
	ws.Replace(map[string]map[string]any{
		"dataset": {"c": 3.0},
	})

	_, ok := ws.Get("a")
	assert.False(t, ok, "stale name a should be cleared")
	_, ok = ws.Get("b")
	assert.False(t, ok, "stale name b should be cleared")

	v, ok := ws.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestMemoryReplaceLeavesOtherScopesAlone(t *testing.T) {
	ws := NewMemory()
	ws.Replace(map[string]map[string]any{
		"dataset": {"a": 1.0},
		"params":  {"hys": 25.0},
	})
	ws.Replace(map[string]map[string]any{
		"dataset": {"a": 9.0},
	})

	v, ok := ws.Get("hys")
	require.True(t, ok, "untouched scope lost a value")
	assert.Equal(t, 25.0, v)

	v, _ = ws.Get("a")
	assert.Equal(t, 9.0, v)
}

func TestMemorySnapshotIsolation(t *testing.T) {
	ws := NewMemory()
	ws.Replace(map[string]map[string]any{
		"params": {"hys": 25.0},
	})

	snap := ws.Snapshot()
	assert.Len(t, snap, 1)

	snap["hys"] = -1.0
	snap["extra"] = 42

	v, _ := ws.Get("hys")
	assert.Equal(t, 25.0, v, "mutating a snapshot must not affect the workspace")
	_, ok := ws.Get("extra")
	assert.False(t, ok)
}
