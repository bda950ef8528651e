package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Put / Freeze ──────────────────────────────────────────────────────────────

// TestInMemory_PutAndProvide verifies that inserted pairs come back from
// Provide at their dotted locations.
func TestInMemory_PutAndProvide(t *testing.T) {
	p := NewInMemoryProvider()
	require.NoError(t, p.Put("db.url", "prod-host"))
	require.NoError(t, p.Put("x.y", []string{"a", "b"}))

	tr, err := p.Provide(context.Background())
	require.NoError(t, err)

	value, ok := tr.Get("db.url")
	require.True(t, ok)
	assert.Equal(t, "prod-host", value)

	value, ok = tr.Get("x.y")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

// TestInMemory_PutAfterFreeze verifies the write-once contract: Put after
// Freeze fails with ErrProviderFrozen.
func TestInMemory_PutAfterFreeze(t *testing.T) {
	p := NewInMemoryProvider()
	require.NoError(t, p.Put("a", "1"))
	p.Freeze()

	err := p.Put("b", "2")
	assert.ErrorIs(t, err, ErrProviderFrozen)
}

// TestInMemory_ProvideFreezes verifies that the first read freezes the
// provider.
func TestInMemory_ProvideFreezes(t *testing.T) {
	p := NewInMemoryProvider()
	_, err := p.Provide(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, p.Put("late", "value"), ErrProviderFrozen)
}

// TestInMemory_PutAll verifies bulk insertion.
func TestInMemory_PutAll(t *testing.T) {
	p := NewInMemoryProvider()
	require.NoError(t, p.PutAll(map[string]any{
		"a.b": "1",
		"c":   "2",
	}))

	tr, err := p.Provide(context.Background())
	require.NoError(t, err)

	value, ok := tr.Get("a.b")
	require.True(t, ok)
	assert.Equal(t, "1", value)
}

// TestInMemory_ProfiledKey verifies that profile-qualified keys are stored
// with their qualifier intact.
func TestInMemory_ProfiledKey(t *testing.T) {
	p := NewInMemoryProvider()
	require.NoError(t, p.Put("db.url<prod>", "prod-host"))

	tr, err := p.Provide(context.Background())
	require.NoError(t, err)

	value, ok := tr.Get("db.url", "prod")
	require.True(t, ok)
	assert.Equal(t, "prod-host", value)

	_, ok = tr.Get("db.url")
	assert.False(t, ok)
}
