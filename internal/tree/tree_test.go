package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Set / Get ─────────────────────────────────────────────────────────────────

// TestSetGet_Scalar verifies that a scalar stored at a dotted path is read
// back from the same path.
func TestSetGet_Scalar(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("db.url", "local-host"))

	value, ok := tr.Get("db.url")
	require.True(t, ok)
	assert.Equal(t, "local-host", value)
}

// TestSetGet_Sequence verifies that an ordered sequence survives storage
// unchanged.
func TestSetGet_Sequence(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("x.y", []string{"a", "b", "c"}))

	value, ok := tr.Get("x.y")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, value)
}

// TestSet_CreatesIntermediateBranches verifies that missing intermediate
// branches are created on demand.
func TestSet_CreatesIntermediateBranches(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("a.b.c.d", "deep"))

	value, ok := tr.Get("a.b.c.d")
	require.True(t, ok)
	assert.Equal(t, "deep", value)
}

// TestSet_LeafBlocksDescent verifies that writing below an existing leaf
// fails with ErrNotABranch.
func TestSet_LeafBlocksDescent(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("a.b", "leaf"))

	err := tr.Set("a.b.c", "below leaf")
	assert.ErrorIs(t, err, ErrNotABranch)
}

// TestGet_MissingKey verifies that absent keys report absence, not an error.
func TestGet_MissingKey(t *testing.T) {
	tr := New()
	_, ok := tr.Get("no.such.key")
	assert.False(t, ok)
}

// TestGet_BranchValue verifies that a branch can be read as a whole subtree.
func TestGet_BranchValue(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("db.url", "h"))
	require.NoError(t, tr.Set("db.port", 5432))

	value, ok := tr.Get("db")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"url": "h", "port": 5432}, value)
}

// ── profiles ──────────────────────────────────────────────────────────────────

// TestGet_ProfiledLeafWins verifies that a profile-qualified leaf shadows
// the unqualified one when its profile is active.
func TestGet_ProfiledLeafWins(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("db.url", "local-host"))
	require.NoError(t, tr.Set("db.url<prod>", "prod-host"))

	value, ok := tr.Get("db.url", "prod")
	require.True(t, ok)
	assert.Equal(t, "prod-host", value)
}

// TestGet_InactiveProfileFallsBack verifies that an inactive qualifier is
// invisible and the unqualified value is returned.
func TestGet_InactiveProfileFallsBack(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("db.url", "local-host"))
	require.NoError(t, tr.Set("db.url<prod>", "prod-host"))

	value, ok := tr.Get("db.url")
	require.True(t, ok)
	assert.Equal(t, "local-host", value)

	value, ok = tr.Get("db.url", "staging")
	require.True(t, ok)
	assert.Equal(t, "local-host", value)
}

// TestGet_UnresolvedProfileReference verifies that a qualified-only key with
// no matching active profile reports absence rather than failing.
func TestGet_UnresolvedProfileReference(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("secret<prod>", "s3cr3t"))

	_, ok := tr.Get("secret")
	assert.False(t, ok)

	_, ok = tr.Get("secret", "dev")
	assert.False(t, ok)
}

// TestGet_ExplicitQualifierActivatesProfiles verifies that looking up an
// explicitly qualified key activates exactly its own profiles.
func TestGet_ExplicitQualifierActivatesProfiles(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Set("db.url<prod,staging>", "prod-host"))

	value, ok := tr.Get("db.url<staging>")
	require.True(t, ok)
	assert.Equal(t, "prod-host", value)
}

// TestGet_QualifiedBranch verifies that a qualifier on an intermediate
// branch shadows the unqualified branch for the whole subtree.
func TestGet_QualifiedBranch(t *testing.T) {
	tr := FromMap(map[string]any{
		"db": map[string]any{
			"url": "local-host",
		},
		"db<prod>": map[string]any{
			"url": "prod-host",
		},
	})

	value, ok := tr.Get("db.url", "prod")
	require.True(t, ok)
	assert.Equal(t, "prod-host", value)

	value, ok = tr.Get("db.url")
	require.True(t, ok)
	assert.Equal(t, "local-host", value)
}

// ── Merge ─────────────────────────────────────────────────────────────────────

// TestMerge_OverlayWinsAtLeaf verifies the leaf-level override rule.
func TestMerge_OverlayWinsAtLeaf(t *testing.T) {
	base := New()
	require.NoError(t, base.Set("db.url", "local-host"))
	require.NoError(t, base.Set("db.port", 5432))

	overlay := New()
	require.NoError(t, overlay.Set("db.url", "prod-host"))

	require.NoError(t, base.Merge(overlay))

	url, ok := base.Get("db.url")
	require.True(t, ok)
	assert.Equal(t, "prod-host", url)

	// Sibling leaves untouched by the overlay survive: merging is
	// structural, not whole-subtree replacement.
	port, ok := base.Get("db.port")
	require.True(t, ok)
	assert.Equal(t, 5432, port)
}

// TestMerge_DisjointBranches verifies that disjoint branches are unioned.
func TestMerge_DisjointBranches(t *testing.T) {
	base := New()
	require.NoError(t, base.Set("a.x", "1"))

	overlay := New()
	require.NoError(t, overlay.Set("b.y", "2"))

	require.NoError(t, base.Merge(overlay))

	_, ok := base.Get("a.x")
	assert.True(t, ok)
	_, ok = base.Get("b.y")
	assert.True(t, ok)
}

// TestMerge_NilAndEmptyOverlay verifies that merging nothing is a no-op.
func TestMerge_NilAndEmptyOverlay(t *testing.T) {
	base := New()
	require.NoError(t, base.Set("a", "1"))

	require.NoError(t, base.Merge(nil))
	require.NoError(t, base.Merge(New()))

	value, ok := base.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", value)
}

// TestMerge_OverlayUntouched verifies that the overlay tree is not mutated
// by the merge.
func TestMerge_OverlayUntouched(t *testing.T) {
	base := New()
	require.NoError(t, base.Set("a.b", "base"))

	overlay := New()
	require.NoError(t, overlay.Set("a.c", "overlay"))

	require.NoError(t, base.Merge(overlay))

	_, ok := overlay.Get("a.b")
	assert.False(t, ok, "overlay must not absorb base keys")
}
