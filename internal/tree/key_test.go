package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseKey ──────────────────────────────────────────────────────────────────

// TestParseKey_PlainDottedPath verifies that an unqualified dotted key is
// split into its path segments with no profiles.
func TestParseKey_PlainDottedPath(t *testing.T) {
	key, err := ParseKey("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, key.Path)
	assert.Empty(t, key.Profiles)
}

// TestParseKey_SingleSegment verifies that a key without dots parses to a
// one-segment path.
func TestParseKey_SingleSegment(t *testing.T) {
	key, err := ParseKey("root")
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, key.Path)
}

// TestParseKey_ProfileQualifier verifies that a trailing profile qualifier
// is parsed into the profile list with whitespace trimmed.
func TestParseKey_ProfileQualifier(t *testing.T) {
	key, err := ParseKey("a.b.c<prod, staging>")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, key.Path)
	assert.Equal(t, []string{"prod", "staging"}, key.Profiles)
}

// TestParseKey_Empty verifies that the empty string is rejected.
func TestParseKey_Empty(t *testing.T) {
	_, err := ParseKey("")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

// TestParseKey_Malformed verifies that broken keys are rejected with
// ErrMalformedKey.
func TestParseKey_Malformed(t *testing.T) {
	for _, raw := range []string{
		"a..b",
		".a",
		"a.",
		"a<prod",
		"a<prod>extra.b",
		"a<>",
		"a< , >",
		"<prod>",
		"a>b",
		"a<pr<od>>",
	} {
		_, err := ParseKey(raw)
		assert.ErrorIs(t, err, ErrMalformedKey, "key %q", raw)
	}
}

// ── Key.String ────────────────────────────────────────────────────────────────

// TestKeyString_RoundTrip verifies that String reassembles the parsed key.
func TestKeyString_RoundTrip(t *testing.T) {
	for _, raw := range []string{"a.b.c", "a.b.c<prod,staging>", "x"} {
		key, err := ParseKey(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, key.String())
	}
}

// ── Key.AppliesTo ─────────────────────────────────────────────────────────────

// TestKeyAppliesTo_Unqualified verifies that a key without profiles applies
// under any profile set, including none.
func TestKeyAppliesTo_Unqualified(t *testing.T) {
	key, err := ParseKey("a.b")
	require.NoError(t, err)
	assert.True(t, key.AppliesTo(nil))
	assert.True(t, key.AppliesTo([]string{"prod"}))
}

// TestKeyAppliesTo_Qualified verifies that a qualified key applies only when
// one of its profiles is active, regardless of profile order.
func TestKeyAppliesTo_Qualified(t *testing.T) {
	key, err := ParseKey("a.b<prod,staging>")
	require.NoError(t, err)
	assert.True(t, key.AppliesTo([]string{"staging"}))
	assert.True(t, key.AppliesTo([]string{"dev", "prod"}))
	assert.False(t, key.AppliesTo([]string{"dev"}))
	assert.False(t, key.AppliesTo(nil))
}
