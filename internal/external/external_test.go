package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CoerceValue ───────────────────────────────────────────────────────────────

// TestCoerceValue_Scalar verifies that a delimiterless value stays a scalar
// string, not a one-element sequence.
func TestCoerceValue_Scalar(t *testing.T) {
	value := CoerceValue("plain")
	assert.Equal(t, "plain", value)
	assert.IsType(t, "", value)
}

// TestCoerceValue_List verifies the list round-trip from the compatibility
// contract: "a, b ,c" becomes ["a","b","c"] with whitespace trimmed.
func TestCoerceValue_List(t *testing.T) {
	value := CoerceValue("a, b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, value)
}

// TestCoerceValue_EmptyElements verifies that empty elements survive as
// empty strings (trimmed, not dropped), preserving list positions.
func TestCoerceValue_EmptyElements(t *testing.T) {
	value := CoerceValue("a,,b")
	assert.Equal(t, []string{"a", "", "b"}, value)
}

// ── StripPrefix ───────────────────────────────────────────────────────────────

// TestStripPrefix_Prefixed verifies that the fixed prefix is stripped from a
// matching key.
func TestStripPrefix_Prefixed(t *testing.T) {
	key, ok := StripPrefix("seedstack.config.x.y")
	require.True(t, ok)
	assert.Equal(t, "x.y", key)
}

// TestStripPrefix_Unrelated verifies that keys without the prefix are
// ignored.
func TestStripPrefix_Unrelated(t *testing.T) {
	_, ok := StripPrefix("PATH")
	assert.False(t, ok)

	_, ok = StripPrefix("seedstack.profiles")
	assert.False(t, ok)
}

// TestStripPrefix_BarePrefix verifies that the bare prefix with no key after
// it is not a configuration key.
func TestStripPrefix_BarePrefix(t *testing.T) {
	_, ok := StripPrefix("seedstack.config.")
	assert.False(t, ok)
}

// ── FromPairs ─────────────────────────────────────────────────────────────────

// TestFromPairs_FiltersAndCoerces verifies that only prefixed keys survive
// and that their values are coerced.
func TestFromPairs_FiltersAndCoerces(t *testing.T) {
	out := FromPairs(map[string]string{
		"seedstack.config.db.url": "prod-host",
		"seedstack.config.x.y":    "a, b ,c",
		"HOME":                    "/root",
		"seedstack.profiles":      "prod",
	})

	assert.Equal(t, map[string]any{
		"db.url": "prod-host",
		"x.y":    []string{"a", "b", "c"},
	}, out)
}

// ── FromEnviron ───────────────────────────────────────────────────────────────

// TestFromEnviron_ParsesEntries verifies that KEY=value entries are split on
// the first '=' and malformed entries are skipped.
func TestFromEnviron_ParsesEntries(t *testing.T) {
	pairs := FromEnviron([]string{
		"seedstack.config.db.url=prod-host",
		"WITH_EQUALS=a=b",
		"malformed",
		"=novalue",
	})

	assert.Equal(t, map[string]string{
		"seedstack.config.db.url": "prod-host",
		"WITH_EQUALS":             "a=b",
	}, pairs)
}

// ── ActiveProfiles ────────────────────────────────────────────────────────────

// TestActiveProfiles_CommaSeparated verifies profile extraction with
// trimming and empty-element removal.
func TestActiveProfiles_CommaSeparated(t *testing.T) {
	profiles := ActiveProfiles(map[string]string{
		ProfilesKey: "prod, staging,,",
	})
	assert.Equal(t, []string{"prod", "staging"}, profiles)
}

// TestActiveProfiles_Absent verifies that a missing or blank profiles key
// yields no active profiles.
func TestActiveProfiles_Absent(t *testing.T) {
	assert.Nil(t, ActiveProfiles(map[string]string{}))
	assert.Nil(t, ActiveProfiles(map[string]string{ProfilesKey: "  "}))
}
