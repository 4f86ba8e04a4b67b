package voice

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = Catalog{
	{ID: "id-rachel", Name: "Rachel"},
	{ID: "id-adam", Name: "Adam"},
	{ID: "id-bella", Name: "Bella"},
}

func TestCatalog_Lookup(t *testing.T) {
	v, ok := testCatalog.Lookup("Adam")
	require.True(t, ok)
	assert.Equal(t, "id-adam", v.ID)

	v, ok = testCatalog.Lookup("id-bella")
	require.True(t, ok)
	assert.Equal(t, "Bella", v.Name)

	_, ok = testCatalog.Lookup("Nobody")
	assert.False(t, ok)

	assert.Equal(t, []string{"Rachel", "Adam", "Bella"}, testCatalog.Names())
}

func TestAssign_RoundRobin(t *testing.T) {
	speakers := []string{"A", "B", "C", "D", "E"}

	m, err := Assign(speakers, testCatalog)
	require.NoError(t, err)

	want := []string{"Rachel", "Adam", "Bella", "Rachel", "Adam"}
	for i, s := range speakers {
		assert.Equal(t, want[i], m[s], "speaker %s", s)
	}
}

func TestAssign_FewerSpeakersThanVoices(t *testing.T) {
	m, err := Assign([]string{"Solo"}, testCatalog)
	require.NoError(t, err)
	assert.Equal(t, Map{"Solo": "Rachel"}, m)
}

func TestAssign_EmptyCatalog(t *testing.T) {
	_, err := Assign([]string{"A"}, nil)
	assert.True(t, errors.Is(err, ErrEmptyCatalog))
}

func TestValidateMap(t *testing.T) {
	assert.NoError(t, ValidateMap(Map{"Alice": "Rachel", "Bob": "id-adam"}, testCatalog))

	err := ValidateMap(Map{"Alice": "Zed", "Bob": "Rachel", "Carol": "Amy", "Dan": "Zed"}, testCatalog)
	var invalid *InvalidVoicesError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"Amy", "Zed"}, invalid.Invalid)
	assert.Equal(t, []string{"Rachel", "Adam", "Bella"}, invalid.Available)

	assert.True(t, errors.Is(ValidateMap(Map{"A": "Rachel"}, Catalog{}), ErrEmptyCatalog))
}

func TestCheckCoverage(t *testing.T) {
	assert.NoError(t, CheckCoverage(Map{"A": "x", "B": "y", "Extra": "z"}, []string{"A", "B"}))

	err := CheckCoverage(Map{"A": "x"}, []string{"A", "B", "C"})
	var missing *MissingSpeakersError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"B", "C"}, missing.Speakers)
}

func TestResolve_CustomMapUsedVerbatim(t *testing.T) {
	custom := Map{"Alice": "Bella", "Bob": "Bella", "Unused": "Adam"}

	m, err := Resolve(custom, []string{"Alice", "Bob"}, testCatalog)
	require.NoError(t, err)
	assert.Equal(t, Map{"Alice": "Bella", "Bob": "Bella", "Unused": "Adam"}, m)
}

func TestResolve_AutoWhenNoCustomMap(t *testing.T) {
	m, err := Resolve(nil, []string{"Alice", "Bob"}, testCatalog)
	require.NoError(t, err)
	assert.Equal(t, Map{"Alice": "Rachel", "Bob": "Adam"}, m)
}

func TestResolve_InvalidVoiceBeforeCoverage(t *testing.T) {
	_, err := Resolve(Map{"Alice": "Zed"}, []string{"Alice", "Bob"}, testCatalog)

	var invalid *InvalidVoicesError
	assert.True(t, errors.As(err, &invalid))
}

func TestLoadMap(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "map.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"Alice": "Rachel", "Bob": "Adam"}`), 0o644))
	m, err := LoadMap(good)
	require.NoError(t, err)
	assert.Equal(t, Map{"Alice": "Rachel", "Bob": "Adam"}, m)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"Alice": 3}`), 0o644))
	_, err = LoadMap(bad)
	assert.Error(t, err)

	_, err = LoadMap(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormatAssignments(t *testing.T) {
	var buf bytes.Buffer

	FormatAssignments(&buf, Map{"Bob": "Adam", "Alice": "Rachel", "Zoe": "Bella", "Extra": "Adam"}, []string{"Bob", "Alice", "Zoe"})

	assert.Equal(t, "Voice assignments:\nBob: Adam\nAlice: Rachel\nZoe: Bella\nExtra: Adam\n", buf.String())
}
