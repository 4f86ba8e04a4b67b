package dialogue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormedLines(t *testing.T) {
	script := Parse("Alice: Hello there.\nBob:   General Kenobi!  \n")

	require.Len(t, script.Lines, 2)
	assert.Equal(t, Line{Speaker: "Alice", Text: "Hello there."}, script.Lines[0])
	assert.Equal(t, Line{Speaker: "Bob", Text: "General Kenobi!"}, script.Lines[1])
	assert.Equal(t, []string{"Alice", "Bob"}, script.Speakers)
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	content := `
# Act one
Alice: First line.

just narration without a speaker
Two Words: not an identifier
:missing speaker
Bob:
Bob: Second line.
`
	script := Parse(content)

	assert.Equal(t, []Line{
		{Speaker: "Alice", Text: "First line."},
		{Speaker: "Bob", Text: "Second line."},
	}, script.Lines)
}

func TestParse_SpeakersFirstSeenOrderWithoutDuplicates(t *testing.T) {
	script := Parse("Carol: a\nAlice: b\nCarol: c\nBob: d\nAlice: e\n")

	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, script.Speakers)
	assert.Len(t, script.Lines, 5)
}

func TestParse_PreservesColonsInText(t *testing.T) {
	script := Parse("Narrator: It was 10:30: late.")

	require.Len(t, script.Lines, 1)
	assert.Equal(t, "It was 10:30: late.", script.Lines[0].Text)
}

func TestParse_WindowsLineEndings(t *testing.T) {
	script := Parse("Alice: one\r\nBob: two\r\n")

	assert.Equal(t, []Line{
		{Speaker: "Alice", Text: "one"},
		{Speaker: "Bob", Text: "two"},
	}, script.Lines)
}

func TestParse_Empty(t *testing.T) {
	for _, content := range []string{"", "\n\n", "no dialogue here"} {
		script := Parse(content)
		assert.True(t, script.Empty())
		assert.Empty(t, script.Lines)
		assert.Empty(t, script.Speakers)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice: Hi\nBob: Hey\n"), 0o644))

	script, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, script.Speakers)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParse_UnicodeSpeakerNames(t *testing.T) {
	script := Parse("Zoë: Bonjour\nМария: Привет\n")

	assert.Equal(t, []string{"Zoë", "Мария"}, script.Speakers)
}
