// Package dialogue parses scripted dialogue of the form "Speaker: line".
package dialogue

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// linePattern matches an identifier (Unicode letters, digits, underscore), a
// colon, optional whitespace and the remaining text.
var linePattern = regexp.MustCompile(`^([\p{L}\p{N}\p{M}_]+):\s*(.+)`)

// Line is one spoken line of dialogue.
type Line struct {
	Speaker string
	Text    string
}

// Script is the parsed dialogue in playback order together with the distinct
// speakers in the order they first appear.
type Script struct {
	Lines    []Line
	Speakers []string
}

// Empty reports whether the script has no spoken lines.
func (s *Script) Empty() bool {
	return len(s.Lines) == 0
}

// Parse turns raw script content into a Script. Lines that do not look like
// "Speaker: text" are skipped.
func Parse(content string) *Script {
	script := &Script{
		Lines:    []Line{},
		Speakers: []string{},
	}
	seen := make(map[string]bool)

	for _, raw := range strings.Split(content, "\n") {
		m := linePattern.FindStringSubmatch(strings.TrimSpace(raw))
		if m == nil {
			continue
		}

		speaker, text := m[1], strings.TrimSpace(m[2])
		script.Lines = append(script.Lines, Line{Speaker: speaker, Text: text})
		if !seen[speaker] {
			seen[speaker] = true
			script.Speakers = append(script.Speakers, speaker)
		}
	}

	return script
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue file: %w", err)
	}
	return Parse(string(data)), nil
}
