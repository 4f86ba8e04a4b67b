package voice

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Map assigns a voice (by name or ID) to each speaker.
type Map map[string]string

// LoadMap reads a JSON object of speaker names to voice names.
func LoadMap(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read speaker map: %w", err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse speaker map %s: %w", path, err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// Assign cycles through the catalog in order, giving speakers[i] the voice
// at i mod len(catalog).
func Assign(speakers []string, catalog Catalog) (Map, error) {
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	names := catalog.Names()
	m := make(Map, len(speakers))
	for i, speaker := range speakers {
		m[speaker] = names[i%len(names)]
	}
	return m, nil
}

// ValidateMap checks that every voice used by m exists in the catalog.
func ValidateMap(m Map, catalog Catalog) error {
	if catalog.Len() == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool)
	var invalid []string
	for _, v := range m {
		if seen[v] || catalog.Contains(v) {
			continue
		}
		seen[v] = true
		invalid = append(invalid, v)
	}
	if len(invalid) == 0 {
		return nil
	}

	sort.Strings(invalid)
	return &InvalidVoicesError{Invalid: invalid, Available: catalog.Names()}
}

// CheckCoverage verifies that m has a voice for every speaker.
func CheckCoverage(m Map, speakers []string) error {
	var missing []string
	for _, s := range speakers {
		if _, ok := m[s]; !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return &MissingSpeakersError{Speakers: missing}
	}
	return nil
}

// Resolve picks the voice map for a run. A non-nil custom map is validated
// and returned unchanged; otherwise voices are assigned automatically.
func Resolve(custom Map, speakers []string, catalog Catalog) (Map, error) {
	if custom == nil {
		return Assign(speakers, catalog)
	}
	if err := ValidateMap(custom, catalog); err != nil {
		return nil, err
	}
	if err := CheckCoverage(custom, speakers); err != nil {
		return nil, err
	}
	return custom, nil
}

// FormatAssignments prints the speaker to voice table. Speakers are listed
// in dialogue order; map entries for speakers outside the dialogue follow,
// sorted by name.
func FormatAssignments(w io.Writer, m Map, order []string) {
	fmt.Fprintln(w, "Voice assignments:")

	listed := make(map[string]bool, len(order))
	for _, speaker := range order {
		if v, ok := m[speaker]; ok {
			fmt.Fprintf(w, "%s: %s\n", speaker, v)
			listed[speaker] = true
		}
	}

	var rest []string
	for speaker := range m {
		if !listed[speaker] {
			rest = append(rest, speaker)
		}
	}
	sort.Strings(rest)
	for _, speaker := range rest {
		fmt.Fprintf(w, "%s: %s\n", speaker, m[speaker])
	}
}
