package voice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCatalog is returned when the provider offers no voices to assign.
var ErrEmptyCatalog = errors.New("the voice provider returned no voices")

// InvalidVoicesError lists custom map voices that the provider does not offer.
type InvalidVoicesError struct {
	Invalid   []string
	Available []string
}

func (e *InvalidVoicesError) Error() string {
	return fmt.Sprintf("voices not available: %s", strings.Join(e.Invalid, ", "))
}

// MissingSpeakersError lists dialogue speakers that a custom map leaves out.
type MissingSpeakersError struct {
	Speakers []string
}

func (e *MissingSpeakersError) Error() string {
	return fmt.Sprintf("speaker map has no voice for: %s", strings.Join(e.Speakers, ", "))
}

// APIError is a non-200 response from the speech provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ElevenLabs API error (status %d): %s", e.StatusCode, e.Body)
}
