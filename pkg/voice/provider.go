package voice

import (
	"context"
	"io"
)

// Voice is one entry of a provider's voice catalog.
type Voice struct {
	ID       string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Provider is a text-to-speech backend.
type Provider interface {
	// ListVoices returns the provider's voice catalog.
	ListVoices(ctx context.Context) (Catalog, error)

	// Synthesize returns the encoded audio for text spoken by voice.
	// The caller must close the returned stream.
	Synthesize(ctx context.Context, text string, voice Voice) (io.ReadCloser, error)
}

// Catalog is the ordered list of voices offered by a provider.
type Catalog []Voice

// Names returns the voice names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, v := range c {
		names[i] = v.Name
	}
	return names
}

// Len returns the number of voices.
func (c Catalog) Len() int {
	return len(c)
}

// Lookup finds a voice by name, falling back to its ID.
func (c Catalog) Lookup(nameOrID string) (Voice, bool) {
	for _, v := range c {
		if v.Name == nameOrID {
			return v, true
		}
	}
	for _, v := range c {
		if v.ID == nameOrID {
			return v, true
		}
	}
	return Voice{}, false
}

// Contains reports whether nameOrID names a voice in the catalog.
func (c Catalog) Contains(nameOrID string) bool {
	_, ok := c.Lookup(nameOrID)
	return ok
}
