// Package conversation turns parsed dialogue into one continuous audio
// timeline and writes it out.
package conversation

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/sipeed/dialoguecast/pkg/audio"
	"github.com/sipeed/dialoguecast/pkg/dialogue"
	"github.com/sipeed/dialoguecast/pkg/logger"
	"github.com/sipeed/dialoguecast/pkg/voice"
)

// DecodeFunc decodes one synthesized line held fully in memory.
type DecodeFunc func(data []byte) (*audio.Segment, error)

// Assembler synthesizes dialogue lines one at a time and splices them
// together with sampled pauses.
type Assembler struct {
	provider voice.Provider
	catalog  voice.Catalog
	pauses   *PauseSampler
	progress Progress
	decode   DecodeFunc
}

// Option customizes an Assembler.
type Option func(*Assembler)

// WithProgress reports per-line progress to p.
func WithProgress(p Progress) Option {
	return func(a *Assembler) {
		if p != nil {
			a.progress = p
		}
	}
}

// WithDecoder replaces the default audio decoder.
func WithDecoder(decode DecodeFunc) Option {
	return func(a *Assembler) {
		if decode != nil {
			a.decode = decode
		}
	}
}

// NewAssembler creates an Assembler that resolves voices against catalog.
func NewAssembler(provider voice.Provider, catalog voice.Catalog, pauses *PauseSampler, opts ...Option) *Assembler {
	a := &Assembler{
		provider: provider,
		catalog:  catalog,
		pauses:   pauses,
		progress: nopProgress{},
		decode:   audio.Decode,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble synthesizes every line in order and returns the joined timeline.
// A pause is inserted between consecutive lines. Every speaker must have a
// voice in voices that exists in the catalog; this is checked before the
// first synthesis call.
func (a *Assembler) Assemble(ctx context.Context, lines []dialogue.Line, voices voice.Map) (*audio.Segment, error) {
	resolved, err := a.resolveVoices(lines, voices)
	if err != nil {
		return nil, err
	}

	timeline := audio.NewSegment(audio.DefaultSampleRate, audio.DefaultChannels)

	a.progress.Start(len(lines))
	defer a.progress.Finish()

	for i, line := range lines {
		seg, err := a.synthesizeLine(ctx, line, resolved[line.Speaker])
		if err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", i+1, line.Speaker, err)
		}

		if i > 0 {
			pause := a.pauses.Sample()
			timeline.AppendSilence(pause)
			logger.DebugCF("conversation", "Inserted pause", map[string]any{
				"line":     i + 1,
				"pause_ms": pause.Milliseconds(),
			})
		}
		if err := timeline.Append(seg); err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", i+1, line.Speaker, err)
		}

		a.progress.Step(i+1, line)
	}

	logger.InfoCF("conversation", "Conversation assembled", map[string]any{
		"lines":       len(lines),
		"duration_ms": timeline.Duration().Milliseconds(),
	})

	return timeline, nil
}

func (a *Assembler) resolveVoices(lines []dialogue.Line, voices voice.Map) (map[string]voice.Voice, error) {
	resolved := make(map[string]voice.Voice)
	var missing, invalid []string
	seenInvalid := make(map[string]bool)

	for _, line := range lines {
		if _, done := resolved[line.Speaker]; done {
			continue
		}
		name, ok := voices[line.Speaker]
		if !ok {
			if !slices.Contains(missing, line.Speaker) {
				missing = append(missing, line.Speaker)
			}
			continue
		}
		v, ok := a.catalog.Lookup(name)
		if !ok {
			if !seenInvalid[name] {
				seenInvalid[name] = true
				invalid = append(invalid, name)
			}
			continue
		}
		resolved[line.Speaker] = v
	}

	if len(missing) > 0 {
		return nil, &voice.MissingSpeakersError{Speakers: missing}
	}
	if len(invalid) > 0 {
		return nil, &voice.InvalidVoicesError{Invalid: invalid, Available: a.catalog.Names()}
	}
	return resolved, nil
}

// synthesizeLine fetches the whole encoded stream before decoding it, since
// the decoder needs the complete buffer.
func (a *Assembler) synthesizeLine(ctx context.Context, line dialogue.Line, v voice.Voice) (*audio.Segment, error) {
	start := time.Now()

	stream, err := a.provider.Synthesize(ctx, line.Text, v)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(stream)
	stream.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}

	seg, err := a.decode(data)
	if err != nil {
		return nil, err
	}

	logger.DebugCF("conversation", "Line synthesized", map[string]any{
		"speaker":     line.Speaker,
		"voice":       v.Name,
		"bytes":       len(data),
		"duration_ms": seg.Duration().Milliseconds(),
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})
	return seg, nil
}
