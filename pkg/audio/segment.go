// Package audio holds decoded PCM audio and converts it from and to the
// container formats used by the pipeline: MP3 coming back from the speech
// provider and WAV for the exported conversation.
package audio

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultSampleRate is used for timelines that never received audio.
	DefaultSampleRate = 44100
	// DefaultChannels is used for timelines that never received audio.
	DefaultChannels = 2
	// BitDepth of every Segment sample.
	BitDepth = 16
)

// ErrFormatMismatch is returned when segments with different sample rates or
// channel counts are joined.
var ErrFormatMismatch = errors.New("audio format mismatch")

// Segment is interleaved 16-bit PCM audio. A Segment only ever grows.
type Segment struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// NewSegment returns an empty segment with the given format.
func NewSegment(sampleRate, channels int) *Segment {
	return &Segment{SampleRate: sampleRate, Channels: channels, Samples: []int16{}}
}

// Silence returns a segment of d worth of zero samples.
func Silence(d time.Duration, sampleRate, channels int) *Segment {
	s := NewSegment(sampleRate, channels)
	s.AppendSilence(d)
	return s
}

// Frames returns the number of sample frames (one sample per channel).
func (s *Segment) Frames() int {
	if s.Channels <= 0 {
		return 0
	}
	return len(s.Samples) / s.Channels
}

// Duration returns the playback length of the segment.
func (s *Segment) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(s.Frames()) * int64(time.Second) / int64(s.SampleRate))
}

// Empty reports whether the segment holds no samples.
func (s *Segment) Empty() bool {
	return len(s.Samples) == 0
}

// Append adds other to the end of s. An empty s takes over other's format.
func (s *Segment) Append(other *Segment) error {
	if other == nil || other.Empty() {
		return nil
	}
	if s.Empty() {
		s.SampleRate = other.SampleRate
		s.Channels = other.Channels
	}
	if s.SampleRate != other.SampleRate || s.Channels != other.Channels {
		return fmt.Errorf("%w: have %d Hz/%d ch, got %d Hz/%d ch",
			ErrFormatMismatch, s.SampleRate, s.Channels, other.SampleRate, other.Channels)
	}
	s.Samples = append(s.Samples, other.Samples...)
	return nil
}

// AppendSilence adds d worth of silence, truncated to whole frames.
// Non-positive durations are ignored.
func (s *Segment) AppendSilence(d time.Duration) {
	if d <= 0 || s.SampleRate <= 0 || s.Channels <= 0 {
		return
	}
	frames := int(int64(d) * int64(s.SampleRate) / int64(time.Second))
	s.Samples = append(s.Samples, make([]int16, frames*s.Channels)...)
}
