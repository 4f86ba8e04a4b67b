package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"slices"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/sipeed/dialoguecast/pkg/logger"
)

const (
	wavPCMFormat = 1

	// encodeChunkFrames bounds the int buffer handed to the wav encoder.
	encodeChunkFrames = 8192
)

// Decode decodes an in-memory audio file. WAV data is recognised by its
// RIFF/WAVE header; anything else is treated as MP3.
func Decode(data []byte) (*Segment, error) {
	if isWAV(data) {
		return DecodeWAV(bytes.NewReader(data))
	}
	return DecodeMP3(bytes.NewReader(data))
}

func isWAV(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE"
}

// DecodeMP3 decodes a complete MP3 stream. The decoder always produces
// 16-bit little-endian stereo.
func DecodeMP3(r io.Reader) (*Segment, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open mp3 stream: %w", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mp3 stream: %w", err)
	}

	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}

	seg := &Segment{SampleRate: dec.SampleRate(), Channels: 2, Samples: samples}
	logger.DebugCF("audio", "Decoded mp3", map[string]any{
		"sample_rate": seg.SampleRate,
		"duration_ms": seg.Duration().Milliseconds(),
	})
	return seg, nil
}

// DecodeWAV decodes a complete PCM WAV file. 24 and 32-bit input is reduced
// to 16 bits.
func DecodeWAV(r io.ReadSeeker) (*Segment, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav data")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav data: %w", err)
	}

	shift := 0
	switch dec.BitDepth {
	case 16:
	case 24, 32:
		shift = int(dec.BitDepth) - BitDepth
	default:
		return nil, fmt.Errorf("unsupported wav bit depth %d", dec.BitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v >> shift)
	}

	return &Segment{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Samples:    samples,
	}, nil
}

// EncodeWAV writes seg as a 16-bit PCM WAV file.
func EncodeWAV(w io.WriteSeeker, seg *Segment) error {
	rate, channels := seg.SampleRate, seg.Channels
	if rate <= 0 || channels <= 0 {
		rate, channels = DefaultSampleRate, DefaultChannels
	}

	enc := wav.NewEncoder(w, rate, BitDepth, channels, wavPCMFormat)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, 0, encodeChunkFrames*channels),
		SourceBitDepth: BitDepth,
	}
	if len(seg.Samples) == 0 {
		// Header and an empty data chunk.
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("failed to write wav samples: %w", err)
		}
	}
	for chunk := range slices.Chunk(seg.Samples, encodeChunkFrames*channels) {
		buf.Data = buf.Data[:0]
		for _, v := range chunk {
			buf.Data = append(buf.Data, int(v))
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("failed to write wav samples: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav file: %w", err)
	}
	return nil
}

// WriteWAVFile writes seg to path, replacing any existing file.
func WriteWAVFile(path string, seg *Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := EncodeWAV(f, seg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadWAVFile decodes the WAV file at path.
func ReadWAVFile(path string) (*Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer f.Close()

	return DecodeWAV(f)
}
