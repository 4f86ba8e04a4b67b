package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/sipeed/dialoguecast/pkg/config"
	"github.com/sipeed/dialoguecast/pkg/conversation"
	"github.com/sipeed/dialoguecast/pkg/dialogue"
	"github.com/sipeed/dialoguecast/pkg/logger"
	"github.com/sipeed/dialoguecast/pkg/voice"
)

// ErrEmptyDialogue is returned when the input has no "Speaker: text" lines.
var ErrEmptyDialogue = errors.New("no dialogue lines found in input file")

// Options describes one conversion run.
type Options struct {
	InputPath string
	MapPath   string

	// Rand drives pause sampling; nil means randomly seeded.
	Rand *rand.Rand

	Stdout io.Writer
	Stderr io.Writer
}

// Run converts the dialogue file into a WAV file next to it and returns the
// output path. Nothing is synthesized unless the voice map checks out.
func Run(ctx context.Context, cfg *config.Config, provider voice.Provider, opts Options) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	logger.InfoCF("cli", "Starting conversion", map[string]any{
		"run_id": runID,
		"input":  opts.InputPath,
	})

	script, err := dialogue.ParseFile(opts.InputPath)
	if err != nil {
		return "", err
	}
	if script.Empty() {
		return "", fmt.Errorf("%w: %s", ErrEmptyDialogue, opts.InputPath)
	}

	var custom voice.Map
	if opts.MapPath != "" {
		if custom, err = voice.LoadMap(opts.MapPath); err != nil {
			return "", err
		}
	}

	catalog, err := provider.ListVoices(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch available voices: %w", err)
	}

	voices, err := voice.Resolve(custom, script.Speakers, catalog)
	if err != nil {
		var invalid *voice.InvalidVoicesError
		if errors.As(err, &invalid) {
			fmt.Fprintf(opts.Stdout, "Warning: The following voices in the custom map are not available: %s\n",
				strings.Join(invalid.Invalid, ", "))
			fmt.Fprintf(opts.Stdout, "Available voices: %s\n", strings.Join(invalid.Available, ", "))
		}
		return "", err
	}

	voice.FormatAssignments(opts.Stdout, voices, script.Speakers)

	pauses := conversation.NewPauseSampler(cfg.Pause.MeanMS, cfg.Pause.StdevMS, opts.Rand)
	assembler := conversation.NewAssembler(provider, catalog, pauses,
		conversation.WithProgress(conversation.NewLineProgress(opts.Stderr, "Generating audio")),
	)

	timeline, err := assembler.Assemble(ctx, script.Lines, voices)
	if err != nil {
		return "", err
	}

	output := conversation.OutputPath(opts.InputPath)
	if err := conversation.Export(output, timeline); err != nil {
		return "", err
	}

	logger.InfoCF("cli", "Conversion finished", map[string]any{
		"run_id":      runID,
		"output":      output,
		"lines":       len(script.Lines),
		"duration_ms": timeline.Duration().Milliseconds(),
	})

	fmt.Fprintf(opts.Stdout, "\nConversation audio generated and saved as '%s'\n", output)
	return output, nil
}
