package conversation

import (
	"path/filepath"
	"strings"

	"github.com/sipeed/dialoguecast/pkg/audio"
	"github.com/sipeed/dialoguecast/pkg/logger"
)

const outputSuffix = "_output.wav"

// OutputPath derives the export path from the dialogue file path by
// replacing its last extension: "a.b.txt" becomes "a.b_output.wav".
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix
}

// Export writes the timeline to path as WAV, replacing any existing file.
func Export(path string, timeline *audio.Segment) error {
	if err := audio.WriteWAVFile(path, timeline); err != nil {
		return err
	}

	logger.InfoCF("conversation", "Conversation exported", map[string]any{
		"path":        path,
		"duration_ms": timeline.Duration().Milliseconds(),
	})
	return nil
}
