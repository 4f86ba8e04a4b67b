package status

import (
	"fmt"
	"io"
	"os"

	"github.com/sipeed/dialoguecast/cmd/dialoguecast/internal"
)

func statusCmd(w io.Writer, configOverride string) error {
	cfg, err := internal.LoadConfig(configOverride)
	if err != nil {
		return err
	}

	configPath := configOverride
	if configPath == "" {
		configPath = internal.GetConfigPath()
	}

	fmt.Fprintln(w, "dialoguecast Status")
	fmt.Fprintf(w, "Version: %s\n", internal.FormatVersion())
	if build, _ := internal.FormatBuildInfo(); build != "" {
		fmt.Fprintf(w, "Build: %s\n", build)
	}
	fmt.Fprintln(w)

	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintln(w, "Config:", configPath, "✓")
	} else {
		fmt.Fprintln(w, "Config:", configPath, "✗ (using defaults)")
	}

	if cfg.ElevenLabs.APIKey != "" {
		fmt.Fprintln(w, "ElevenLabs API key: ✓")
	} else {
		fmt.Fprintln(w, "ElevenLabs API key: not set (export ELEVEN_API_KEY)")
	}
	fmt.Fprintf(w, "API base: %s\n", cfg.ElevenLabs.APIBase)
	fmt.Fprintf(w, "Model: %s\n", cfg.ElevenLabs.Model)
	fmt.Fprintf(w, "Output format: %s\n", cfg.ElevenLabs.OutputFormat)
	fmt.Fprintf(w, "Pause: mean %dms, stdev %dms\n", cfg.Pause.MeanMS, cfg.Pause.StdevMS)
	return nil
}
