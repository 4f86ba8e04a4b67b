package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvAPIKey holds the ElevenLabs credential.
const EnvAPIKey = "ELEVEN_API_KEY"

// ErrMissingAPIKey is returned by Validate when no credential is configured.
var ErrMissingAPIKey = fmt.Errorf("missing ElevenLabs API key: set the %s environment variable", EnvAPIKey)

type ElevenLabsConfig struct {
	APIKey       string `json:"api_key,omitempty" env:"ELEVEN_API_KEY"`
	APIBase      string `json:"api_base" env:"ELEVEN_API_BASE"`
	Model        string `json:"model" env:"ELEVEN_MODEL"`
	OutputFormat string `json:"output_format" env:"ELEVEN_OUTPUT_FORMAT"`
}

// PauseConfig sets the normal distribution pauses between lines are drawn from.
type PauseConfig struct {
	MeanMS  int `json:"mean_ms" env:"DIALOGUECAST_PAUSE_MEAN_MS"`
	StdevMS int `json:"stdev_ms" env:"DIALOGUECAST_PAUSE_STDEV_MS"`
}

type LogConfig struct {
	Level string `json:"level" env:"DIALOGUECAST_LOG_LEVEL"`
	File  string `json:"file,omitempty" env:"DIALOGUECAST_LOG_FILE"`
}

type Config struct {
	ElevenLabs ElevenLabsConfig `json:"elevenlabs"`
	Pause      PauseConfig      `json:"pause"`
	Log        LogConfig        `json:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		ElevenLabs: ElevenLabsConfig{
			APIBase:      "https://api.elevenlabs.io",
			Model:        "eleven_multilingual_v2",
			OutputFormat: "mp3_44100_128",
		},
		Pause: PauseConfig{
			MeanMS:  500,
			StdevMS: 100,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig starts from the defaults, applies the JSON file at path when it
// exists and finally the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// Validate checks the preconditions for a run.
func (c *Config) Validate() error {
	if c.ElevenLabs.APIKey == "" {
		return ErrMissingAPIKey
	}
	// Lines are decoded as MP3; pcm, ulaw and opus responses are not.
	if f := c.ElevenLabs.OutputFormat; f != "" && !strings.HasPrefix(f, "mp3_") {
		return fmt.Errorf("unsupported output format %q: only mp3_* formats can be decoded", f)
	}
	if c.Pause.StdevMS < 0 {
		return fmt.Errorf("pause standard deviation must not be negative, got %d", c.Pause.StdevMS)
	}
	return nil
}
