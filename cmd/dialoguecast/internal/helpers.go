package internal

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sipeed/dialoguecast/pkg/config"
	"github.com/sipeed/dialoguecast/pkg/logger"
	"github.com/sipeed/dialoguecast/pkg/voice"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

// GetConfigPath returns the config file used when --config is not given.
func GetConfigPath() string {
	return config.ResolveRuntimePaths().ConfigPath
}

// LoadConfig loads the config from override, or from the default location
// when override is empty.
func LoadConfig(override string) (*config.Config, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = GetConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// SetupLogging applies the configured log level and optional log file.
// debug forces the DEBUG level.
func SetupLogging(cfg *config.Config, debug bool) error {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if debug {
		level = logger.DEBUG
	}
	logger.SetLevel(level)

	if cfg.Log.File != "" {
		if err := logger.EnableFileLogging(cfg.Log.File); err != nil {
			return err
		}
	}
	return nil
}

// NewProvider builds the ElevenLabs provider from cfg.
func NewProvider(cfg *config.Config) *voice.ElevenLabsProvider {
	return voice.NewElevenLabsProvider(voice.ElevenLabsOptions{
		APIKey:       cfg.ElevenLabs.APIKey,
		APIBase:      cfg.ElevenLabs.APIBase,
		Model:        cfg.ElevenLabs.Model,
		OutputFormat: cfg.ElevenLabs.OutputFormat,
	})
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}
