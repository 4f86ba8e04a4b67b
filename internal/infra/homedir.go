package infra

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvHome overrides the dialoguecast home directory.
const EnvHome = "DIALOGUECAST_HOME"

// ResolveHomeDir returns the effective home directory for dialoguecast.
// It checks DIALOGUECAST_HOME first and falls back to ~/.dialoguecast.
func ResolveHomeDir() string {
	if envHome := strings.TrimSpace(os.Getenv(EnvHome)); envHome != "" {
		return ExpandHome(envHome)
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return filepath.Join(os.TempDir(), ".dialoguecast")
	}
	return filepath.Join(home, ".dialoguecast")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
