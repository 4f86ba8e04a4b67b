package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sipeed/dialoguecast/internal/infra"
)

const EnvConfig = "DIALOGUECAST_CONFIG"

type RuntimePaths struct {
	HomeDir    string
	ConfigPath string
}

// ResolveRuntimePaths locates the config file: DIALOGUECAST_CONFIG wins,
// otherwise config.json inside the dialoguecast home directory.
func ResolveRuntimePaths() RuntimePaths {
	if configPath := infra.ExpandHome(strings.TrimSpace(os.Getenv(EnvConfig))); configPath != "" {
		return RuntimePaths{HomeDir: filepath.Dir(configPath), ConfigPath: configPath}
	}

	homeDir := infra.ResolveHomeDir()
	return RuntimePaths{HomeDir: homeDir, ConfigPath: filepath.Join(homeDir, "config.json")}
}
