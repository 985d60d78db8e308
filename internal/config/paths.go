package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// EnvConfigHome overrides the base directory for the default config file.
const EnvConfigHome = "XDG_CONFIG_HOME"

// DefaultPath returns $XDG_CONFIG_HOME/bain/config.toml, falling back to
// ~/.config/bain/config.toml.
func DefaultPath() (string, error) {
	if base := strings.TrimSpace(os.Getenv(EnvConfigHome)); base != "" {
		return filepath.Join(base, "bain", "config.toml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFailedFmt, err)
	}
	return filepath.Join(home, ".config", "bain", "config.toml"), nil
}

// ResolvePath expands a user-supplied path (including a leading ~), or
// returns DefaultPath when flagValue is blank.
func ResolvePath(flagValue string) (string, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return DefaultPath()
	}
	expanded, err := homedir.Expand(flagValue)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFailedFmt, flagValue, err)
	}
	return expanded, nil
}
