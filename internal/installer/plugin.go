package installer

import (
	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/bain-installer/internal/filetree"
)

// Setting describes one user-configurable plugin option.
type Setting struct {
	Key         string
	Description string
	Default     any
}

// Plugin is the identity every plugin exposes to the host registry.
type Plugin interface {
	Name() string
	Author() string
	Description() string
	Version() *semver.Version
	IsActive() bool
	Settings() []Setting
}

// Installer is a plugin that can turn an extracted archive into an installable tree.
// Both methods run on the caller's goroutine and may block on user input.
type Installer interface {
	Plugin
	// Priority orders competing installers; lower values are tried first.
	Priority() int
	// IsManualInstaller reports whether the installer only runs on explicit request.
	IsManualInstaller() bool
	// IsArchiveSupported inspects tree without modifying it.
	IsArchiveSupported(tree *filetree.Dir) (bool, error)
	// Install may rewrite tree and refine name.
	Install(name *GuessedValue, tree *filetree.Dir) (Result, error)
}
