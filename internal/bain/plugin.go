// Package bain implements the installer for BAIN archives: packages with two or
// more top-level option directories, each a self-contained copy of the game's
// data directory, from which the user picks what to install.
package bain

import (
	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"

	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/installer"
	"github.com/conn-castle/bain-installer/internal/logging"
)

const (
	// PluginName is the name reported to the host registry.
	PluginName = "BAIN Installer"
	// PluginAuthor is the plugin author.
	PluginAuthor = "Tannin"
	// PluginDescription describes the plugin in the host's plugin list.
	PluginDescription = "Installer for BAIN archives (originally targeting Wrye Bash)"
	// PluginPriority places BAIN after the more specific installers.
	PluginPriority = 40
	// ManifestName is the optional package description at the archive root.
	ManifestName = "package.txt"
)

var pluginVersion = semver.MustParse("1.1.0")

// Options wires the collaborators the installer calls into.
type Options struct {
	// Confirmer answers the "may be BAIN" question for ambiguous archives.
	Confirmer Confirmer
	// NewDialog builds the package selection dialog.
	NewDialog DialogFactory
	// Extractor reads the manifest text.
	Extractor filetree.Extractor
	// Log receives debug output; nil discards it.
	Log logrus.FieldLogger
}

// Installer is the BAIN installer plugin.
type Installer struct {
	confirmer Confirmer
	newDialog DialogFactory
	extractor filetree.Extractor
	log       logrus.FieldLogger
}

var _ installer.Installer = (*Installer)(nil)

// New returns a BAIN installer using opts.
func New(opts Options) *Installer {
	return &Installer{
		confirmer: opts.Confirmer,
		newDialog: opts.NewDialog,
		extractor: opts.Extractor,
		log:       logging.OrDiscard(opts.Log),
	}
}

// Name returns PluginName.
func (i *Installer) Name() string { return PluginName }

// Author returns PluginAuthor.
func (i *Installer) Author() string { return PluginAuthor }

// Description returns PluginDescription.
func (i *Installer) Description() string { return PluginDescription }

// Version returns the plugin version.
func (i *Installer) Version() *semver.Version { return pluginVersion }

// IsActive always reports true.
func (i *Installer) IsActive() bool { return true }

// Settings returns no settings.
func (i *Installer) Settings() []installer.Setting { return []installer.Setting{} }

// Priority returns PluginPriority.
func (i *Installer) Priority() int { return PluginPriority }

// IsManualInstaller reports false: BAIN is offered automatically.
func (i *Installer) IsManualInstaller() bool { return false }
