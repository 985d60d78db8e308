package installer

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/logging"
	"github.com/conn-castle/bain-installer/internal/messages"
)

// Registry holds the installers known to the host.
type Registry struct {
	installers []Installer
	log        logrus.FieldLogger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(log logrus.FieldLogger) *Registry {
	return &Registry{log: logging.OrDiscard(log)}
}

// Register adds inst to the registry.
func (r *Registry) Register(inst Installer) {
	r.installers = append(r.installers, inst)
}

// Installers returns the registered installers by ascending priority.
// Installers with equal priority keep their registration order.
func (r *Registry) Installers() []Installer {
	out := make([]Installer, len(r.installers))
	copy(out, r.installers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() < out[j].Priority()
	})
	return out
}

// Install offers tree to each active automatic installer in priority order.
// The first installer that supports the archive and returns something other
// than ResultNotAttempted decides the outcome. When none applies the result is
// ResultNotAttempted and the returned installer is nil.
func (r *Registry) Install(name *GuessedValue, tree *filetree.Dir) (Result, Installer, error) {
	if tree == nil {
		return ResultFailed, nil, fmt.Errorf(messages.InstallerTreeRequired)
	}
	if name == nil {
		return ResultFailed, nil, fmt.Errorf(messages.InstallerNameRequired)
	}
	for _, inst := range r.Installers() {
		entry := r.log.WithField("installer", inst.Name())
		if !inst.IsActive() || inst.IsManualInstaller() {
			entry.Debug("skipping installer")
			continue
		}
		supported, err := inst.IsArchiveSupported(tree)
		if err != nil {
			return ResultFailed, inst, fmt.Errorf(messages.InstallerSupportCheckFailedFmt, inst.Name(), err)
		}
		if !supported {
			entry.Debug("archive not supported")
			continue
		}
		result, err := inst.Install(name, tree)
		if err != nil {
			return result, inst, fmt.Errorf(messages.InstallerInstallFailedFmt, inst.Name(), err)
		}
		entry.WithField("result", result.String()).Debug("installer finished")
		if result != ResultNotAttempted {
			return result, inst, nil
		}
	}
	return ResultNotAttempted, nil, nil
}
