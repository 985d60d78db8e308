package bain

import (
	"fmt"

	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/installer"
	"github.com/conn-castle/bain-installer/internal/messages"
)

// Dialog is the package selection dialog. Exec blocks until the user accepts
// or rejects it; closing the dialog counts as a rejection.
type Dialog interface {
	Exec() (bool, error)
	// Name returns the mod name the user settled on.
	Name() string
	// ManualRequested reports whether the user rejected the dialog to install by hand.
	ManualRequested() bool
	// UpdateTree rewrites tree to contain only the selected packages.
	UpdateTree(tree *filetree.Dir) error
}

// DialogFactory builds a Dialog for tree, the current name guess and the manifest text.
type DialogFactory func(tree *filetree.Dir, name *installer.GuessedValue, packageTXT string) Dialog

// Install reads the optional manifest, runs the selection dialog and applies
// its outcome. The tree is only modified when the dialog is accepted, and the
// name only once the tree has been rewritten.
func (i *Installer) Install(name *installer.GuessedValue, tree *filetree.Dir) (installer.Result, error) {
	if tree == nil {
		return installer.ResultFailed, fmt.Errorf(messages.InstallerTreeRequired)
	}
	if name == nil {
		return installer.ResultFailed, fmt.Errorf(messages.InstallerNameRequired)
	}
	if i.newDialog == nil {
		return installer.ResultFailed, fmt.Errorf(messages.BainDialogRequired)
	}

	packageTXT, err := i.readManifest(tree)
	if err != nil {
		return installer.ResultFailed, err
	}

	dialog := i.newDialog(tree, name, packageTXT)
	accepted, err := dialog.Exec()
	if err != nil {
		return installer.ResultFailed, fmt.Errorf(messages.BainDialogFailedFmt, err)
	}

	if accepted {
		if err := dialog.UpdateTree(tree); err != nil {
			return installer.ResultFailed, fmt.Errorf(messages.BainUpdateTreeFailedFmt, err)
		}
		name.Update(dialog.Name(), installer.GuessUser)
		return installer.ResultSuccess, nil
	}
	if dialog.ManualRequested() {
		name.Update(dialog.Name(), installer.GuessUser)
		return installer.ResultManualRequested, nil
	}
	return installer.ResultCanceled, nil
}

// readManifest returns the text of package.txt at the tree root, or "" when there is none.
func (i *Installer) readManifest(tree *filetree.Dir) (string, error) {
	file, ok := tree.Find(ManifestName, filetree.KindFile).(*filetree.File)
	if !ok {
		return "", nil
	}
	if i.extractor == nil {
		return "", fmt.Errorf(messages.BainExtractorRequired)
	}
	text, err := i.extractor.ExtractText(file)
	if err != nil {
		return "", fmt.Errorf(messages.BainReadManifestFailedFmt, err)
	}
	i.log.Debugf("BAIN: read %s (%d bytes)", ManifestName, len(text))
	return text, nil
}
