// Package selector is the terminal package-selection dialog the bain CLI hands
// to the BAIN installer. It lets the user name the mod, tick option
// directories and choose between installing, installing by hand, or cancelling.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/bain-installer/internal/bain"
	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/installer"
	"github.com/conn-castle/bain-installer/internal/messages"
	"github.com/conn-castle/bain-installer/internal/prompt"
)

// defaultOptionPrefix marks option directories that start checked ("00 Core").
const defaultOptionPrefix = "00"

// Dialog implements bain.Dialog on top of a prompt.UI.
type Dialog struct {
	ui       prompt.UI
	fallback string
	sel      prompt.PackageSelection
	manual   bool
}

var _ bain.Dialog = (*Dialog)(nil)

// Factory returns a bain.DialogFactory that renders dialogs through ui.
func Factory(ui prompt.UI) bain.DialogFactory {
	return func(tree *filetree.Dir, name *installer.GuessedValue, packageTXT string) bain.Dialog {
		return NewDialog(ui, tree, name, packageTXT)
	}
}

// NewDialog prepares a dialog listing the option directories of tree.
func NewDialog(ui prompt.UI, tree *filetree.Dir, name *installer.GuessedValue, packageTXT string) *Dialog {
	d := &Dialog{
		ui: ui,
		sel: prompt.PackageSelection{
			Manifest: strings.TrimSpace(packageTXT),
			Options:  OptionDirectories(tree),
			Action:   prompt.ActionInstall,
		},
	}
	if name != nil {
		d.sel.Name = name.Value()
		d.fallback = name.Value()
	}
	for _, option := range d.sel.Options {
		if strings.HasPrefix(option, defaultOptionPrefix) {
			d.sel.Selected = append(d.sel.Selected, option)
		}
	}
	return d
}

// OptionDirectories lists the selectable top-level directories of tree in tree order.
func OptionDirectories(tree *filetree.Dir) []string {
	var out []string
	if tree == nil {
		return out
	}
	for _, entry := range tree.Entries() {
		if entry.IsDir() && !bain.IsIgnoredOptionDirectory(entry.Name()) {
			out = append(out, entry.Name())
		}
	}
	return out
}

// Exec shows the selection form until the user picks an action. Closing the
// form rejects the dialog; installing with nothing ticked shows a note and
// reopens the form.
func (d *Dialog) Exec() (bool, error) {
	if d.ui == nil {
		return false, fmt.Errorf(messages.PromptUIRequired)
	}
	d.manual = false

	for {
		if err := d.ui.Packages(&d.sel); err != nil {
			if prompt.IsAbort(err) {
				return false, nil
			}
			return false, err
		}
		if errors.Is(d.sel.Validate(), prompt.ErrNothingSelected) {
			if err := d.ui.Note(messages.SelectorNoSelectionTitle, messages.SelectorNoSelectionBody); err != nil && !prompt.IsAbort(err) {
				return false, err
			}
			continue
		}

		switch d.sel.Action {
		case prompt.ActionInstall:
			return true, nil
		case prompt.ActionManual:
			d.manual = true
			return false, nil
		case prompt.ActionCancel:
			return false, nil
		default:
			return false, fmt.Errorf(messages.SelectorUnknownActionFmt, d.sel.Action)
		}
	}
}

// Name returns the entered mod name, or the original guess when left blank.
func (d *Dialog) Name() string {
	if name := strings.TrimSpace(d.sel.Name); name != "" {
		return name
	}
	return d.fallback
}

// ManualRequested reports whether the user chose to install by hand.
func (d *Dialog) ManualRequested() bool {
	return d.manual
}

// Options returns the selectable option directories.
func (d *Dialog) Options() []string {
	out := make([]string, len(d.sel.Options))
	copy(out, d.sel.Options)
	return out
}

// Selected returns the ticked option directories in listing order.
func (d *Dialog) Selected() []string {
	return d.sel.Checked()
}

// UpdateTree replaces the contents of tree with the merged contents of the
// selected option directories. Later options overwrite files from earlier ones.
func (d *Dialog) UpdateTree(tree *filetree.Dir) error {
	return MergeOptions(tree, d.Selected())
}

// MergeOptions rewrites tree so that it holds the union of the named option
// directories, applied in order.
func MergeOptions(tree *filetree.Dir, options []string) error {
	if tree == nil {
		return fmt.Errorf(messages.InstallerTreeRequired)
	}
	dirs := make([]*filetree.Dir, 0, len(options))
	for _, option := range options {
		dir, ok := tree.Find(option, filetree.KindDir).(*filetree.Dir)
		if !ok || dir.Parent() != tree {
			return fmt.Errorf(messages.SelectorMissingOptionFmt, option)
		}
		dirs = append(dirs, dir)
	}
	merged := filetree.NewRoot()
	for _, dir := range dirs {
		if _, err := merged.Merge(dir); err != nil {
			return fmt.Errorf(messages.SelectorMergeFailedFmt, dir.Name(), err)
		}
	}
	tree.Clear()
	if _, err := tree.Merge(merged); err != nil {
		return fmt.Errorf(messages.SelectorMergeFailedFmt, "", err)
	}
	return nil
}
