package prompt

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// Action is the last choice of the package selection form.
type Action string

// Actions offered by the package selection form.
const (
	ActionInstall Action = "Install"
	ActionManual  Action = "Install manually"
	ActionCancel  Action = "Cancel"
)

// Actions lists the actions in display order.
func Actions() []Action {
	return []Action{ActionInstall, ActionManual, ActionCancel}
}

// ErrNothingSelected is returned by PackageSelection.Validate when the user
// chose to install without ticking an option.
var ErrNothingSelected = errors.New(messages.SelectorNoSelectionBody)

// PackageSelection is the state edited by the package selection form.
type PackageSelection struct {
	// Manifest is the package.txt text shown above the option list.
	Manifest string
	// Options are the selectable option directories in display order.
	Options []string
	Name    string
	// Selected holds the ticked options; entries present before the form runs start checked.
	Selected []string
	Action   Action
}

// Checked returns the ticked options that are in Options, in display order.
func (s *PackageSelection) Checked() []string {
	ticked := make(map[string]bool, len(s.Selected))
	for _, name := range s.Selected {
		ticked[name] = true
	}
	var out []string
	for _, option := range s.Options {
		if ticked[option] {
			out = append(out, option)
		}
	}
	return out
}

// Validate rejects installing with nothing ticked.
func (s *PackageSelection) Validate() error {
	return s.validateAction(s.Action)
}

func (s *PackageSelection) validateAction(action Action) error {
	if action == ActionInstall && len(s.Checked()) == 0 {
		return ErrNothingSelected
	}
	return nil
}

// packageKeyMap lets shift+tab walk back through the form's fields while
// Esc and Ctrl+C close it.
func packageKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "close"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// newPackageForm puts the mod name, the option list and the action in one
// group, bound to sel. An empty Action defaults to ActionInstall.
func newPackageForm(sel *PackageSelection) *huh.Form {
	if sel.Action == "" {
		sel.Action = ActionInstall
	}

	checked := make(map[string]bool, len(sel.Selected))
	for _, name := range sel.Selected {
		checked[name] = true
	}
	options := make([]huh.Option[string], len(sel.Options))
	for i, name := range sel.Options {
		options[i] = huh.NewOption(name, name).Selected(checked[name])
	}
	optionField := huh.NewMultiSelect[string]().
		Title(messages.SelectorOptionsTitle).
		Filterable(false).
		Options(options...).
		Value(&sel.Selected)
	if sel.Manifest != "" {
		optionField.Description(sel.Manifest)
	}

	actions := make([]huh.Option[Action], 0, len(Actions()))
	for _, action := range Actions() {
		actions = append(actions, huh.NewOption(string(action), action))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(messages.SelectorNameTitle).
				Value(&sel.Name),
			optionField,
			huh.NewSelect[Action]().
				Title(messages.SelectorActionTitle).
				Options(actions...).
				Value(&sel.Action).
				Validate(sel.validateAction),
		),
	)
}
