// Package prompt renders the blocking terminal prompts used by the installer
// host: the "may be BAIN" question, the package selection form and notes.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/bain-installer/internal/messages"
	"github.com/conn-castle/bain-installer/internal/terminal"
)

var (
	// ErrBack is returned when the user closes a prompt with Esc.
	ErrBack = errors.New("prompt closed")
	// ErrCancelled is returned when the user presses Ctrl+C.
	ErrCancelled = errors.New("prompt cancelled")
)

// IsAbort reports whether err means the user dismissed a prompt.
func IsAbort(err error) bool {
	return errors.Is(err, ErrBack) || errors.Is(err, ErrCancelled)
}

// UI is what the installer host needs from the terminal.
type UI interface {
	// Confirm asks a yes/no question; value holds the preselected answer.
	Confirm(title string, description string, value *bool) error
	// Packages runs the package selection form and fills in sel.
	Packages(sel *PackageSelection) error
	// Note shows an informational screen.
	Note(title string, body string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by the key filter while a form runs
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that requires an interactive terminal.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.PromptRequiresTerminal)
}

// questionKeyMap is used by single-field forms. Esc and Ctrl+C abort; the
// field Prev/Next bindings only carry the hints for those keys.
func questionKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	escBack := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	km.Confirm.Prev = escBack
	km.Note.Prev = escBack

	ctrlCCancel := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel"))
	km.Confirm.Next = ctrlCCancel
	km.Note.Next = ctrlCCancel
	return km
}

// hintField keeps the Prev/Next hint bindings visible in single-field forms,
// where huh's WithPosition would otherwise disable both.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

// Update delegates to the inner field and returns the wrapper so it stays in
// the group's field list.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition applies huh's positional state, then restores the hint bindings.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: questionKeyMap()}
}

// formFilter records Ctrl+C key presses and turns InterruptMsg into QuitMsg
// so bubbletea clears the form on the way out.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm runs form on stderr with km. Esc returns ErrBack; Ctrl+C returns ErrCancelled.
func (ui *HuhUI) runForm(form *huh.Form, km *huh.KeyMap) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	ui.ctrlCAbort = false
	form.WithKeyMap(km)
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return ErrCancelled
		}
		return ErrBack
	}
	return err
}

// Confirm renders a yes/no question.
func (ui *HuhUI) Confirm(title string, description string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewConfirm().
				Title(title).
				Description(description).
				Value(value)),
		),
	), questionKeyMap())
}

// Note renders an informational screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewNote().
				Title(title).
				Description(body)),
		),
	), questionKeyMap())
}

// Packages renders the package selection form.
func (ui *HuhUI) Packages(sel *PackageSelection) error {
	if sel == nil {
		return fmt.Errorf(messages.PromptSelectionRequired)
	}
	return ui.runForm(newPackageForm(sel), packageKeyMap())
}
