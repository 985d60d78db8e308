package bain

import (
	"fmt"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(title string, text string) (bool, error)
}

// ConfirmFunc adapts a function into a Confirmer.
type ConfirmFunc func(title string, text string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(title string, text string) (bool, error) {
	return f(title, text)
}

// confirmAmbiguous asks whether an archive with mixed option directories
// should be installed as BAIN. The answer is the verdict.
func (i *Installer) confirmAmbiguous() (bool, error) {
	if i.confirmer == nil {
		return false, fmt.Errorf(messages.BainConfirmerRequired)
	}
	ok, err := i.confirmer.Confirm(messages.BainMaybeTitle, messages.BainMaybeText)
	if err != nil {
		return false, fmt.Errorf(messages.BainConfirmFailedFmt, err)
	}
	i.log.Debugf("BAIN: user answered %t to ambiguous archive", ok)
	return ok, nil
}
