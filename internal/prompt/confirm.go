package prompt

import (
	"fmt"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// UIConfirmer asks yes/no questions through a UI. Dismissing the prompt answers no.
type UIConfirmer struct {
	UI UI
	// Default is the pre-selected answer.
	Default bool
}

// Confirm shows title and text and returns the user's answer.
func (c UIConfirmer) Confirm(title string, text string) (bool, error) {
	if c.UI == nil {
		return false, fmt.Errorf(messages.PromptUIRequired)
	}
	answer := c.Default
	if err := c.UI.Confirm(title, text, &answer); err != nil {
		if IsAbort(err) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}

// FixedConfirmer answers every question with Answer without asking.
type FixedConfirmer struct {
	Answer bool
}

// Confirm returns c.Answer.
func (c FixedConfirmer) Confirm(string, string) (bool, error) {
	return c.Answer, nil
}
