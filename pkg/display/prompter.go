package display

import (
	"github.com/pterm/pterm"
)

// TerminalPrompter asks questions on the terminal with pterm
type TerminalPrompter struct{}

// Prompt shows message and returns the typed answer
func (TerminalPrompter) Prompt(message string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(message)
}
