package app

import "fmt"

const loadingText = "Loading..."

// ResultLine renders the status line for the current state
func ResultLine(s State) string {
	if !s.HasOutcome() {
		return loadingText
	}
	if s.Outcome.OK() {
		return fmt.Sprintf("Ping: %s", s.Outcome.Text)
	}
	return fmt.Sprintf("Error: %s", s.Outcome.Description())
}
