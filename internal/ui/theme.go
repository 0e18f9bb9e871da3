package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the colors used across the UI.
type Theme struct {
	SelectedFG color.Color // selected row foreground
	SelectedBG color.Color // selected row background
	SummaryFG  color.Color // value summaries next to row labels
	LineNumFG  color.Color // preview line numbers
	BorderFG   color.Color // pane borders
	TitleFG    color.Color // pane titles
	StatusFG   color.Color // status bar text
	ErrorFG    color.Color // error text
	DirtyFG    color.Color // unsaved changes marker
	PromptFG   color.Color // dialog prompts
}

// DefaultTheme returns the stock dark palette.
func DefaultTheme() Theme {
	return Theme{
		SelectedFG: lipgloss.Color("230"),
		SelectedBG: lipgloss.Color("62"),
		SummaryFG:  lipgloss.Color("243"),
		LineNumFG:  lipgloss.Color("6"),
		BorderFG:   lipgloss.Color("240"),
		TitleFG:    lipgloss.Color("211"),
		StatusFG:   lipgloss.Color("250"),
		ErrorFG:    lipgloss.Color("1"),
		DirtyFG:    lipgloss.Color("3"),
		PromptFG:   lipgloss.Color("4"),
	}
}
