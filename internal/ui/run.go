package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/jex/pkg/core"
)

// RunModel starts the Bubble Tea TUI over an already built controller.
// Width/height of 0 auto-detect the terminal size (falling back to 80x24).
// Extra ProgramOptions (e.g. custom IO for tests) mirror tea.NewProgram.
func RunModel(ctrl *core.Controller, docPath string, noColor bool, mode KeyMode, width, height int, opts ...tea.ProgramOption) error {
	m := NewModel(ctrl, docPath, noColor, mode)

	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			if width <= 0 {
				width = w
			}
			if height <= 0 {
				height = h
			}
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	m.winWidth = width
	m.winHeight = height
	opts = append(opts, tea.WithWindowSize(width, height))

	prog := tea.NewProgram(&m, opts...)
	_, err := prog.Run()
	return err
}
