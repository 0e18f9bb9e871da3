// Package ui renders the editor with Bubble Tea: a tree pane, an optional
// preview pane, a status bar, and modal dialogs. All editor semantics live
// in the controller; this package only translates keys into intents and
// frames into cells.
package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/jex/pkg/core"
)

// Model is the Bubble Tea model wrapping the application controller.
type Model struct {
	ctrl    *core.Controller
	input   textinput.Model
	theme   Theme
	keyMode KeyMode
	docPath string

	winWidth  int
	winHeight int
	noColor   bool
}

// NewModel builds the UI model. docPath is shown in the status bar; mode
// selects the browse key table.
func NewModel(ctrl *core.Controller, docPath string, noColor bool, mode KeyMode) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	return Model{
		ctrl:    ctrl,
		input:   input,
		theme:   DefaultTheme(),
		keyMode: mode,
		docPath: docPath,
		noColor: noColor,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winWidth = msg.Width
		m.winHeight = msg.Height
		m.input.SetWidth(max(10, msg.Width-4))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	frame := m.ctrl.Frame()

	// A dialog is modal: it sees every key first.
	if frame.Confirm != core.ConfirmNone {
		if intent := ConfirmIntent(key); intent != core.IntentNone {
			m.ctrl.Apply(intent)
		}
		return m.finish()
	}

	// Edit mode: enter commits, esc cancels, everything else types.
	if frame.Session != core.SessionIdle {
		switch key {
		case "enter":
			m.ctrl.Apply(core.IntentCommitEdit)
			if m.ctrl.Frame().Session == core.SessionIdle {
				m.input.Blur()
			}
			return m.finish()
		case "esc":
			m.ctrl.Apply(core.IntentCancelEdit)
			m.input.Blur()
			return m.finish()
		case "ctrl+c":
			m.ctrl.Apply(core.IntentCancelEdit)
			m.ctrl.Apply(core.IntentQuit)
			return m.finish()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetDraft(m.input.Value())
		return m, cmd
	}

	intent := BrowseIntent(m.keyMode, key)
	if intent == core.IntentNone {
		return m, nil
	}
	m.ctrl.Apply(intent)

	// Entering an edit seeds the input with the controller's draft.
	if after := m.ctrl.Frame(); after.Session != core.SessionIdle {
		m.input.SetValue(after.Draft)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m.finish()
}

// finish checks whether the controller decided to exit.
func (m *Model) finish() (tea.Model, tea.Cmd) {
	if m.ctrl.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}
