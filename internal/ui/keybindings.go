package ui

import (
	"fmt"

	"github.com/oakwood-commons/jex/pkg/core"
)

// KeyMode represents the keybinding mode for the UI.
type KeyMode string

const (
	// KeyModeVim enables vim-style keybindings (j/k/h/l navigation).
	KeyModeVim KeyMode = "vim"
)

// DefaultKeyMode is the default keybinding mode.
const DefaultKeyMode = KeyModeVim

// ParseKeyMode validates a configured key mode name. Empty selects the
// default.
func ParseKeyMode(name string) (KeyMode, error) {
	switch KeyMode(name) {
	case "":
		return DefaultKeyMode, nil
	case KeyModeVim:
		return KeyModeVim, nil
	}
	return "", fmt.Errorf("unknown key mode %q", name)
}

// browseKeymap selects the browse key table for mode.
func browseKeymap(mode KeyMode) map[string]core.Intent {
	switch mode {
	case KeyModeVim:
		return vimBrowseKeys
	}
	return vimBrowseKeys
}

// vimBrowseKeys maps key presses to intents while no dialog or edit is
// active. Keys are bubbletea key strings as returned by msg.String().
var vimBrowseKeys = map[string]core.Intent{
	"k":    core.IntentMoveUp,
	"up":   core.IntentMoveUp,
	"j":    core.IntentMoveDown,
	"down": core.IntentMoveDown,

	"ctrl+u": core.IntentMoveUpFast,
	"ctrl+d": core.IntentMoveDownFast,
	"g":      core.IntentMoveTop,
	"G":      core.IntentMoveBottom,

	"l":     core.IntentExpandOrDescend,
	"enter": core.IntentExpandOrDescend,
	"space": core.IntentExpandOrDescend,
	"h":     core.IntentCollapseOrAscend,

	"p": core.IntentTogglePreview,
	"K": core.IntentScrollPreviewUp,
	"J": core.IntentScrollPreviewDown,
	"H": core.IntentScrollPreviewLeft,
	"L": core.IntentScrollPreviewRight,

	"ctrl+right": core.IntentGrowPreview,
	"ctrl+left":  core.IntentShrinkPreview,

	"e": core.IntentBeginEditValue,
	"r": core.IntentBeginRenameKey,
	"d": core.IntentDeleteCurrent,

	"w":      core.IntentSave,
	"q":      core.IntentQuit,
	"ctrl+c": core.IntentQuit,
}

// confirmKeys maps key presses to intents while a yes/no dialog is open.
var confirmKeys = map[string]core.Intent{
	"y":     core.IntentConfirmAccept,
	"enter": core.IntentConfirmAccept,
	"n":     core.IntentConfirmDismiss,
	"esc":   core.IntentConfirmDismiss,
	"q":     core.IntentConfirmDismiss,
}

// BrowseIntent resolves a key press against the browse table for mode.
func BrowseIntent(mode KeyMode, key string) core.Intent {
	if intent, ok := browseKeymap(mode)[key]; ok {
		return intent
	}
	return core.IntentNone
}

// ConfirmIntent resolves a key press while a dialog is open.
func ConfirmIntent(key string) core.Intent {
	if intent, ok := confirmKeys[key]; ok {
		return intent
	}
	return core.IntentNone
}
