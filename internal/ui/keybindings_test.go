package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakwood-commons/jex/pkg/core"
)

func TestBrowseIntent(t *testing.T) {
	tests := []struct {
		key  string
		want core.Intent
	}{
		{"j", core.IntentMoveDown},
		{"down", core.IntentMoveDown},
		{"k", core.IntentMoveUp},
		{"ctrl+u", core.IntentMoveUpFast},
		{"ctrl+d", core.IntentMoveDownFast},
		{"g", core.IntentMoveTop},
		{"G", core.IntentMoveBottom},
		{"l", core.IntentExpandOrDescend},
		{"enter", core.IntentExpandOrDescend},
		{"space", core.IntentExpandOrDescend},
		{"h", core.IntentCollapseOrAscend},
		{"p", core.IntentTogglePreview},
		{"K", core.IntentScrollPreviewUp},
		{"J", core.IntentScrollPreviewDown},
		{"H", core.IntentScrollPreviewLeft},
		{"L", core.IntentScrollPreviewRight},
		{"ctrl+right", core.IntentGrowPreview},
		{"ctrl+left", core.IntentShrinkPreview},
		{"e", core.IntentBeginEditValue},
		{"r", core.IntentBeginRenameKey},
		{"d", core.IntentDeleteCurrent},
		{"w", core.IntentSave},
		{"q", core.IntentQuit},
		{"ctrl+c", core.IntentQuit},
		{"x", core.IntentNone},
		{"", core.IntentNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BrowseIntent(KeyModeVim, tt.key), "key %q", tt.key)
	}
}

func TestParseKeyMode(t *testing.T) {
	mode, err := ParseKeyMode("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultKeyMode, mode)

	mode, err = ParseKeyMode("vim")
	assert.NoError(t, err)
	assert.Equal(t, KeyModeVim, mode)

	_, err = ParseKeyMode("emacs")
	assert.ErrorContains(t, err, "unknown key mode")
}

func TestConfirmIntent(t *testing.T) {
	assert.Equal(t, core.IntentConfirmAccept, ConfirmIntent("y"))
	assert.Equal(t, core.IntentConfirmAccept, ConfirmIntent("enter"))
	assert.Equal(t, core.IntentConfirmDismiss, ConfirmIntent("n"))
	assert.Equal(t, core.IntentConfirmDismiss, ConfirmIntent("esc"))
	assert.Equal(t, core.IntentConfirmDismiss, ConfirmIntent("q"))
	assert.Equal(t, core.IntentNone, ConfirmIntent("j"))
}
