package core

// Intent is one abstract editor action. The UI translates key presses into
// intents; the controller processes each intent fully before the next.
type Intent int

const (
	IntentNone Intent = iota

	// Tree cursor movement.
	IntentMoveUp
	IntentMoveDown
	IntentMoveUpFast
	IntentMoveDownFast
	IntentMoveTop
	IntentMoveBottom
	IntentExpandOrDescend
	IntentCollapseOrAscend

	// Preview window.
	IntentTogglePreview
	IntentScrollPreviewUp
	IntentScrollPreviewDown
	IntentScrollPreviewLeft
	IntentScrollPreviewRight
	IntentGrowPreview
	IntentShrinkPreview

	// Editing.
	IntentBeginEditValue
	IntentBeginRenameKey
	IntentDeleteCurrent
	IntentCommitEdit
	IntentCancelEdit

	// Dialogs.
	IntentConfirmAccept
	IntentConfirmDismiss

	// Lifecycle.
	IntentSave
	IntentQuit
)

var intentNames = map[Intent]string{
	IntentNone:               "none",
	IntentMoveUp:             "move_up",
	IntentMoveDown:           "move_down",
	IntentMoveUpFast:         "move_up_fast",
	IntentMoveDownFast:       "move_down_fast",
	IntentMoveTop:            "move_top",
	IntentMoveBottom:         "move_bottom",
	IntentExpandOrDescend:    "expand_or_descend",
	IntentCollapseOrAscend:   "collapse_or_ascend",
	IntentTogglePreview:      "toggle_preview",
	IntentScrollPreviewUp:    "scroll_preview_up",
	IntentScrollPreviewDown:  "scroll_preview_down",
	IntentScrollPreviewLeft:  "scroll_preview_left",
	IntentScrollPreviewRight: "scroll_preview_right",
	IntentGrowPreview:        "grow_preview",
	IntentShrinkPreview:      "shrink_preview",
	IntentBeginEditValue:     "begin_edit_value",
	IntentBeginRenameKey:     "begin_rename_key",
	IntentDeleteCurrent:      "delete_current",
	IntentCommitEdit:         "commit_edit",
	IntentCancelEdit:         "cancel_edit",
	IntentConfirmAccept:      "confirm_accept",
	IntentConfirmDismiss:     "confirm_dismiss",
	IntentSave:               "save",
	IntentQuit:               "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
