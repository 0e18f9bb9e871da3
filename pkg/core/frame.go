package core

import "github.com/oakwood-commons/jex/internal/navigator"

// Frame is one render snapshot. It carries everything a renderer needs
// without exposing tree internals; the renderer clamps preview offsets
// against its own pane extents via PreviewFrame.State.
type Frame struct {
	Rows   []navigator.Row
	Cursor int

	Preview *PreviewFrame

	Session SessionState
	Draft   string
	EditErr string

	Confirm       ConfirmKind
	ConfirmPrompt string

	Dirty  bool
	Status string
}

// PreviewFrame is the preview pane's share of a Frame.
type PreviewFrame struct {
	State *PreviewState
	Pct   int
}

// Frame snapshots the current state for rendering.
func (c *Controller) Frame() Frame {
	f := Frame{
		Rows:    c.rows,
		Cursor:  c.cursor,
		Session: c.session.state,
		Draft:   c.session.draft,
		EditErr: c.session.err,
		Dirty:   c.dirty,
		Status:  c.status,
	}
	if c.previewOpen {
		f.Preview = &PreviewFrame{State: &c.preview, Pct: c.previewPct}
	}
	if c.pending != nil {
		f.Confirm = c.pending.kind
		f.ConfirmPrompt = c.pending.prompt
	}
	return f
}
