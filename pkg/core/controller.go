// Package core is the application controller: it owns the document tree,
// the cursor, the preview and edit state, and processes one intent at a
// time. Rendering and key handling live elsewhere; the controller never
// touches the terminal.
package core

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/jex/internal/navigator"
	"github.com/oakwood-commons/jex/pkg/document"
	"github.com/oakwood-commons/jex/pkg/loader"
)

// Options tune controller behavior. Zero values fall back to defaults.
type Options struct {
	// PreviewMaxBytes refuses to materialize previews larger than this.
	PreviewMaxBytes int64
	// PreviewMinPct and PreviewMaxPct bound the preview pane split.
	PreviewMinPct int
	PreviewMaxPct int
	// PreviewPct is the initial split.
	PreviewPct int
}

// DefaultOptions returns the stock tuning: 1 MiB preview cap, pane split
// starting at 65% and clamped to [20, 80].
func DefaultOptions() Options {
	return Options{
		PreviewMaxBytes: 1 << 20,
		PreviewMinPct:   20,
		PreviewMaxPct:   80,
		PreviewPct:      65,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PreviewMaxBytes <= 0 {
		o.PreviewMaxBytes = def.PreviewMaxBytes
	}
	if o.PreviewMinPct <= 0 {
		o.PreviewMinPct = def.PreviewMinPct
	}
	if o.PreviewMaxPct <= 0 || o.PreviewMaxPct > 100 {
		o.PreviewMaxPct = def.PreviewMaxPct
	}
	if o.PreviewMinPct > o.PreviewMaxPct {
		o.PreviewMinPct, o.PreviewMaxPct = def.PreviewMinPct, def.PreviewMaxPct
	}
	if o.PreviewPct <= 0 {
		o.PreviewPct = def.PreviewPct
	}
	return o
}

// ConfirmKind names what a pending confirmation dialog decides.
type ConfirmKind int

const (
	ConfirmNone ConfirmKind = iota
	ConfirmDelete
	ConfirmSave
	ConfirmQuit
)

// confirm is a pending yes/no question plus the data needed to act on yes.
type confirm struct {
	kind   ConfirmKind
	prompt string
	path   document.Path
}

// Controller owns all mutable editor state. It is single-threaded: callers
// feed it intents and drafts from one goroutine and read frames back.
type Controller struct {
	root     *document.Node
	rows     []navigator.Row
	cursor   int
	savePath string

	previewOpen bool
	previewPct  int
	preview     PreviewState

	session EditSession
	pending *confirm

	dirty  bool
	status string
	done   bool

	opts Options
	log  logr.Logger
}

// New builds a controller over an already loaded document. savePath is
// where IntentSave writes.
func New(root *document.Node, savePath string, opts Options, log logr.Logger) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		root:       root,
		savePath:   savePath,
		previewPct: opts.PreviewPct,
		opts:       opts,
		log:        log,
	}
	c.rows = navigator.Flatten(root)
	return c
}

// SetDraft forwards the user's editing keystrokes into the edit session.
func (c *Controller) SetDraft(draft string) {
	c.session.SetDraft(draft)
}

// Done reports whether the application should exit.
func (c *Controller) Done() bool { return c.done }

// Dirty reports whether there are unsaved changes.
func (c *Controller) Dirty() bool { return c.dirty }

// Apply processes one intent to completion.
func (c *Controller) Apply(intent Intent) {
	c.log.V(1).Info("apply", "intent", intent.String(), "cursor", c.cursor)
	c.status = ""

	// A pending dialog swallows everything but its own answers.
	if c.pending != nil {
		switch intent {
		case IntentConfirmAccept:
			c.acceptPending()
		case IntentConfirmDismiss:
			c.pending = nil
		}
		return
	}

	switch intent {
	case IntentMoveUp:
		c.moveCursor(-1)
	case IntentMoveDown:
		c.moveCursor(1)
	case IntentMoveUpFast:
		c.moveCursor(-10)
	case IntentMoveDownFast:
		c.moveCursor(10)
	case IntentMoveTop:
		c.moveCursor(-len(c.rows))
	case IntentMoveBottom:
		c.moveCursor(len(c.rows))
	case IntentExpandOrDescend:
		cursor, changed := navigator.ExpandOrDescend(c.root, c.rows, c.cursor)
		c.afterMotion(cursor, changed)
	case IntentCollapseOrAscend:
		cursor, changed := navigator.CollapseOrAscend(c.root, c.rows, c.cursor)
		c.afterMotion(cursor, changed)

	case IntentTogglePreview:
		c.previewOpen = !c.previewOpen
		if c.previewOpen {
			c.refreshPreview()
		}
	case IntentScrollPreviewUp:
		c.preview.ScrollY(-1)
	case IntentScrollPreviewDown:
		c.preview.ScrollY(1)
	case IntentScrollPreviewLeft:
		c.preview.ScrollX(-1)
	case IntentScrollPreviewRight:
		c.preview.ScrollX(1)
	case IntentGrowPreview:
		c.previewPct = clampPct(c.previewPct+resizeStep, c.opts)
	case IntentShrinkPreview:
		c.previewPct = clampPct(c.previewPct-resizeStep, c.opts)

	case IntentBeginEditValue:
		c.beginEditValue()
	case IntentBeginRenameKey:
		c.beginRenameKey()
	case IntentDeleteCurrent:
		c.requestDelete()
	case IntentCommitEdit:
		c.commitEdit()
	case IntentCancelEdit:
		c.session.Reset()

	case IntentSave:
		c.pending = &confirm{
			kind:   ConfirmSave,
			prompt: fmt.Sprintf("Save to %s?", c.savePath),
		}
	case IntentQuit:
		if c.dirty {
			c.pending = &confirm{
				kind:   ConfirmQuit,
				prompt: "Discard unsaved changes?",
			}
			return
		}
		c.done = true
	}
}

func clampPct(pct int, opts Options) int {
	if pct < opts.PreviewMinPct {
		return opts.PreviewMinPct
	}
	if pct > opts.PreviewMaxPct {
		return opts.PreviewMaxPct
	}
	return pct
}

func (c *Controller) moveCursor(delta int) {
	c.afterMotion(navigator.Move(c.cursor, delta, len(c.rows)), false)
}

// afterMotion settles shared post-movement state: re-flatten when the
// tree changed, and follow the selection with the preview.
func (c *Controller) afterMotion(cursor int, changed bool) {
	if changed {
		c.rows = navigator.Flatten(c.root)
	}
	moved := cursor != c.cursor
	c.cursor = navigator.Move(cursor, 0, len(c.rows))
	if c.previewOpen && (moved || changed) {
		c.refreshPreview()
	}
}

// refreshPreview rebuilds the preview content for the current selection.
// Scroll offsets carry over so the pane keeps its position while moving
// through siblings; render-time clamping absorbs any overshoot. Only a
// selection that cannot be previewed resets them.
func (c *Controller) refreshPreview() {
	next := PreviewState{unavailable: true}
	if node, err := c.root.Lookup(c.currentPath()); err == nil {
		next = buildPreview(node, c.opts.PreviewMaxBytes)
	}
	if !next.unavailable {
		next.yOffset = c.preview.yOffset
		next.xOffset = c.preview.xOffset
	}
	c.preview = next
}

func (c *Controller) currentPath() document.Path {
	if c.cursor < 0 || c.cursor >= len(c.rows) {
		return nil
	}
	return c.rows[c.cursor].Path
}

func (c *Controller) beginEditValue() {
	path := c.currentPath()
	node, err := c.root.Lookup(path)
	if err != nil {
		c.status = err.Error()
		return
	}
	text, err := node.EncodeString()
	if err != nil {
		c.status = err.Error()
		return
	}
	c.session.BeginValue(path, text)
}

func (c *Controller) beginRenameKey() {
	path := c.currentPath()
	if path.IsRoot() {
		c.status = "the root has no key to rename"
		return
	}
	parent, err := c.root.Lookup(path.Parent())
	if err != nil {
		c.status = err.Error()
		return
	}
	if parent.Kind() != document.KindObject {
		c.status = "array elements have no key to rename"
		return
	}
	c.session.BeginKey(path, path.Last())
}

func (c *Controller) requestDelete() {
	path := c.currentPath()
	if path.IsRoot() {
		c.status = "the root value cannot be deleted"
		return
	}
	c.pending = &confirm{
		kind:   ConfirmDelete,
		prompt: fmt.Sprintf("Delete %s?", path),
		path:   path,
	}
}

// commitEdit parses the draft and applies it to the tree. On failure the
// session stays open with the draft intact and the error surfaced.
func (c *Controller) commitEdit() {
	switch c.session.state {
	case SessionEditingValue:
		repl, err := document.DecodeString(c.session.draft)
		if err != nil {
			c.session.err = err.Error()
			return
		}
		if err := c.root.Replace(c.session.path, repl); err != nil {
			c.session.err = err.Error()
			return
		}
	case SessionEditingKey:
		if c.session.draft == c.session.oldKey {
			c.session.Reset()
			return
		}
		err := c.root.RenameKey(c.session.path, c.session.draft)
		if err != nil {
			if errors.Is(err, document.ErrKeyExists) {
				c.session.err = fmt.Sprintf("key %q already exists", c.session.draft)
			} else {
				c.session.err = err.Error()
			}
			return
		}
	default:
		return
	}

	c.session.Reset()
	c.dirty = true
	c.rows = navigator.Flatten(c.root)
	c.cursor = navigator.NearestSurvivor(c.rows, c.cursor)
	if c.previewOpen {
		c.refreshPreview()
	}
}

// acceptPending runs the confirmed action.
func (c *Controller) acceptPending() {
	p := c.pending
	c.pending = nil
	switch p.kind {
	case ConfirmDelete:
		if err := c.root.Delete(p.path); err != nil {
			c.status = err.Error()
			return
		}
		c.log.Info("deleted", "path", p.path.String())
		c.dirty = true
		c.rows = navigator.Flatten(c.root)
		c.cursor = navigator.NearestSurvivor(c.rows, c.cursor)
		if c.previewOpen {
			c.refreshPreview()
		}
	case ConfirmSave:
		if err := loader.Save(c.savePath, c.root); err != nil {
			c.log.Error(err, "save failed", "path", c.savePath)
			c.status = err.Error()
			return
		}
		c.log.Info("saved", "path", c.savePath)
		c.dirty = false
		c.status = fmt.Sprintf("Saved to %s", c.savePath)
	case ConfirmQuit:
		c.done = true
	}
}
