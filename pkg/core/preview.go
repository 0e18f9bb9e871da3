package core

import (
	"bytes"
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/jex/pkg/document"
)

// scrollStep is how far one preview scroll key moves, in cells. Offsets
// snap to multiples of the step so repeated opposite scrolls retrace the
// same positions.
const scrollStep = 5

// resizeStep is how far one preview resize key moves the split, in
// percentage points.
const resizeStep = 5

var errPreviewTooLarge = errors.New("value too large to preview")

// PreviewState is the scroll position and content of the preview pane.
// Content is materialized once per selection change; scrolling only moves
// offsets. Offsets are clamped against the viewport at render time, since
// only the renderer knows the pane extents.
type PreviewState struct {
	lines       []string
	width       int // widest line in cells
	yOffset     int
	xOffset     int
	unavailable bool
}

// buildPreview pretty-prints node, refusing to materialize values whose
// serialized form exceeds maxBytes.
func buildPreview(node *document.Node, maxBytes int64) PreviewState {
	var lw limitWriter
	lw.max = maxBytes
	if err := node.Encode(&lw); err != nil {
		return PreviewState{unavailable: true}
	}
	lines := strings.Split(lw.buf.String(), "\n")
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return PreviewState{lines: lines, width: width}
}

// limitWriter aborts the encode as soon as the output passes max bytes,
// so an oversized value never fully materializes.
type limitWriter struct {
	buf bytes.Buffer
	n   int64
	max int64
}

func (w *limitWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	if w.n > w.max {
		return 0, errPreviewTooLarge
	}
	return w.buf.Write(p)
}

// Unavailable reports whether the value was too large to render.
func (p *PreviewState) Unavailable() bool { return p.unavailable }

// Lines returns the rendered preview text, one entry per line.
func (p *PreviewState) Lines() []string { return p.lines }

// Offsets returns the current scroll position.
func (p *PreviewState) Offsets() (y, x int) { return p.yOffset, p.xOffset }

// ScrollY moves the vertical offset one step up (negative) or down.
func (p *PreviewState) ScrollY(dir int) {
	p.yOffset = step(p.yOffset, dir)
}

// ScrollX moves the horizontal offset one step left (negative) or right.
func (p *PreviewState) ScrollX(dir int) {
	p.xOffset = step(p.xOffset, dir)
}

func step(offset, dir int) int {
	offset = offset / scrollStep
	if dir < 0 {
		offset--
	} else {
		offset++
	}
	if offset < 0 {
		return 0
	}
	return offset * scrollStep
}

// Clamp pulls the offsets back inside the scrollable range for the given
// viewport: offset ∈ [0, content-viewport], 0 when the content fits.
func (p *PreviewState) Clamp(viewportWidth, viewportHeight int) {
	p.yOffset = clampOffset(p.yOffset, len(p.lines), viewportHeight)
	p.xOffset = clampOffset(p.xOffset, p.width, viewportWidth)
}

func clampOffset(offset, content, viewport int) int {
	maxOffset := content - viewport
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}
