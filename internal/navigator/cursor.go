package navigator

import "github.com/oakwood-commons/jex/pkg/document"

// Move shifts cursor by delta over a listing of n rows, clamping to
// [0, n-1]. There is no wraparound.
func Move(cursor, delta, n int) int {
	if n <= 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// ExpandOrDescend implements the "open" motion on the row under the
// cursor: a collapsed container expands (cursor stays put, even when the
// container is empty), an already expanded non-empty container moves the
// cursor to its first child, and a leaf does nothing. It returns the new
// cursor and whether the tree changed, which tells the caller to
// re-flatten.
func ExpandOrDescend(root *document.Node, rows []Row, cursor int) (int, bool) {
	if cursor < 0 || cursor >= len(rows) {
		return cursor, false
	}
	row := rows[cursor]
	if !row.Expandable {
		return cursor, false
	}
	node, err := root.Lookup(row.Path)
	if err != nil {
		return cursor, false
	}
	if !node.Expanded() {
		_ = root.SetExpand(row.Path, true)
		return cursor, true
	}
	if node.Len() > 0 {
		return cursor + 1, false
	}
	return cursor, false
}

// CollapseOrAscend implements the "close" motion: an expanded container
// collapses (cursor stays), anything else moves the cursor to its parent
// row. On the root it does nothing.
func CollapseOrAscend(root *document.Node, rows []Row, cursor int) (int, bool) {
	if cursor < 0 || cursor >= len(rows) {
		return cursor, false
	}
	row := rows[cursor]
	if row.Expanded {
		_ = root.SetExpand(row.Path, false)
		return cursor, true
	}
	if row.Path.IsRoot() {
		return cursor, false
	}
	parent := IndexOf(rows, row.Path.Parent())
	if parent < 0 {
		return cursor, false
	}
	return parent, false
}

// NearestSurvivor re-targets the cursor after rows shrank, typically
// following a delete: the row now occupying the old position, else the
// last row, never out of range.
func NearestSurvivor(rows []Row, cursor int) int {
	if len(rows) == 0 {
		return 0
	}
	if cursor >= len(rows) {
		return len(rows) - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
