// Package navigator flattens a document tree into the linear row listing
// the tree pane shows, and implements cursor movement over it.
package navigator

import (
	"fmt"
	"strconv"

	"github.com/oakwood-commons/jex/pkg/document"
)

// RootLabel is the display name of the synthetic root row.
const RootLabel = "root"

// summaryLimit caps the rune length of a leaf value summary.
const summaryLimit = 64

// Row is one visible line of the tree listing.
type Row struct {
	Path       document.Path
	Depth      int
	Label      string
	Summary    string
	Expandable bool
	Expanded   bool
}

// Flatten walks the tree depth-first in pre-order, descending only into
// expanded containers, and returns one Row per visible node. The root is
// always the first row. Row order matches the encoder's emission order.
func Flatten(root *document.Node) []Row {
	rows := make([]Row, 0, 64)
	rows = appendRows(rows, root, nil, 0, RootLabel)
	return rows
}

func appendRows(rows []Row, node *document.Node, path document.Path, depth int, label string) []Row {
	rows = append(rows, Row{
		Path:       path,
		Depth:      depth,
		Label:      label,
		Summary:    Summarize(node),
		Expandable: node.IsContainer(),
		Expanded:   node.Expanded(),
	})
	if !node.Expanded() {
		return rows
	}
	switch node.Kind() {
	case document.KindArray:
		for i, elem := range node.Elems() {
			label := strconv.Itoa(i)
			rows = appendRows(rows, elem, path.ChildIndex(i), depth+1, label)
		}
	case document.KindObject:
		for _, m := range node.Members() {
			rows = appendRows(rows, m.Node, path.Child(m.Key), depth+1, m.Key)
		}
	}
	return rows
}

// Summarize renders a one-line value hint for a row: the literal for
// leaves (long strings truncated), an element or member count for
// containers.
func Summarize(node *document.Node) string {
	switch node.Kind() {
	case document.KindNull:
		return "null"
	case document.KindBool:
		return strconv.FormatBool(node.BoolValue())
	case document.KindNumber:
		return string(node.NumberValue())
	case document.KindString:
		return strconv.Quote(truncate(node.StringValue(), summaryLimit))
	case document.KindArray:
		return fmt.Sprintf("[%d]", node.Len())
	case document.KindObject:
		return fmt.Sprintf("{%d}", node.Len())
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// IndexOf returns the row index of path, or -1 when no visible row
// carries it.
func IndexOf(rows []Row, path document.Path) int {
	for i, row := range rows {
		if row.Path.Equal(path) {
			return i
		}
	}
	return -1
}
