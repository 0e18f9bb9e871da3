package document

import (
	"strconv"
	"strings"
)

// Path addresses a node as the ordered sequence of steps from the root:
// object steps are member keys, array steps are decimal indices. Which
// interpretation applies is decided by the container kind met during
// traversal, so array steps are always resolved against live positions and
// never go stale after an element delete renumbers its siblings.
//
// An empty Path addresses the root.
type Path []string

// Child returns a new path extended by one step. The receiver is not
// modified and no storage is shared with it.
func (p Path) Child(step string) Path {
	child := make(Path, 0, len(p)+1)
	child = append(child, p...)
	return append(child, step)
}

// ChildIndex returns a new path extended by an array index step.
func (p Path) ChildIndex(i int) Path {
	return p.Child(strconv.Itoa(i))
}

// Parent returns the path without its last step; the root's parent is the
// root itself.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Last returns the final step, or "" for the root.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// IsRoot reports whether the path addresses the document root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Equal reports step-wise equality.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path in dotted display form ("items.0.name"), with "_"
// for the root. Display only; it is not parsed back.
func (p Path) String() string {
	if len(p) == 0 {
		return "_"
	}
	return strings.Join(p, ".")
}
