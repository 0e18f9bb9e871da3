package document

import (
	"fmt"
	"strconv"
)

// child resolves one path step against a container node.
func (n *Node) child(step string) (*Node, error) {
	switch n.kind {
	case KindObject:
		for _, m := range n.members {
			if m.Key == step {
				return m.Node, nil
			}
		}
		return nil, fmt.Errorf("%q: %w", step, ErrPathNotFound)
	case KindArray:
		i, err := strconv.Atoi(step)
		if err != nil || i < 0 || i >= len(n.elems) {
			return nil, fmt.Errorf("%q: %w", step, ErrPathNotFound)
		}
		return n.elems[i], nil
	default:
		// Descending through a leaf.
		return nil, fmt.Errorf("%q: %w", step, ErrPathNotFound)
	}
}

// Lookup traverses the tree from n and returns the node at path.
func (n *Node) Lookup(path Path) (*Node, error) {
	cur := n
	for _, step := range path {
		next, err := cur.child(step)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Replace swaps the value at path for repl, in place. The target keeps its
// expand flag when the replacement has the same container-ness; otherwise
// the flag resets to collapsed. Any well-formed value is accepted at any
// position: JSON is dynamically typed, so there is no type check here.
//
// repl is consumed: the caller must not retain or reuse it after a
// successful Replace.
func (n *Node) Replace(path Path, repl *Node) error {
	target, err := n.Lookup(path)
	if err != nil {
		return err
	}
	if target.IsContainer() == repl.IsContainer() {
		repl.expanded = target.expanded
	} else {
		repl.expanded = false
	}
	*target = *repl
	return nil
}

// RenameKey renames the object member addressed by path (its last step is
// the old key) to newKey, keeping the member's position and subtree intact.
// Renaming to the same key is a no-op. Returns ErrNotRenameable for the
// root and for array elements, ErrKeyExists when newKey is already taken by
// a different member.
func (n *Node) RenameKey(path Path, newKey string) error {
	if path.IsRoot() {
		return fmt.Errorf("root: %w", ErrNotRenameable)
	}
	parent, err := n.Lookup(path.Parent())
	if err != nil {
		return err
	}
	if parent.kind != KindObject {
		return fmt.Errorf("%s: %w", path.Parent(), ErrNotRenameable)
	}

	oldKey := path.Last()
	if newKey == oldKey {
		return nil
	}
	pos := -1
	for i, m := range parent.members {
		if m.Key == newKey {
			return fmt.Errorf("%q: %w", newKey, ErrKeyExists)
		}
		if m.Key == oldKey {
			pos = i
		}
	}
	if pos < 0 {
		return fmt.Errorf("%q: %w", oldKey, ErrPathNotFound)
	}
	parent.members[pos].Key = newKey
	return nil
}

// Delete removes the node addressed by the last step of path from its
// parent container. Array indices of the following siblings renumber
// implicitly, since indices are derived from position and never stored.
func (n *Node) Delete(path Path) error {
	if path.IsRoot() {
		return ErrRootDeletion
	}
	parent, err := n.Lookup(path.Parent())
	if err != nil {
		return err
	}

	step := path.Last()
	switch parent.kind {
	case KindObject:
		for i, m := range parent.members {
			if m.Key == step {
				parent.members = append(parent.members[:i], parent.members[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%q: %w", step, ErrPathNotFound)
	case KindArray:
		i, err := strconv.Atoi(step)
		if err != nil || i < 0 || i >= len(parent.elems) {
			return fmt.Errorf("%q: %w", step, ErrPathNotFound)
		}
		parent.elems = append(parent.elems[:i], parent.elems[i+1:]...)
		return nil
	default:
		return fmt.Errorf("%q: %w", step, ErrPathNotFound)
	}
}

// SetExpand sets the expand flag on the node at path. Setting it on a leaf
// is tolerated and has no effect; a missing path is reported.
func (n *Node) SetExpand(path Path, expanded bool) error {
	target, err := n.Lookup(path)
	if err != nil {
		return err
	}
	if target.IsContainer() {
		target.expanded = expanded
	}
	return nil
}

// ToggleExpand flips the expand flag on the node at path; a no-op on leaves.
func (n *Node) ToggleExpand(path Path) error {
	target, err := n.Lookup(path)
	if err != nil {
		return err
	}
	if target.IsContainer() {
		target.expanded = !target.expanded
	}
	return nil
}
