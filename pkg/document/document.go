// Package document holds the in-memory representation of a JSON document as
// an ownership tree of nodes, plus the mutations the editor performs on it
// (value replacement, key rename, deletion) and the order-preserving codec
// used to read and write it. Object member order and numeric literal shape
// are preserved across load, edit, and save.
package document

import "encoding/json"

// Kind identifies which JSON variant a Node holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a lowercase name for the kind, matching JSON terminology.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one ordered entry of an object node.
type Member struct {
	Key  string
	Node *Node
}

// Node is one element of the document tree: a tagged JSON value plus the
// per-node UI expand flag. Nodes form a strict tree; containers are built
// bottom-up and never re-link existing subtrees into new locations.
//
// A Node's stable external identity is its Path from the root, not the
// pointer: rows, cursor, and preview state reference nodes by Path so they
// survive structural mutation.
type Node struct {
	kind    Kind
	boolVal bool
	numVal  json.Number
	strVal  string
	elems   []*Node
	members []Member

	// expanded is meaningful only for arrays and objects; it is tolerated
	// (and ignored) on leaves.
	expanded bool
}

// Null returns a new null node.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Bool returns a new boolean node.
func Bool(v bool) *Node {
	return &Node{kind: KindBool, boolVal: v}
}

// Number returns a new number node. The literal shape of n is preserved
// verbatim on encode.
func Number(n json.Number) *Node {
	return &Node{kind: KindNumber, numVal: n}
}

// String returns a new string node.
func String(s string) *Node {
	return &Node{kind: KindString, strVal: s}
}

// Array returns a new array node owning the given elements.
func Array(elems ...*Node) *Node {
	return &Node{kind: KindArray, elems: elems}
}

// Object returns a new object node owning the given members in order.
func Object(members ...Member) *Node {
	return &Node{kind: KindObject, members: members}
}

// Kind reports the JSON variant held by the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsContainer reports whether the node is an array or object.
func (n *Node) IsContainer() bool {
	return n.kind == KindArray || n.kind == KindObject
}

// Len returns the child count for containers and 0 for leaves.
func (n *Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.elems)
	case KindObject:
		return len(n.members)
	default:
		return 0
	}
}

// BoolValue returns the boolean payload; valid only for KindBool.
func (n *Node) BoolValue() bool {
	return n.boolVal
}

// NumberValue returns the numeric payload; valid only for KindNumber.
func (n *Node) NumberValue() json.Number {
	return n.numVal
}

// StringValue returns the string payload; valid only for KindString.
func (n *Node) StringValue() string {
	return n.strVal
}

// Elems returns the ordered elements of an array node (nil for other kinds).
// The returned slice is owned by the node and must not be reordered by
// callers.
func (n *Node) Elems() []*Node {
	return n.elems
}

// Members returns the ordered members of an object node (nil for other
// kinds). The returned slice is owned by the node and must not be reordered
// by callers.
func (n *Node) Members() []Member {
	return n.members
}

// Expanded reports the UI expand flag. Always false for leaves.
func (n *Node) Expanded() bool {
	return n.IsContainer() && n.expanded
}
