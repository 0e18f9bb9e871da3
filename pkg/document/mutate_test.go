package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, input string) *Node {
	t.Helper()
	node, err := DecodeString(input)
	require.NoError(t, err)
	return node
}

func encoded(t *testing.T, node *Node) string {
	t.Helper()
	out, err := node.EncodeString()
	require.NoError(t, err)
	return out
}

func TestLookup(t *testing.T) {
	root := mustDecode(t, `{"a": 1, "b": [10, {"c": true}]}`)

	node, err := root.Lookup(nil)
	require.NoError(t, err)
	assert.Same(t, root, node)

	node, err = root.Lookup(Path{"b", "1", "c"})
	require.NoError(t, err)
	assert.Equal(t, KindBool, node.Kind())
	assert.True(t, node.BoolValue())

	_, err = root.Lookup(Path{"missing"})
	assert.ErrorIs(t, err, ErrPathNotFound)

	// Stepping through a leaf.
	_, err = root.Lookup(Path{"a", "x"})
	assert.ErrorIs(t, err, ErrPathNotFound)

	// Out-of-range and non-numeric array steps.
	_, err = root.Lookup(Path{"b", "2"})
	assert.ErrorIs(t, err, ErrPathNotFound)
	_, err = root.Lookup(Path{"b", "x"})
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestReplaceValue(t *testing.T) {
	root := mustDecode(t, `{"nested": {"key": "value"}, "array": [1, 2, 3]}`)

	repl := mustDecode(t, `["cat", "dog"]`)
	require.NoError(t, root.Replace(Path{"nested", "key"}, repl))

	want := mustDecode(t, `{"nested": {"key": ["cat", "dog"]}, "array": [1, 2, 3]}`)
	assert.Equal(t, encoded(t, want), encoded(t, root))
}

func TestReplaceKeepsExpandFlagForSameContainerness(t *testing.T) {
	root := mustDecode(t, `{"a": {"x": 1}}`)
	require.NoError(t, root.SetExpand(Path{"a"}, true))

	require.NoError(t, root.Replace(Path{"a"}, mustDecode(t, `{"y": 2}`)))
	node, err := root.Lookup(Path{"a"})
	require.NoError(t, err)
	assert.True(t, node.Expanded(), "object replaced by object keeps expand flag")

	// Container replaced by leaf resets to collapsed, and back again.
	require.NoError(t, root.Replace(Path{"a"}, String("leaf")))
	require.NoError(t, root.Replace(Path{"a"}, mustDecode(t, `[1]`)))
	node, err = root.Lookup(Path{"a"})
	require.NoError(t, err)
	assert.False(t, node.Expanded())
}

func TestReplaceRoot(t *testing.T) {
	root := mustDecode(t, `{"a": 1}`)
	require.NoError(t, root.Replace(nil, mustDecode(t, `[true]`)))
	assert.Equal(t, KindArray, root.Kind())
}

func TestRenameKeyPreservesPosition(t *testing.T) {
	root := mustDecode(t, `{"a": 1, "b": 2, "c": 3, "d": 4}`)

	require.NoError(t, root.RenameKey(Path{"b"}, "b2"))

	var keys []string
	for _, m := range root.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"a", "b2", "c", "d"}, keys)

	node, err := root.Lookup(Path{"b2"})
	require.NoError(t, err)
	assert.Equal(t, "2", string(node.NumberValue()))
}

func TestRenameKeyErrors(t *testing.T) {
	root := mustDecode(t, `{"a": 1, "b": [10, 20]}`)

	assert.ErrorIs(t, root.RenameKey(Path{"a"}, "b"), ErrKeyExists)
	assert.ErrorIs(t, root.RenameKey(Path{"missing"}, "x"), ErrPathNotFound)
	assert.ErrorIs(t, root.RenameKey(Path{"b", "0"}, "x"), ErrNotRenameable)
	assert.ErrorIs(t, root.RenameKey(nil, "x"), ErrNotRenameable)

	// Renaming to the same key is a no-op, not a duplicate.
	assert.NoError(t, root.RenameKey(Path{"a"}, "a"))
}

func TestDeleteFromObject(t *testing.T) {
	root := mustDecode(t, `{"key": "1", "other": "2", "nested": {"inner": "v"}}`)

	require.NoError(t, root.Delete(Path{"other"}))
	assert.Equal(t, encoded(t, mustDecode(t, `{"key": "1", "nested": {"inner": "v"}}`)), encoded(t, root))

	require.NoError(t, root.Delete(Path{"nested"}))
	require.NoError(t, root.Delete(Path{"key"}))
	assert.Equal(t, "{}", encoded(t, root))
}

func TestDeleteFromArrayRenumbers(t *testing.T) {
	root := mustDecode(t, `{"array": [1, 2, 3]}`)

	require.NoError(t, root.Delete(Path{"array", "0"}))
	assert.Equal(t, encoded(t, mustDecode(t, `{"array": [2, 3]}`)), encoded(t, root))

	// The old index 1 now addresses the former last element.
	node, err := root.Lookup(Path{"array", "1"})
	require.NoError(t, err)
	assert.Equal(t, "3", string(node.NumberValue()))

	require.NoError(t, root.Delete(Path{"array", "1"}))
	require.NoError(t, root.Delete(Path{"array", "0"}))
	assert.Equal(t, encoded(t, mustDecode(t, `{"array": []}`)), encoded(t, root))
}

func TestDeleteErrors(t *testing.T) {
	root := mustDecode(t, `{"a": 1}`)

	assert.ErrorIs(t, root.Delete(nil), ErrRootDeletion)
	assert.ErrorIs(t, root.Delete(Path{"missing"}), ErrPathNotFound)
	assert.ErrorIs(t, root.Delete(Path{"a", "b"}), ErrPathNotFound)
}

func TestExpandFlags(t *testing.T) {
	root := mustDecode(t, `{"a": 1, "b": [10]}`)

	require.NoError(t, root.ToggleExpand(nil))
	assert.True(t, root.Expanded())
	require.NoError(t, root.ToggleExpand(nil))
	assert.False(t, root.Expanded())

	// Leaf expansion is tolerated and has no visible effect.
	require.NoError(t, root.SetExpand(Path{"a"}, true))
	node, err := root.Lookup(Path{"a"})
	require.NoError(t, err)
	assert.False(t, node.Expanded())

	assert.ErrorIs(t, root.SetExpand(Path{"missing"}, true), ErrPathNotFound)
}

func TestPathHelpers(t *testing.T) {
	p := Path{"a", "b"}

	assert.Equal(t, Path{"a", "b", "c"}, p.Child("c"))
	assert.Equal(t, Path{"a", "b", "0"}, p.ChildIndex(0))
	assert.Equal(t, Path{"a"}, p.Parent())
	assert.Equal(t, "b", p.Last())
	assert.True(t, Path(nil).IsRoot())
	assert.Equal(t, "_", Path(nil).String())
	assert.Equal(t, "a.b", p.String())
	assert.True(t, p.Equal(Path{"a", "b"}))
	assert.False(t, p.Equal(Path{"a"}))

	// Child must not alias the parent's backing array.
	c1 := p.Child("x")
	c2 := p.Child("y")
	assert.Equal(t, "x", c1.Last())
	assert.Equal(t, "y", c2.Last())
}
