package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "string": "something",
  "int": 123,
  "float": 100.3,
  "bool": true,
  "other_bool": false,
  "null": null,
  "array": [
    1,
    2,
    3.0
  ],
  "nested_object": {
    "key": "value"
  }
}`

func TestDecodeEncodeRoundTrip(t *testing.T) {
	root, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	out, err := root.EncodeString()
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, out)
}

func TestDecodePreservesMemberOrder(t *testing.T) {
	root, err := DecodeString(sampleJSON)
	require.NoError(t, err)
	require.Equal(t, KindObject, root.Kind())

	var keys []string
	for _, m := range root.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{
		"string", "int", "float", "bool", "other_bool", "null", "array", "nested_object",
	}, keys)
}

func TestDecodePreservesNumberLiterals(t *testing.T) {
	root, err := DecodeString(`[1, 1.0, 1e3, -0.5]`)
	require.NoError(t, err)
	require.Equal(t, 4, root.Len())

	var literals []string
	for _, elem := range root.Elems() {
		literals = append(literals, string(elem.NumberValue()))
	}
	assert.Equal(t, []string{"1", "1.0", "1e3", "-0.5"}, literals)
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{`null`, KindNull},
		{`true`, KindBool},
		{`42`, KindNumber},
		{`"hi"`, KindString},
		{`[]`, KindArray},
		{`{}`, KindObject},
	}
	for _, tt := range tests {
		node, err := DecodeString(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.kind, node.Kind(), tt.input)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{``, `{`, `not json`, `{"a": }`, `[1,]`} {
		_, err := DecodeString(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := DecodeString(`{"a": 1} {"b": 2}`)
	assert.Error(t, err)
}

func TestEncodeEscapesStrings(t *testing.T) {
	node := Object(Member{Key: `a "b"`, Node: String("line\nbreak")})
	out, err := node.EncodeString()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a \\\"b\\\"\": \"line\\nbreak\"\n}", out)

	back, err := DecodeString(out)
	require.NoError(t, err)
	assert.Equal(t, `a "b"`, back.Members()[0].Key)
	assert.Equal(t, "line\nbreak", back.Members()[0].Node.StringValue())
}

func TestEncodeEmptyContainers(t *testing.T) {
	out, err := Object(Member{Key: "a", Node: Array()}, Member{Key: "o", Node: Object()}).EncodeString()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [],\n  \"o\": {}\n}", out)
}
