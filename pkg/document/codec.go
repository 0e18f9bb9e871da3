package document

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The codec walks the standard library's JSON tokenizer instead of
// unmarshalling into map[string]interface{}: Go maps do not preserve member
// order and float64 conversion loses the literal shape of numbers, both of
// which the editor's round-trip guarantee depends on.

// Decode reads one JSON document from r into a node tree. Member order is
// kept as written and numbers are retained as literals (json.Number).
// Trailing non-whitespace input after the document is an error.
func Decode(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	node, err := decodeValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode: trailing data after document")
	}
	return node, nil
}

// DecodeString decodes a JSON document held in a string.
func DecodeString(s string) (*Node, error) {
	return Decode(strings.NewReader(s))
}

func decodeValue(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("decode: %w", err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("decode: object key is %T, want string", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("decode: %w", err)
				}
				val, err := decodeValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				obj.members = append(obj.members, Member{Key: key, Node: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, fmt.Errorf("decode: %w", err)
			}
			return obj, nil
		case '[':
			arr := Array()
			for dec.More() {
				elemTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("decode: %w", err)
				}
				elem, err := decodeValue(dec, elemTok)
				if err != nil {
					return nil, err
				}
				arr.elems = append(arr.elems, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, fmt.Errorf("decode: %w", err)
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("decode: unexpected delimiter %v", t)
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("decode: unexpected token %T", tok)
	}
}

// indent is the encoder's indentation unit.
const indent = "  "

// Encode writes the subtree rooted at n to w as pretty-printed JSON, two
// spaces per level, members and elements in stored order. The emission
// order is by construction identical to the tree walk order the navigator
// flattens.
func (n *Node) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	n.encode(ew, 0)
	return ew.err
}

// EncodeString renders the subtree rooted at n as pretty-printed JSON.
func (n *Node) EncodeString() (string, error) {
	var sb strings.Builder
	if err := n.Encode(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (n *Node) encode(w *errWriter, depth int) {
	switch n.kind {
	case KindNull:
		w.writeString("null")
	case KindBool:
		w.writeString(strconv.FormatBool(n.boolVal))
	case KindNumber:
		if n.numVal == "" {
			w.writeString("0")
			return
		}
		w.writeString(string(n.numVal))
	case KindString:
		w.writeQuoted(n.strVal)
	case KindArray:
		if len(n.elems) == 0 {
			w.writeString("[]")
			return
		}
		w.writeString("[\n")
		for i, elem := range n.elems {
			if w.err != nil {
				return
			}
			w.writeIndent(depth + 1)
			elem.encode(w, depth+1)
			if i < len(n.elems)-1 {
				w.writeString(",")
			}
			w.writeString("\n")
		}
		w.writeIndent(depth)
		w.writeString("]")
	case KindObject:
		if len(n.members) == 0 {
			w.writeString("{}")
			return
		}
		w.writeString("{\n")
		for i, m := range n.members {
			if w.err != nil {
				return
			}
			w.writeIndent(depth + 1)
			w.writeQuoted(m.Key)
			w.writeString(": ")
			m.Node.encode(w, depth+1)
			if i < len(n.members)-1 {
				w.writeString(",")
			}
			w.writeString("\n")
		}
		w.writeIndent(depth)
		w.writeString("}")
	}
}

// errWriter latches the first write error so the encoder can abandon deep
// subtrees instead of walking them for nothing.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) writeQuoted(s string) {
	if ew.err != nil {
		return
	}
	b, err := json.Marshal(s)
	if err != nil {
		ew.err = err
		return
	}
	_, ew.err = ew.w.Write(b)
}

func (ew *errWriter) writeIndent(depth int) {
	for i := 0; i < depth && ew.err == nil; i++ {
		ew.writeString(indent)
	}
}
