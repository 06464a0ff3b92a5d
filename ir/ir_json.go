package ir

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// ToJSON serializes a body mapping to JSON, emitting object fields in
// recorded order. The stock map-based codecs cannot do this, hence the
// hand-rolled walk; scalar quoting is delegated to go-json.
func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(node *Node, buf *bytes.Buffer) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}
	switch node.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case NumberType:
		switch {
		case node.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*node.Int64, 10))
		case node.Float64 != nil:
			buf.WriteString(strconv.FormatFloat(*node.Float64, 'g', -1, 64))
		default:
			buf.WriteString("null")
		}
	case StringType:
		d, err := gojson.Marshal(node.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(v, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, field := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := gojson.Marshal(field.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(node.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot serialize %s", ErrBadJSON, node.Type)
	}
	return nil
}

// FromJSON parses JSON into a body mapping, preserving object key order.
// The token stream is consumed directly rather than round-tripping
// through map[string]any, which would lose field order. The token layer
// tolerates dangling commas, so the document is validated strictly
// first.
func FromJSON(d []byte) (*Node, error) {
	if !gojson.Valid(d) {
		return nil, fmt.Errorf("%w: invalid document", ErrBadJSON)
	}
	dec := gojson.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := parseJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrBadJSON)
	}
	return node, nil
}

func parseJSONValue(dec *gojson.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	return parseJSONToken(dec, tok)
}

func parseJSONToken(dec *gojson.Decoder, tok gojson.Token) (*Node, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return parseJSONObject(dec)
		case '[':
			return parseJSONArray(dec)
		}
		return nil, fmt.Errorf("%w: unexpected %q", ErrBadJSON, t.String())
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case gojson.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrBadJSON, t.String())
		}
		return FromFloat(f), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrBadJSON, tok)
}

func parseJSONObject(dec *gojson.Decoder) (*Node, error) {
	res := Object()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadJSON, err)
		}
		if d, ok := tok.(gojson.Delim); ok && d == '}' {
			return res, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrBadJSON, tok)
		}
		val, err := parseJSONValue(dec)
		if err != nil {
			return nil, err
		}
		res.SetField(key, val)
	}
}

func parseJSONArray(dec *gojson.Decoder) (*Node, error) {
	var vals []*Node
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadJSON, err)
		}
		if d, ok := tok.(gojson.Delim); ok && d == ']' {
			return FromSlice(vals), nil
		}
		val, err := parseJSONToken(dec, tok)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
}
