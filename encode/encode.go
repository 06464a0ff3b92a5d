package encode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/geoanalytics/xjson-format/go-xjson/debug"
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

type EncState struct {
	depth, indent int
	wire          bool
	started       bool

	Color func(ColorAttr, string) string
}

// Encode walks body in recorded field order and writes it as XML. Every
// namespace in the context is declared on the root element so that a
// subsequent decode rebuilds an equal body/context pair.
func Encode(body *ir.Node, ns *nsmap.Map, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if body == nil || body.Type != ir.ObjectType {
		return fmt.Errorf("%w: body must be an object", ErrEncoding)
	}
	// register namespaces introduced by Clark-notation keys anywhere in
	// the tree before the root declarations are written
	ns.Harvest(body)

	wrote := false
	for _, kv := range body.Children() {
		for _, occ := range occurrences(kv.Val) {
			if err := writeElement(w, es, ns, kv.Key.String, occ, !wrote); err != nil {
				return err
			}
			wrote = true
		}
	}
	if !wrote {
		return fmt.Errorf("%w: no root element in body", ErrEncoding)
	}
	if debug.Encode() {
		debug.Logf("encoded body with %d namespaces\n", ns.Len())
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

// occurrences unfolds the repeated-tag rule: an array value stands for
// one element per entry, anything else for a single element.
func occurrences(val *ir.Node) []*ir.Node {
	if val.Type == ir.ArrayType {
		return val.Values
	}
	return []*ir.Node{val}
}

func writeElement(w io.Writer, es *EncState, ns *nsmap.Map, key string, node *ir.Node, declare bool) error {
	name, err := outputName(ns, key)
	if err != nil {
		return err
	}
	if err := writeNL(w, es); err != nil {
		return err
	}
	es.started = true
	if err := writeString(w, "<"+name); err != nil {
		return err
	}
	if declare {
		for _, p := range ns.Prefixes() {
			uri, _ := ns.PrefixURI(p)
			if err := writeAttr(w, "xmlns:"+p, uri); err != nil {
				return err
			}
		}
	}
	if node.Type != ir.ObjectType {
		return writeLeaf(w, name, node)
	}
	if attrs := node.Attributes(); attrs != nil {
		for i, field := range attrs.Fields {
			aName, err := outputName(ns, field.String)
			if err != nil {
				return err
			}
			if err := writeAttr(w, aName, attrs.Values[i].String); err != nil {
				return err
			}
		}
	}
	data := node.Data()
	kids := node.Children()
	if data == "" && len(kids) == 0 {
		return writeString(w, "/>")
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}
	if data != "" {
		if err := writeText(w, data); err != nil {
			return err
		}
	}
	if len(kids) > 0 {
		es.depth++
		for _, kv := range kids {
			for _, occ := range occurrences(kv.Val) {
				if err := writeElement(w, es, ns, kv.Key.String, occ, false); err != nil {
					return err
				}
			}
		}
		es.depth--
		if data == "" {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
	}
	return writeString(w, "</"+name+">")
}

// writeLeaf emits a scalar as an element whose sole text is the value's
// string form, the dual of unknown-leaf handling on decode.
func writeLeaf(w io.Writer, name string, node *ir.Node) error {
	text := node.ScalarString()
	if text == "" {
		return writeString(w, "/>")
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}
	if err := writeText(w, text); err != nil {
		return err
	}
	return writeString(w, "</"+name+">")
}

// outputName maps a body key to the name written in XML. Clark keys are
// shortened through the context; already-short keys must resolve in the
// context or encoding fails, they are never emitted as literal guesses.
func outputName(ns *nsmap.Map, key string) (string, error) {
	if uri, _, ok := nsmap.SplitClark(key); ok && uri != "" {
		return ns.Shorten(key), nil
	}
	if _, _, ok := nsmap.SplitPrefixed(key); ok {
		if _, err := ns.Expand(key); err != nil {
			return "", err
		}
	}
	return key, nil
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire || !es.started {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeText(w io.Writer, s string) error {
	return xml.EscapeText(w, []byte(s))
}

func writeAttr(w io.Writer, name, value string) error {
	if err := writeString(w, " "+name+`="`); err != nil {
		return err
	}
	if err := writeText(w, value); err != nil {
		return err
	}
	return writeString(w, `"`)
}
