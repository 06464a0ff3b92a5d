package encode

import (
	"bytes"
	"strings"

	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

// Yaml renders a body mapping as an indented, yaml-flavored text tree:
// one "key:" line per element with its text inline, one "@attr: value"
// line per attribute indented one extra level, one block per occurrence
// of a repeated tag, "None" for null values and a bracketed
// newline-separated list for other non-mapping values. Pure formatting;
// the body is not touched.
func Yaml(body *ir.Node, opts ...EncodeOption) string {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	for i, field := range body.Fields {
		if field.String == ir.ContextKey {
			continue
		}
		emitYaml(buf, es, field.String, body.Values[i], 0)
	}
	return strings.TrimPrefix(buf.String(), "\n")
}

func emitYaml(buf *bytes.Buffer, es *EncState, key string, body *ir.Node, indent int) {
	spaces := strings.Repeat(" ", es.indent*indent)
	newItem := "\n" + spaces + strings.Repeat(" ", es.indent)

	// repeated-tag aggregation: one block per occurrence
	if body != nil && body.Type == ir.ArrayType && objectElements(body) {
		for _, occ := range body.Values {
			emitYaml(buf, es, key, occ, indent)
		}
		return
	}

	buf.WriteString("\n" + spaces + yColor(es, FieldColor, key) + ":")
	switch {
	case body == nil || body.Type == ir.NullType:
		buf.WriteString(" None")

	case body.Type == ir.ObjectType:
		if data := body.Data(); data != "" {
			buf.WriteString(" " + yColor(es, ValueColor, data))
		}
		if attrs := body.Attributes(); attrs != nil {
			for i, field := range attrs.Fields {
				buf.WriteString(newItem +
					yColor(es, AttrColor, "@"+field.String) + ": " +
					yColor(es, ValueColor, attrs.Values[i].String))
			}
		}
		for _, kv := range body.Children() {
			emitYaml(buf, es, kv.Key.String, kv.Val, indent+1)
		}

	case body.Type == ir.ArrayType:
		buf.WriteString(" [")
		for _, v := range body.Values {
			buf.WriteString(newItem + yColor(es, ValueColor, v.ScalarString()))
		}
		buf.WriteString(newItem + "]")

	default:
		buf.WriteString(" " + yColor(es, ValueColor, body.ScalarString()))
	}
}

func objectElements(arr *ir.Node) bool {
	for _, v := range arr.Values {
		if v.Type != ir.ObjectType {
			return false
		}
	}
	return len(arr.Values) > 0
}

func yColor(es *EncState, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}
