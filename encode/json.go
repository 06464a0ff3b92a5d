package encode

import (
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

// EncodeJSON renders a body mapping as JSON with the "@context" block
// first, then the body fields in recorded order. The input body is not
// mutated.
func EncodeJSON(body *ir.Node, ns *nsmap.Map) ([]byte, error) {
	out := ir.Object()
	out.SetField(ir.ContextKey, ns.ContextNode())
	for i, field := range body.Fields {
		if field.String == ir.ContextKey {
			continue
		}
		out.SetField(field.String, body.Values[i].Clone())
	}
	return ir.ToJSON(out)
}

// DecodeJSON is the inverse of EncodeJSON: it splits a serialized record
// back into body and context.
func DecodeJSON(d []byte) (*ir.Node, *nsmap.Map, error) {
	node, err := ir.FromJSON(d)
	if err != nil {
		return nil, nil, err
	}
	ns, err := nsmap.FromContextNode(ir.Get(node, ir.ContextKey))
	if err != nil {
		return nil, nil, err
	}
	body := ir.Object()
	for i, field := range node.Fields {
		if field.String == ir.ContextKey {
			continue
		}
		body.SetField(field.String, node.Values[i])
	}
	return body, ns, nil
}
