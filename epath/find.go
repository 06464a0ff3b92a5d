package epath

import (
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

// Entry is one matched element: its key on the parent and its node.
type Entry struct {
	Key  string
	Node *ir.Node
}

// Find evaluates expr relative to root and returns all matches in
// document order. Names in expr are normalized through ns so queries can
// use short prefixes, Clark notation or bare names interchangeably.
func Find(root *ir.Node, expr string, ns *nsmap.Map) ([]Entry, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	cur := []Entry{{Node: root}}
	for ; p != nil; p = p.Next {
		name := normalize(p.Name, ns)
		var next []Entry
		for _, e := range cur {
			if e.Node.Type != ir.ObjectType {
				continue
			}
			if p.Descend {
				for _, c := range descendants(e.Node) {
					if nameMatch(name, c.Key) {
						next = append(next, c)
					}
				}
				continue
			}
			for _, c := range childEntries(e.Node) {
				if nameMatch(name, c.Key) {
					next = append(next, c)
				}
			}
		}
		cur = next
	}
	return cur, nil
}

func normalize(name string, ns *nsmap.Map) string {
	if name == "*" || ns == nil {
		return name
	}
	return ns.Shorten(name)
}

func nameMatch(name, key string) bool {
	return name == "*" || name == key
}

// childEntries lists the element children of y in document order,
// unfolding repeated-tag arrays into one entry per occurrence.
func childEntries(y *ir.Node) []Entry {
	var res []Entry
	for _, kv := range y.Children() {
		if kv.Val.Type == ir.ArrayType {
			for _, occ := range kv.Val.Values {
				res = append(res, Entry{Key: kv.Key.String, Node: occ})
			}
			continue
		}
		res = append(res, Entry{Key: kv.Key.String, Node: kv.Val})
	}
	return res
}

// descendants lists every element below y, depth-first pre-order.
func descendants(y *ir.Node) []Entry {
	var res []Entry
	for _, c := range childEntries(y) {
		res = append(res, c)
		if c.Node.Type == ir.ObjectType {
			res = append(res, descendants(c.Node)...)
		}
	}
	return res
}
