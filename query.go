package xjson

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/geoanalytics/xjson-format/go-xjson/debug"
	"github.com/geoanalytics/xjson-format/go-xjson/epath"
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

// QueryKind selects the query language a source string is written in.
type QueryKind int

const (
	// PathQuery evaluates an epath expression, e.g. ".//nvcl:scannedBorehole".
	PathQuery QueryKind = iota
	// ExprQuery evaluates a boolean predicate over every element below
	// the root, with `tag`, `data` and `attrs` in scope, e.g.
	// `tag == "ex:item" && attrs["val"] == "7"`.
	ExprQuery
)

// Query runs a query of the given kind against the record and returns
// every match as a Record view, in document order. Zero matches is an
// ordinary empty result, not an error; only malformed queries fail.
func (r *Record) Query(kind QueryKind, src string) ([]*Record, error) {
	if debug.Query() {
		debug.Logf("query kind=%d %q on %s\n", int(kind), src, r.tag)
	}
	switch kind {
	case PathQuery:
		entries, err := epath.Find(r.root, src, r.Namespaces())
		if err != nil {
			return nil, err
		}
		var res []*Record
		for _, e := range entries {
			res = append(res, r.wrap(e.Key, e.Node))
		}
		return res, nil
	case ExprQuery:
		return r.exprQuery(src)
	}
	return nil, fmt.Errorf("unknown query kind %d", int(kind))
}

// FindAll is Query under its traditional name.
func (r *Record) FindAll(kind QueryKind, src string) ([]*Record, error) {
	return r.Query(kind, src)
}

// Find returns the first match, or nil when there is none.
func (r *Record) Find(kind QueryKind, src string) (*Record, error) {
	res, err := r.Query(kind, src)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res[0], nil
}

// Lookup is the bracket-lookup form over path queries: nil when nothing
// matches, the single *Record when exactly one does, and the ordered
// []*Record otherwise.
func (r *Record) Lookup(path string) (any, error) {
	res, err := r.Query(PathQuery, path)
	if err != nil {
		return nil, err
	}
	switch len(res) {
	case 0:
		return nil, nil
	case 1:
		return res[0], nil
	}
	return res, nil
}

func (r *Record) exprQuery(src string) ([]*Record, error) {
	env := map[string]any{
		"tag":   "",
		"data":  "",
		"attrs": map[string]string{},
	}
	prg, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, err
	}
	var res []*Record
	var walk func(key string, node *ir.Node) error
	walk = func(key string, node *ir.Node) error {
		attrs := map[string]string{}
		if a := node.Attributes(); a != nil {
			for i, field := range a.Fields {
				attrs[field.String] = a.Values[i].String
			}
		}
		out, err := expr.Run(prg, map[string]any{
			"tag":   key,
			"data":  node.Data(),
			"attrs": attrs,
		})
		if err != nil {
			return err
		}
		if out.(bool) {
			res = append(res, r.wrap(key, node))
		}
		for _, kv := range node.Children() {
			for _, occ := range occurrences(kv.Val) {
				if occ.Type != ir.ObjectType {
					continue
				}
				if err := walk(kv.Key.String, occ); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, kv := range r.root.Children() {
		for _, occ := range occurrences(kv.Val) {
			if occ.Type != ir.ObjectType {
				continue
			}
			if err := walk(kv.Key.String, occ); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func occurrences(val *ir.Node) []*ir.Node {
	if val.Type == ir.ArrayType {
		return val.Values
	}
	return []*ir.Node{val}
}
