package xjson

import (
	"bytes"
	"fmt"

	"github.com/geoanalytics/xjson-format/go-xjson/decode"
	"github.com/geoanalytics/xjson-format/go-xjson/encode"
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

// nsState tracks the namespace harvest cache: Stale -> Fresh on
// harvest, Fresh -> Stale on any structural mutation.
type nsState int

const (
	nsStale nsState = iota
	nsFresh
)

// Record wraps one body mapping together with its namespace context and
// a stable identifier. Records produced by navigating into a Record's
// own subtree share its context by reference.
type Record struct {
	Ident string

	tag     string
	root    *ir.Node
	ns      *nsmap.Map
	nsCache nsState
}

type RecordOption func(*recordOpts)

type recordOpts struct {
	ns    *nsmap.Map
	text  string
	attrs map[string]string
	ident string
}

// WithNamespaces seeds the record's context from an existing map.
func WithNamespaces(ns *nsmap.Map) RecordOption {
	return func(o *recordOpts) { o.ns = ns }
}

// WithText sets the root element's text content.
func WithText(text string) RecordOption {
	return func(o *recordOpts) { o.text = text }
}

// WithAttributes sets attributes on the root element.
func WithAttributes(attrs map[string]string) RecordOption {
	return func(o *recordOpts) { o.attrs = attrs }
}

// WithIdent overrides the derived identifier.
func WithIdent(ident string) RecordOption {
	return func(o *recordOpts) { o.ident = ident }
}

// New builds a Record from a pre-parsed element node, a tag, or both.
// With only a tag, a fresh empty element is created. Supplying neither
// is ErrConstruct.
func New(node *ir.Node, tag string, opts ...RecordOption) (*Record, error) {
	rOpts := &recordOpts{}
	for _, f := range opts {
		f(rOpts)
	}
	if node == nil && tag == "" {
		return nil, fmt.Errorf("%w: need one of node or tag", ErrConstruct)
	}
	ns := rOpts.ns
	if ns == nil {
		ns = nsmap.New()
	}
	if node == nil {
		node = ir.Object()
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: node is %s, not an element", ErrConstruct, node.Type)
	}
	if tag == "" {
		tag = node.ParentField
	}
	if tag == "" {
		return nil, fmt.Errorf("%w: detached node needs a tag", ErrConstruct)
	}
	shortTag := ns.Shorten(tag)
	if rOpts.text != "" {
		node.SetData(rOpts.text)
	}
	rec := &Record{
		Ident:   rOpts.ident,
		tag:     shortTag,
		root:    node,
		ns:      ns,
		nsCache: nsStale,
	}
	if rec.Ident == "" {
		rec.Ident = NewIdent(shortTag)
	}
	if rOpts.attrs != nil {
		rec.SetAttributes(rOpts.attrs)
	}
	return rec, nil
}

// FromXML decodes an XML document into a Record. Decode options pass
// through, e.g. decode.PreserveNamespaces(true).
func FromXML(d []byte, opts ...decode.DecodeOption) (*Record, error) {
	body, ns, err := decode.Decode(d, opts...)
	if err != nil {
		return nil, err
	}
	kv := body.Children()[0]
	return &Record{
		Ident: NewIdent(kv.Key.String),
		tag:   kv.Key.String,
		root:  kv.Val,
		ns:    ns,
		// decode registered every namespace it saw
		nsCache: nsFresh,
	}, nil
}

// FromJSON rebuilds a Record from a serialized body, the inverse of
// String.
func FromJSON(d []byte) (*Record, error) {
	body, ns, err := encode.DecodeJSON(d)
	if err != nil {
		return nil, err
	}
	kids := body.Children()
	if len(kids) != 1 {
		return nil, fmt.Errorf("%w: body has %d root tags, want 1", ErrConstruct, len(kids))
	}
	kv := kids[0]
	if kv.Val.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: root %s is %s, not an element",
			ErrConstruct, kv.Key.String, kv.Val.Type)
	}
	return &Record{
		Ident:   NewIdent(kv.Key.String),
		tag:     kv.Key.String,
		root:    kv.Val,
		ns:      ns,
		nsCache: nsStale,
	}, nil
}

// Tag returns the record's shortened root tag.
func (r *Record) Tag() string {
	return r.tag
}

// Node returns the underlying root element node.
func (r *Record) Node() *ir.Node {
	return r.root
}

// Body returns the record's body mapping: an object with the root tag
// as its single key. The wrapper is built fresh so the underlying tree
// keeps its parent links.
func (r *Record) Body() *ir.Node {
	return &ir.Node{
		Type: ir.ObjectType,
		Fields: []*ir.Node{{
			Type:   ir.StringType,
			String: r.tag,
		}},
		Values: []*ir.Node{r.root},
	}
}

// Namespaces returns the record's context, re-harvesting from the tree
// if a structural change has made the cache stale.
func (r *Record) Namespaces() *nsmap.Map {
	if r.nsCache == nsStale {
		r.ns.Harvest(r.root)
		r.nsCache = nsFresh
	}
	return r.ns
}

// GetAttribute reads a root attribute, resolving the name through the
// context so short and expanded forms address the same attribute.
func (r *Record) GetAttribute(name string) (string, bool) {
	if v, ok := r.root.Attribute(name); ok {
		return v, ok
	}
	ns := r.Namespaces()
	if uri, _, ok := nsmap.SplitClark(name); ok && uri != "" {
		return r.root.Attribute(ns.Shorten(name))
	}
	if _, _, ok := nsmap.SplitPrefixed(name); ok {
		if exp, err := ns.Expand(name); err == nil {
			return r.root.Attribute(exp)
		}
	}
	return "", false
}

// SetAttributes sets root attributes. A previously-unseen namespaced
// key registers its namespace in the context.
func (r *Record) SetAttributes(attrs map[string]string) {
	ns := r.Namespaces()
	for name, val := range attrs {
		r.root.SetAttribute(ns.Shorten(name), val)
	}
	r.nsCache = nsStale
}

// AddSubelement creates a child element with the given tag, text and
// attributes, attaches it under the repeated-tag rule and returns a
// Record view over it sharing this record's context.
func (r *Record) AddSubelement(tag, text string, attrs map[string]string) *Record {
	ns := r.Namespaces()
	key := ns.Shorten(tag)
	child := ir.Object()
	if text != "" {
		child.SetData(text)
	}
	for name, val := range attrs {
		child.SetAttribute(ns.Shorten(name), val)
	}
	r.root.AddChild(key, child)
	r.nsCache = nsStale
	return r.wrap(key, child)
}

// Append grafts another record's subtree onto this one. Every namespace
// the other record uses is imported into this record's context, and the
// grafted keys are re-shortened against the merged map so they stay
// resolvable even when prefix assignments collide.
func (r *Record) Append(other *Record) error {
	ns := r.Namespaces()
	otherNS := other.Namespaces()
	ns.Merge(otherNS)
	if err := rekey(other.root, otherNS, ns); err != nil {
		return err
	}
	key, err := rekeyName(other.tag, otherNS, ns)
	if err != nil {
		return err
	}
	other.tag = key
	other.ns = ns
	r.root.AddChild(key, other.root)
	r.nsCache = nsStale
	return nil
}

// Extend appends each record in argument order.
func (r *Record) Extend(others ...*Record) error {
	for _, o := range others {
		if err := r.Append(o); err != nil {
			return err
		}
	}
	return nil
}

// rekey rewrites the shortened element and attribute keys of a grafted
// subtree from the donor context into the merged one.
func rekey(root *ir.Node, from, to *nsmap.Map) error {
	return root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ObjectType {
			return true, nil
		}
		for i, field := range y.Fields {
			if ir.Reserved(field.String) {
				if field.String != ir.AttributesKey {
					continue
				}
				attrs := y.Values[i]
				for j, aField := range attrs.Fields {
					renamed, err := rekeyName(aField.String, from, to)
					if err != nil {
						return false, err
					}
					aField.String = renamed
					attrs.Values[j].ParentField = renamed
				}
				continue
			}
			renamed, err := rekeyName(field.String, from, to)
			if err != nil {
				return false, err
			}
			field.String = renamed
			y.Values[i].ParentField = renamed
		}
		return true, nil
	})
}

func rekeyName(key string, from, to *nsmap.Map) (string, error) {
	if _, _, ok := nsmap.SplitPrefixed(key); !ok {
		return key, nil
	}
	expanded, err := from.Expand(key)
	if err != nil {
		return "", err
	}
	return to.Shorten(expanded), nil
}

// Children returns Record views over the element children in document
// order, one per occurrence of a repeated tag.
func (r *Record) Children() []*Record {
	var res []*Record
	for _, kv := range r.root.Children() {
		if kv.Val.Type == ir.ArrayType {
			for _, occ := range kv.Val.Values {
				res = append(res, r.wrap(kv.Key.String, occ))
			}
			continue
		}
		res = append(res, r.wrap(kv.Key.String, kv.Val))
	}
	return res
}

// Parent returns a Record view over the enclosing element, or nil at
// the document root.
func (r *Record) Parent() *Record {
	p := r.root.Parent
	if p != nil && p.Type == ir.ArrayType {
		p = p.Parent
	}
	if p == nil || p.ParentField == "" {
		return nil
	}
	return r.wrap(p.ParentField, p)
}

// wrap makes a non-owning projection over a subtree node, sharing this
// record's context without forcing a re-harvest.
func (r *Record) wrap(tag string, node *ir.Node) *Record {
	if node.Type != ir.ObjectType {
		// scalar leaves become single-text elements when viewed
		wrapped := ir.Object()
		wrapped.SetData(node.ScalarString())
		node = wrapped
	}
	return &Record{
		Ident:   NewIdent(tag),
		tag:     tag,
		root:    node,
		ns:      r.ns,
		nsCache: r.nsCache,
	}
}

// XML serializes the record back to XML text.
func (r *Record) XML(opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(r.Body(), r.Namespaces(), buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Yaml renders the record's body as a human-readable indented tree.
// Pure formatting, safe to call repeatedly.
func (r *Record) Yaml(opts ...encode.EncodeOption) string {
	return encode.Yaml(r.Body(), opts...)
}

// String renders the record as JSON with the @context block first.
func (r *Record) String() string {
	d, err := encode.EncodeJSON(r.Body(), r.Namespaces())
	if err != nil {
		return fmt.Sprintf("<unencodable record %s: %v>", r.Ident, err)
	}
	return string(d)
}

// GoString renders a debug form exposing identifier, body and context.
func (r *Record) GoString() string {
	body, err := ir.ToJSON(r.Body())
	if err != nil {
		body = []byte(fmt.Sprintf("%v", err))
	}
	ctx, err := ir.ToJSON(r.Namespaces().ContextNode())
	if err != nil {
		ctx = []byte(fmt.Sprintf("%v", err))
	}
	return fmt.Sprintf("xjson.Record{Ident: %s, Tag: %s, Body: %s, Context: %s}",
		r.Ident, r.tag, body, ctx)
}
