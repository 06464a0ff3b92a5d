// Package nsmap maintains the bidirectional namespace URI <-> prefix
// table ("context") accompanying a decoded document.
//
// Fully qualified names use Clark notation, "{uri}local"; shortened names
// use "prefix:local". Within one Map the URI -> prefix assignment is
// injective and stable: once a URI gets a prefix, that binding never
// changes for the lifetime of the Map, so shortened keys written early in
// a document remain valid throughout. The Map only grows.
//
// A Map is owned by a single document graph and is not safe for
// concurrent mutation.
package nsmap

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

type Map struct {
	uriToPrefix map[string]string
	prefixToURI map[string]string
	nextID      int
}

func New() *Map {
	return &Map{
		uriToPrefix: map[string]string{},
		prefixToURI: map[string]string{},
	}
}

// SplitClark splits "{uri}local" into its URI and local parts.
func SplitClark(name string) (uri, local string, ok bool) {
	if !strings.HasPrefix(name, "{") {
		return "", name, false
	}
	end := strings.IndexByte(name, '}')
	if end < 0 {
		return "", name, false
	}
	return name[1:end], name[end+1:], true
}

// SplitPrefixed splits "prefix:local" into its prefix and local parts.
// Clark-notation names are not prefixed names even though they may
// contain colons.
func SplitPrefixed(name string) (prefix, local string, ok bool) {
	if strings.HasPrefix(name, "{") {
		return "", name, false
	}
	i := strings.IndexByte(name, ':')
	if i < 0 {
		return "", name, false
	}
	return name[:i], name[i+1:], true
}

// AddURI returns the prefix for uri, minting a fresh one on first sight.
// The returned prefix is stable for the lifetime of the Map.
func (m *Map) AddURI(uri string) string {
	if p, ok := m.uriToPrefix[uri]; ok {
		return p
	}
	return m.bind(m.mint(), uri)
}

// AddBinding registers uri under the document-declared prefix when that
// prefix is still free, minting a fresh one otherwise. A URI seen before
// keeps its original prefix regardless of later declarations.
func (m *Map) AddBinding(prefix, uri string) string {
	if p, ok := m.uriToPrefix[uri]; ok {
		return p
	}
	if prefix == "" {
		prefix = m.mint()
	} else if _, taken := m.prefixToURI[prefix]; taken {
		prefix = m.mint()
	}
	return m.bind(prefix, uri)
}

func (m *Map) bind(prefix, uri string) string {
	m.uriToPrefix[uri] = prefix
	m.prefixToURI[prefix] = uri
	return prefix
}

func (m *Map) mint() string {
	for {
		p := "ns" + strconv.Itoa(m.nextID)
		m.nextID++
		if _, taken := m.prefixToURI[p]; !taken {
			return p
		}
	}
}

// AddFromTag registers the namespace of a "{uri}local" qualified tag.
// Prefixed and bare names carry no URI to register and are no-ops.
func (m *Map) AddFromTag(tag string) {
	if uri, _, ok := SplitClark(tag); ok && uri != "" {
		m.AddURI(uri)
	}
}

// Shorten converts "{uri}local" to "prefix:local", registering the URI
// first if unknown. Bare and already-shortened names pass through
// unchanged; in particular the no-namespace case shortens to itself.
func (m *Map) Shorten(name string) string {
	uri, local, ok := SplitClark(name)
	if !ok || uri == "" {
		return name
	}
	return m.AddURI(uri) + ":" + local
}

// Expand converts "prefix:local" to "{uri}local". It is the exact
// inverse of Shorten for any registered namespace. An unknown prefix is
// an error; Expand never fabricates a namespace.
func (m *Map) Expand(name string) (string, error) {
	prefix, local, ok := SplitPrefixed(name)
	if !ok {
		return name, nil
	}
	uri, known := m.prefixToURI[prefix]
	if !known {
		return "", fmt.Errorf("%w: unknown prefix %q in %q", ErrResolve, prefix, name)
	}
	return "{" + uri + "}" + local, nil
}

// URIPrefix returns the prefix assigned to uri.
func (m *Map) URIPrefix(uri string) (string, bool) {
	p, ok := m.uriToPrefix[uri]
	return p, ok
}

// PrefixURI returns the URI bound to prefix.
func (m *Map) PrefixURI(prefix string) (string, bool) {
	u, ok := m.prefixToURI[prefix]
	return u, ok
}

func (m *Map) Len() int {
	return len(m.prefixToURI)
}

// Prefixes returns the registered prefixes in sorted order.
func (m *Map) Prefixes() []string {
	return slices.Sorted(maps.Keys(m.prefixToURI))
}

// Merge imports every binding of other, minting fresh prefixes for
// colliding ones. Existing bindings are never changed.
func (m *Map) Merge(other *Map) {
	for _, p := range other.Prefixes() {
		m.AddBinding(p, other.prefixToURI[p])
	}
}

// Harvest walks every element and attribute name of a body mapping
// depth-first and registers each Clark-notation namespace it encounters.
// Used to resynchronize the map after bulk structural changes.
func (m *Map) Harvest(root *ir.Node) {
	if root == nil {
		return
	}
	root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ObjectType {
			return true, nil
		}
		for _, field := range y.Fields {
			if !ir.Reserved(field.String) {
				m.AddFromTag(field.String)
			}
		}
		if attrs := y.Attributes(); attrs != nil {
			for _, field := range attrs.Fields {
				m.AddFromTag(field.String)
			}
		}
		return true, nil
	})
}

// ContextNode renders the map as an "@context" object node, prefixes in
// sorted order for deterministic output.
func (m *Map) ContextNode() *ir.Node {
	res := ir.Object()
	for _, p := range m.Prefixes() {
		res.SetField(p, ir.FromString(m.prefixToURI[p]))
	}
	return res
}

// FromContextNode rebuilds a Map from a serialized "@context" object.
func FromContextNode(node *ir.Node) (*Map, error) {
	res := New()
	if node == nil {
		return res, nil
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: @context is %s, not an object", ErrResolve, node.Type)
	}
	for i, field := range node.Fields {
		val := node.Values[i]
		if val.Type != ir.StringType {
			return nil, fmt.Errorf("%w: @context value for %q is %s", ErrResolve, field.String, val.Type)
		}
		res.AddBinding(field.String, val.String)
	}
	return res, nil
}
