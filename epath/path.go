// Package epath implements ElementPath-flavored path expressions over
// body mappings.
//
// A path is a '/'-separated sequence of (namespace-shortened) tag names
// evaluated relative to a starting element:
//
//   - "a/b" matches b children of a children of the start node
//   - "./a" is the same as "a"
//   - ".//b" (or "//b") matches b elements at any depth
//   - "a//b" matches b anywhere below an a child
//   - "*" matches any child tag
//
// Paths may use any name form the context can normalize: "pfx:local",
// "{uri}local" or a bare local name. Repeated-tag arrays are transparent:
// a segment matching an aggregated key yields one result per occurrence,
// in document order. There is no predicate or index syntax; this is a
// thin convenience over the tree, not an XPath engine.
package epath

import (
	"fmt"
	"strings"
)

// Path is one parsed segment of a path expression, linked to the next.
type Path struct {
	Name    string // tag to match; "*" matches any child
	Descend bool   // match at any depth below, not just direct children
	Next    *Path
}

// Parse parses a path expression into linked segments.
func Parse(expr string) (*Path, error) {
	s := expr
	descend := false
	switch {
	case strings.HasPrefix(s, ".//"):
		descend = true
		s = s[3:]
	case strings.HasPrefix(s, "//"):
		descend = true
		s = s[2:]
	case strings.HasPrefix(s, "./"):
		s = s[2:]
	case strings.HasPrefix(s, "/"):
		return nil, fmt.Errorf("%w: absolute path %q", ErrPath, expr)
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty path %q", ErrPath, expr)
	}
	pieces, err := splitSegments(expr, s)
	if err != nil {
		return nil, err
	}
	var head, tail *Path
	for _, piece := range pieces {
		if piece == "" {
			// the empty piece between "a//b"
			if descend {
				return nil, fmt.Errorf("%w: bad separator in %q", ErrPath, expr)
			}
			descend = true
			continue
		}
		seg := &Path{Name: piece, Descend: descend}
		descend = false
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	if head == nil || descend {
		return nil, fmt.Errorf("%w: trailing separator in %q", ErrPath, expr)
	}
	return head, nil
}

// splitSegments splits s on '/' separators. A '/' inside a Clark
// "{uri}..." name is part of the URI, not a separator, so http-style
// namespaces stay in one piece.
func splitSegments(expr, s string) ([]string, error) {
	var pieces []string
	start := 0
	inBrace := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			inBrace = true
		case '}':
			inBrace = false
		case '/':
			if inBrace {
				continue
			}
			pieces = append(pieces, s[start:i])
			start = i + 1
		}
	}
	if inBrace {
		return nil, fmt.Errorf("%w: unterminated '{' in %q", ErrPath, expr)
	}
	return append(pieces, s[start:]), nil
}

func (p *Path) String() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for x := p; x != nil; x = x.Next {
		if x.Descend {
			b.WriteString("//")
		} else if x != p {
			b.WriteString("/")
		}
		b.WriteString(x.Name)
	}
	return b.String()
}
