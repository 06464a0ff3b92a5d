package xjson

import (
	"fmt"
	"sync"

	"github.com/geoanalytics/xjson-format/go-xjson/debug"
)

// Registry indexes records by identifier. It is safe for concurrent
// use; each caller owns its registry, there is no package-level one.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: map[string]*Record{}}
}

// Register adds the record under its identifier. When the identifier is
// already bound the existing record wins unless replaceExisting is set;
// the skipped registration is not an error.
func (g *Registry) Register(rec *Record, replaceExisting bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.records[rec.Ident]; ok && !replaceExisting {
		if debug.Registry() {
			debug.Logf("registry: %s already registered, skipping\n", rec.Ident)
		}
		return
	}
	g.records[rec.Ident] = rec
}

// Deregister removes the binding for ident. Unknown identifiers are
// ErrNotFound.
func (g *Registry) Deregister(ident string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.records[ident]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, ident)
	}
	delete(g.records, ident)
	return nil
}

// Lookup returns the record bound to ident, or nil.
func (g *Registry) Lookup(ident string) *Record {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.records[ident]
}

func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.records)
}
