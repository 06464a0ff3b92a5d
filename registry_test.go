package xjson

import (
	"errors"
	"testing"
)

func TestRegistryRegisterLookup(t *testing.T) {
	g := NewRegistry()
	rec, err := New(nil, "a")
	if err != nil {
		t.Fatal(err)
	}
	g.Register(rec, false)
	if g.Lookup(rec.Ident) != rec {
		t.Error("lookup after register failed")
	}
	if g.Len() != 1 {
		t.Errorf("len = %d", g.Len())
	}
}

func TestRegistryDedup(t *testing.T) {
	g := NewRegistry()
	first, err := New(nil, "a", WithIdent("shared"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(nil, "b", WithIdent("shared"))
	if err != nil {
		t.Fatal(err)
	}
	g.Register(first, false)
	g.Register(second, false)
	if g.Lookup("shared") != first {
		t.Error("existing record should win without replaceExisting")
	}
	g.Register(second, true)
	if g.Lookup("shared") != second {
		t.Error("replaceExisting should rebind")
	}
	if g.Len() != 1 {
		t.Errorf("len = %d", g.Len())
	}
}

func TestRegistryDeregister(t *testing.T) {
	g := NewRegistry()
	rec, err := New(nil, "a")
	if err != nil {
		t.Fatal(err)
	}
	g.Register(rec, false)
	if err := g.Deregister(rec.Ident); err != nil {
		t.Fatal(err)
	}
	if g.Lookup(rec.Ident) != nil {
		t.Error("record still resolvable after deregister")
	}
	if err := g.Deregister(rec.Ident); !errors.Is(err, ErrNotFound) {
		t.Errorf("double deregister: %v", err)
	}
}
