package xjson

import (
	"regexp"
	"testing"
)

var uuidRe = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-5[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewIdent(t *testing.T) {
	id := NewIdent("wfs:FeatureCollection")
	if !uuidRe.MatchString(id) {
		t.Errorf("ident %q is not a v5 uuid", id)
	}
	if NewIdent("wfs:FeatureCollection") != id {
		t.Error("derivation not deterministic")
	}
	if NewIdent("nvcl:log") == id {
		t.Error("distinct tags collide")
	}
}

func TestIdentityEqual(t *testing.T) {
	a, err := New(nil, "site")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(nil, "site")
	if err != nil {
		t.Fatal(err)
	}
	if !IdentityOf(a).Equal(IdentityOf(b)) {
		t.Error("same tag should derive the same identity")
	}
	c, err := New(nil, "site", WithIdent("other"))
	if err != nil {
		t.Fatal(err)
	}
	if IdentityOf(a).Equal(IdentityOf(c)) {
		t.Error("overridden ident should not equal the derived one")
	}
}
