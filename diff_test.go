package xjson

import (
	"strings"
	"testing"
)

func TestDiffEqualRecords(t *testing.T) {
	a, err := FromXML([]byte(`<a><b>1</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromXML([]byte(`<a><b>1</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	if d := Diff(a, b); d != "" {
		t.Errorf("equal records diff to %q", d)
	}
}

func TestDiffChangedText(t *testing.T) {
	a, err := FromXML([]byte(`<a><b>1</b><c>x</c></a>`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromXML([]byte(`<a><b>2</b><c>x</c></a>`))
	if err != nil {
		t.Fatal(err)
	}
	d := Diff(a, b)
	if !strings.Contains(d, "-  b: 1") {
		t.Errorf("missing deletion line:\n%s", d)
	}
	if !strings.Contains(d, "+  b: 2") {
		t.Errorf("missing insertion line:\n%s", d)
	}
	if !strings.Contains(d, "   c: x") {
		t.Errorf("missing unchanged line:\n%s", d)
	}
}
