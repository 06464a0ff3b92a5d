package decode

import (
	"errors"
	"strings"
	"testing"

	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

func TestDecodeScenario(t *testing.T) {
	body, ns, err := Decode([]byte(
		`<root xmlns:ex="urn:example"><ex:item val="7">hi</ex:item></root>`))
	if err != nil {
		t.Fatal(err)
	}
	root := ir.Get(body, "root")
	if root == nil {
		t.Fatalf("no root key, body keys %v", keys(body))
	}
	item := ir.Get(root, "ex:item")
	if item == nil {
		t.Fatalf("no ex:item key, root keys %v", keys(root))
	}
	if item.Data() != "hi" {
		t.Errorf("#data = %q", item.Data())
	}
	if v, ok := item.Attribute("val"); !ok || v != "7" {
		t.Errorf("val attribute = %q, %v", v, ok)
	}
	if uri, ok := ns.PrefixURI("ex"); !ok || uri != "urn:example" {
		t.Errorf("ex -> %q, %v", uri, ok)
	}
}

func TestDecodeRepeatedSiblings(t *testing.T) {
	body, _, err := Decode([]byte(`<a><b>1</b><b>2</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	b := ir.Get(ir.Get(body, "a"), "b")
	if b == nil || b.Type != ir.ArrayType {
		t.Fatalf("a.b should aggregate to an array, got %v", b)
	}
	if len(b.Values) != 2 {
		t.Fatalf("want 2 occurrences, got %d", len(b.Values))
	}
	if b.Values[0].Data() != "1" || b.Values[1].Data() != "2" {
		t.Errorf("order lost: %q, %q", b.Values[0].Data(), b.Values[1].Data())
	}
}

func TestDecodeWhitespace(t *testing.T) {
	body, _, err := Decode([]byte("<a>\n  <b>  padded  text  </b>\n</a>"))
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(body, "a")
	if a.Data() != "" {
		t.Errorf("whitespace-only text kept: %q", a.Data())
	}
	if got := ir.Get(a, "b").Data(); got != "padded  text" {
		t.Errorf("interior whitespace mangled: %q", got)
	}
}

func TestDecodeCDataRun(t *testing.T) {
	// the tokenizer splits one text run at CDATA boundaries; interior
	// whitespace of the run must survive
	body, _, err := Decode([]byte(`<a>foo <![CDATA[bar baz]]> qux</a>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(body, "a").Data(); got != "foo bar baz qux" {
		t.Errorf("#data = %q, want %q", got, "foo bar baz qux")
	}
	// runs on either side of a child element still trim at the edges
	body, _, err = Decode([]byte("<a>\n  one <b/> two\n</a>"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(body, "a").Data(); got != "onetwo" {
		t.Errorf("#data around child = %q, want %q", got, "onetwo")
	}
}

func TestDecodeNamespacedAttributes(t *testing.T) {
	body, ns, err := Decode([]byte(
		`<a xmlns:m="urn:meta" m:id="x1"><m:child/></a>`))
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(body, "a")
	if v, ok := a.Attribute("m:id"); !ok || v != "x1" {
		t.Errorf("m:id = %q, %v", v, ok)
	}
	if _, ok := a.Attribute("m:id"); !ok {
		t.Error("attribute lookup by short name failed")
	}
	if uri, _ := ns.PrefixURI("m"); uri != "urn:meta" {
		t.Errorf("m -> %q", uri)
	}
	if ir.Get(a, "m:child") == nil {
		t.Errorf("m:child missing, keys %v", keys(a))
	}
}

func TestDecodePreserve(t *testing.T) {
	body, _, err := Decode([]byte(
		`<root xmlns:ex="urn:example"><ex:item/></root>`),
		PreserveNamespaces(true))
	if err != nil {
		t.Fatal(err)
	}
	root := ir.Get(body, "root")
	if ir.Get(root, "{urn:example}item") == nil {
		t.Errorf("preserve mode should keep URIs as keys, got %v", keys(root))
	}
}

func TestDecodeUndeclaredPrefixMinted(t *testing.T) {
	// no xmlns declaration for the default namespace prefix
	body, ns, err := Decode([]byte(`<a xmlns="urn:default"><b/></a>`))
	if err != nil {
		t.Fatal(err)
	}
	if ns.Len() != 1 {
		t.Fatalf("want 1 namespace, got %d", ns.Len())
	}
	p, ok := ns.URIPrefix("urn:default")
	if !ok {
		t.Fatal("default namespace not registered")
	}
	if ir.Get(body, p+":a") == nil {
		t.Errorf("root not under minted prefix %q, keys %v", p, keys(body))
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{
		``,
		`<a><b></a>`,
		`<a>`,
		`<a></a><b></b>`,
		`text only`,
		`<a></a> trailing`,
	} {
		_, _, err := Decode([]byte(in))
		if err == nil {
			t.Errorf("%q: want parse error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: error %v does not wrap ErrParse", in, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, _, err := Decode([]byte("<a>\n<b></a>"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want *ParseError, got %T", err)
	}
	if pe.Pos == nil || pe.Pos.I == 0 {
		t.Errorf("position missing: %v", pe.Pos)
	}
	if pe.Pos.Line() != 1 {
		t.Errorf("line = %d, want 1", pe.Pos.Line())
	}
	if !strings.Contains(err.Error(), "offset") {
		t.Errorf("error text lacks offset: %v", err)
	}
}

func keys(y *ir.Node) []string {
	var res []string
	for _, f := range y.Fields {
		res = append(res, f.String)
	}
	return res
}
