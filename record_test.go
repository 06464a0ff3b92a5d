package xjson

import (
	"errors"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

const boreholeXML = `<wfs:FeatureCollection xmlns:wfs="http://www.opengis.net/wfs"
    xmlns:nvcl="http://www.auscope.org/nvcl" xmlns:xlink="http://www.w3.org/1999/xlink">
  <wfs:member>
    <nvcl:scannedBorehole xlink:href="http://nvcl.example/borehole/WTB5" xlink:title="WTB5"/>
    <nvcl:scannedBorehole xlink:href="http://nvcl.example/borehole/GSDD7" xlink:title="GSDD7"/>
  </wfs:member>
  <wfs:member>
    <nvcl:log nvcl:logID="a-b-c">Chlorite</nvcl:log>
  </wfs:member>
</wfs:FeatureCollection>`

func TestFromXML(t *testing.T) {
	rec, err := FromXML([]byte(boreholeXML))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Tag() != "wfs:FeatureCollection" {
		t.Errorf("tag = %q", rec.Tag())
	}
	if rec.Ident == "" {
		t.Error("no ident derived")
	}
	uri, ok := rec.Namespaces().PrefixURI("nvcl")
	if !ok || uri != "http://www.auscope.org/nvcl" {
		t.Errorf("nvcl -> %q, %v", uri, ok)
	}
}

func TestNewConstruct(t *testing.T) {
	if _, err := New(nil, ""); !errors.Is(err, ErrConstruct) {
		t.Errorf("nil node and empty tag: %v", err)
	}
	if _, err := New(ir.FromString("x"), "tag"); !errors.Is(err, ErrConstruct) {
		t.Errorf("scalar node: %v", err)
	}
	rec, err := New(nil, "{urn:example}site",
		WithText("hq"),
		WithAttributes(map[string]string{"{urn:example}id": "s1"}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(rec.Tag(), ":site") {
		t.Errorf("tag not shortened: %q", rec.Tag())
	}
	if rec.Node().Data() != "hq" {
		t.Errorf("#data = %q", rec.Node().Data())
	}
	if v, ok := rec.GetAttribute("{urn:example}id"); !ok || v != "s1" {
		t.Errorf("expanded-form attribute lookup: %q, %v", v, ok)
	}
}

func TestNewWithIdent(t *testing.T) {
	rec, err := New(nil, "a", WithIdent("custom-id"))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Ident != "custom-id" {
		t.Errorf("ident = %q", rec.Ident)
	}
}

func TestGetAttributeForms(t *testing.T) {
	rec, err := FromXML([]byte(boreholeXML))
	if err != nil {
		t.Fatal(err)
	}
	hole, err := rec.Find(PathQuery, ".//nvcl:scannedBorehole")
	if err != nil {
		t.Fatal(err)
	}
	if hole == nil {
		t.Fatal("no scannedBorehole match")
	}
	want := "http://nvcl.example/borehole/WTB5"
	for _, name := range []string{
		"xlink:href",
		"{http://www.w3.org/1999/xlink}href",
	} {
		if v, ok := hole.GetAttribute(name); !ok || v != want {
			t.Errorf("GetAttribute(%q) = %q, %v", name, v, ok)
		}
	}
	if _, ok := hole.GetAttribute("xlink:nope"); ok {
		t.Error("absent attribute reported present")
	}
}

func TestBodyKeepsParentLinks(t *testing.T) {
	rec, err := FromXML([]byte(`<a><b/></a>`))
	if err != nil {
		t.Fatal(err)
	}
	before := rec.Node().Parent
	body := rec.Body()
	if ir.Get(body, "a") != rec.Node() {
		t.Fatal("body does not expose the root node")
	}
	if rec.Node().Parent != before {
		t.Error("Body() reparented the root")
	}
}

func TestStringRoundTrip(t *testing.T) {
	rec, err := FromXML([]byte(boreholeXML))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := gojson.Unmarshal([]byte(rec.String()), &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["@context"]; !ok {
		t.Error("no @context in String() output")
	}
	if _, ok := m["wfs:FeatureCollection"]; !ok {
		t.Errorf("root tag missing, keys %v", mapKeys(m))
	}
}

func TestFromJSONRoundTrip(t *testing.T) {
	rec, err := FromXML([]byte(boreholeXML))
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromJSON([]byte(rec.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(rec.Body(), again.Body()) {
		t.Errorf("json round trip changed the body:\n%s\nvs\n%s",
			rec.Yaml(), again.Yaml())
	}
	if _, ok := again.Namespaces().URIPrefix("http://www.auscope.org/nvcl"); !ok {
		t.Error("context lost across json round trip")
	}
}

func TestAddSubelement(t *testing.T) {
	rec, err := New(nil, "root")
	if err != nil {
		t.Fatal(err)
	}
	child := rec.AddSubelement("{urn:obs}sample", "granite",
		map[string]string{"depth": "12.5"})
	if child.Node().Data() != "granite" {
		t.Errorf("#data = %q", child.Node().Data())
	}
	if _, ok := rec.Namespaces().URIPrefix("urn:obs"); !ok {
		t.Error("new namespace not registered in context")
	}
	// second occurrence aggregates
	rec.AddSubelement("{urn:obs}sample", "shale", nil)
	kids := rec.Children()
	if len(kids) != 2 {
		t.Fatalf("want 2 children, got %d", len(kids))
	}
	if kids[0].Node().Data() != "granite" || kids[1].Node().Data() != "shale" {
		t.Error("document order lost across repeated tags")
	}
}

func TestAppendMergesContexts(t *testing.T) {
	a, err := FromXML([]byte(`<a xmlns:ex="urn:one"><ex:x>1</ex:x></a>`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromXML([]byte(`<ex:b xmlns:ex="urn:two"><ex:y>2</ex:y></ex:b>`))
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Append(b); err != nil {
		t.Fatal(err)
	}
	ns := a.Namespaces()
	if uri, _ := ns.PrefixURI("ex"); uri != "urn:one" {
		t.Errorf("host binding rebound: ex -> %q", uri)
	}
	if _, ok := ns.URIPrefix("urn:two"); !ok {
		t.Fatal("donor namespace not merged")
	}
	// the grafted subtree must resolve through the merged map
	y, err := a.Find(PathQuery, ".//{urn:two}y")
	if err != nil {
		t.Fatal(err)
	}
	if y == nil || y.Node().Data() != "2" {
		t.Fatalf("grafted element unresolvable: %v", y)
	}
	// and the host's own binding still addresses the original subtree
	x, err := a.Find(PathQuery, "{urn:one}x")
	if err != nil {
		t.Fatal(err)
	}
	if x == nil || x.Node().Data() != "1" {
		t.Fatalf("host element lost: %v", x)
	}
}

func TestExtendOrder(t *testing.T) {
	root, err := New(nil, "root")
	if err != nil {
		t.Fatal(err)
	}
	var parts []*Record
	for _, text := range []string{"1", "2", "3"} {
		p, err := New(nil, "part", WithText(text))
		if err != nil {
			t.Fatal(err)
		}
		parts = append(parts, p)
	}
	if err := root.Extend(parts...); err != nil {
		t.Fatal(err)
	}
	kids := root.Children()
	if len(kids) != 3 {
		t.Fatalf("want 3 children, got %d", len(kids))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := kids[i].Node().Data(); got != want {
			t.Errorf("child %d = %q, want %q", i, got, want)
		}
	}
}

func TestChildrenParent(t *testing.T) {
	rec, err := FromXML([]byte(`<a><b><c/></b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	b := rec.Children()[0]
	if b.Tag() != "b" {
		t.Fatalf("child tag = %q", b.Tag())
	}
	c := b.Children()[0]
	if p := c.Parent(); p == nil || p.Tag() != "b" {
		t.Errorf("parent of c = %v", p)
	}
	if p := rec.Parent(); p != nil {
		t.Errorf("document root has parent %v", p)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	rec, err := FromXML([]byte(boreholeXML))
	if err != nil {
		t.Fatal(err)
	}
	out, err := rec.XML()
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromXML(out)
	if err != nil {
		t.Fatalf("re-decode failed: %v\n%s", err, out)
	}
	if !ir.Equal(rec.Body(), again.Body()) {
		t.Errorf("round trip changed the body:\n%s\nvs\n%s", rec.Yaml(), again.Yaml())
	}
}

func mapKeys(m map[string]any) []string {
	var res []string
	for k := range m {
		res = append(res, k)
	}
	return res
}
