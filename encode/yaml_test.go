package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/geoanalytics/xjson-format/go-xjson/decode"
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

func yamlOf(t *testing.T, doc string) string {
	t.Helper()
	body, _, err := decode.Decode([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return Yaml(body)
}

func TestYamlScenario(t *testing.T) {
	got := yamlOf(t,
		`<root xmlns:ex="urn:example"><ex:item val="7">hi</ex:item></root>`)
	want := "root:" +
		"\n  ex:item: hi" +
		"\n    @val: 7"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestYamlRepeatedTags(t *testing.T) {
	got := yamlOf(t, `<a><b>1</b><b>2</b></a>`)
	want := "a:" +
		"\n  b: 1" +
		"\n  b: 2"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestYamlNullAndList(t *testing.T) {
	body := ir.Object()
	root := ir.Object()
	root.SetField("missing", ir.Null())
	root.SetField("vals", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))
	body.SetField("root", root)

	got := Yaml(body)
	want := "root:" +
		"\n  missing: None" +
		"\n  vals: [" +
		"\n    1" +
		"\n    2" +
		"\n    ]"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestYamlIndentWidth(t *testing.T) {
	got := yamlOf(t, `<a><b>x</b></a>`)
	if got != "a:\n  b: x" {
		t.Errorf("default indent: %q", got)
	}
	body, _, err := decode.Decode([]byte(`<a><b>x</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := Yaml(body, Indent(4)); got != "a:\n    b: x" {
		t.Errorf("indent 4: %q", got)
	}
}

func TestYamlPure(t *testing.T) {
	body, _, err := decode.Decode([]byte(`<a><b>1</b><b>2</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	before := body.Clone()
	Yaml(body)
	Yaml(body)
	if !ir.Equal(before, body) {
		t.Error("Yaml mutated the body")
	}
}

func TestYamlSkipsContext(t *testing.T) {
	body := ir.Object()
	body.SetField(ir.ContextKey, ir.Object())
	root := ir.Object()
	root.SetData("x")
	body.SetField("root", root)
	if got := Yaml(body); got != "root: x" {
		t.Errorf("got %q", got)
	}
}
