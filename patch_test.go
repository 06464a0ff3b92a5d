package xjson

import "testing"

func TestPatchReplace(t *testing.T) {
	rec, err := FromXML([]byte(
		`<a xmlns:ex="urn:example"><ex:item val="7">hi</ex:item></a>`))
	if err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[
		{"op": "replace", "path": "/a/ex:item/#data", "value": "bye"},
		{"op": "replace", "path": "/a/ex:item/#attributes/val", "value": "8"}
	]`)
	if err := rec.Patch(patch); err != nil {
		t.Fatal(err)
	}
	item, err := rec.Find(PathQuery, "ex:item")
	if err != nil {
		t.Fatal(err)
	}
	if item.Node().Data() != "bye" {
		t.Errorf("#data = %q", item.Node().Data())
	}
	if v, _ := item.GetAttribute("val"); v != "8" {
		t.Errorf("val = %q", v)
	}
}

func TestPatchAdd(t *testing.T) {
	rec, err := FromXML([]byte(`<a><b>1</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[{"op": "add", "path": "/a/c", "value": {"#data": "2"}}]`)
	if err := rec.Patch(patch); err != nil {
		t.Fatal(err)
	}
	c, err := rec.Find(PathQuery, "c")
	if err != nil {
		t.Fatal(err)
	}
	if c == nil || c.Node().Data() != "2" {
		t.Fatalf("added element missing: %v", c)
	}
}

func TestPatchCannotRemoveRoot(t *testing.T) {
	rec, err := FromXML([]byte(`<a><b>1</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Patch([]byte(`[{"op": "remove", "path": "/a"}]`)); err == nil {
		t.Fatal("removing the root tag should fail")
	}
	// failed patches leave the record untouched
	b, err := rec.Find(PathQuery, "b")
	if err != nil {
		t.Fatal(err)
	}
	if b == nil || b.Node().Data() != "1" {
		t.Errorf("record changed by failed patch: %v", b)
	}
}

func TestPatchMalformed(t *testing.T) {
	rec, err := FromXML([]byte(`<a/>`))
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Patch([]byte(`not json`)); err == nil {
		t.Error("malformed patch accepted")
	}
}
