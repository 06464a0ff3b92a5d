package ir

import "testing"

func obj(kvs ...any) *Node {
	res := Object()
	for i := 0; i < len(kvs); i += 2 {
		res.SetField(kvs[i].(string), kvs[i+1].(*Node))
	}
	return res
}

func TestEqualIgnoresFieldOrder(t *testing.T) {
	a := obj("x", FromString("1"), "y", FromString("2"))
	b := obj("y", FromString("2"), "x", FromString("1"))
	if !Equal(a, b) {
		t.Error("field order should not affect equality")
	}
}

func TestEqualArraysAreOrdered(t *testing.T) {
	a := FromSlice([]*Node{FromString("1"), FromString("2")})
	b := FromSlice([]*Node{FromString("2"), FromString("1")})
	if Equal(a, b) {
		t.Error("array order is significant")
	}
	if !Equal(a, a.Clone()) {
		t.Error("identical arrays should be equal")
	}
}

func TestEqualMismatches(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *Node
	}{
		{"type", FromString("1"), FromInt(1)},
		{"string", FromString("a"), FromString("b")},
		{"bool", FromBool(true), FromBool(false)},
		{"int", FromInt(1), FromInt(2)},
		{"int-float", FromInt(1), FromFloat(1)},
		{"missing-key", obj("x", Null()), obj("y", Null())},
		{"extra-key", obj("x", Null()), obj("x", Null(), "y", Null())},
		{"len", FromSlice([]*Node{Null()}), FromSlice(nil)},
	} {
		if Equal(tc.a, tc.b) {
			t.Errorf("%s: should not be equal", tc.name)
		}
	}
}

func TestEqualNested(t *testing.T) {
	mk := func() *Node {
		inner := obj("#data", FromString("hi"))
		return obj("root", obj("a", FromSlice([]*Node{inner, Null()})))
	}
	if !Equal(mk(), mk()) {
		t.Error("structurally identical nested trees should be equal")
	}
}
