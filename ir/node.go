package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Reserved keys of a body mapping. Any key starting with '#' or '@' is
// reserved; these three are the ones the codec produces.
const (
	DataKey       = "#data"
	AttributesKey = "#attributes"
	ContextKey    = "@context"
)

// Reserved reports whether key is reserved (not a child tag name).
func Reserved(key string) bool {
	if key == "" {
		return false
	}
	return key[0] == '#' || key[0] == '@'
}

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node, the frame the decoder pushes per
// element-start event.
func Object() *Node {
	return &Node{Type: ObjectType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node with keys in sorted order. Decoded
// documents never pass through here; it serves programmatic construction
// where no document order exists.
func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.SetField(key, yMap[key])
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// SetField sets key to val, replacing an existing binding in place or
// appending a new one at the end of the field order.
func (y *Node) SetField(key string, val *Node) {
	val.ParentField = key
	for i := range y.Fields {
		if y.Fields[i].String == key {
			val.Parent = y
			val.ParentIndex = i
			y.Values[i] = val
			return
		}
	}
	i := len(y.Fields)
	val.Parent = y
	val.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
		Type:        StringType,
		String:      key,
	})
	y.Values = append(y.Values, val)
}

// AddChild attaches val under key applying the repeated-tag rule: a first
// occurrence binds directly, later occurrences convert the binding to an
// array and append, preserving document order.
func (y *Node) AddChild(key string, val *Node) {
	prev := Get(y, key)
	if prev == nil {
		y.SetField(key, val)
		return
	}
	if prev.Type == ArrayType {
		val.Parent = prev
		val.ParentIndex = len(prev.Values)
		val.ParentField = key
		prev.Values = append(prev.Values, val)
		return
	}
	val.ParentField = key
	agg := FromSlice([]*Node{prev, val})
	y.SetField(key, agg)
}

// Data returns the node's "#data" text, or "" if absent.
func (y *Node) Data() string {
	d := Get(y, DataKey)
	if d == nil {
		return ""
	}
	return d.String
}

func (y *Node) SetData(text string) {
	y.SetField(DataKey, FromString(text))
}

// Attributes returns the "#attributes" object node, or nil.
func (y *Node) Attributes() *Node {
	return Get(y, AttributesKey)
}

// Attribute returns the value bound to name under "#attributes".
func (y *Node) Attribute(name string) (string, bool) {
	attrs := y.Attributes()
	if attrs == nil {
		return "", false
	}
	v := Get(attrs, name)
	if v == nil {
		return "", false
	}
	return v.String, true
}

// SetAttribute binds name to value under "#attributes", creating the
// attributes object on first use.
func (y *Node) SetAttribute(name, value string) {
	attrs := y.Attributes()
	if attrs == nil {
		attrs = Object()
		y.SetField(AttributesKey, attrs)
	}
	attrs.SetField(name, FromString(value))
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// Children returns the non-reserved fields in document order. Array
// values (aggregated repeats) come back as single KeyVals; callers
// needing per-occurrence access iterate the array themselves.
func (y *Node) Children() []KeyVal {
	var res []KeyVal
	for i := range y.Fields {
		if Reserved(y.Fields[i].String) {
			continue
		}
		res = append(res, KeyVal{Key: y.Fields[i], Val: y.Values[i]})
	}
	return res
}

// ScalarString renders a leaf node as text, the dual of unknown-leaf
// handling on decode.
func (y *Node) ScalarString() string {
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return ""
	case NullType:
		return ""
	}
	return ""
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
