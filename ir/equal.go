package ir

// Equal reports structural equality of two body mappings. Object fields
// are compared by key without regard to field order; array values
// (aggregated same-tag repeats) are compared element by element in
// order, where order is significant.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NumberType:
		return equalNumbers(a, b)
	case StringType:
		return a.String == b.String
	case BoolType:
		return a.Bool == b.Bool
	case ArrayType:
		return equalArrays(a, b)
	case ObjectType:
		return equalObjects(a, b)
	case NullType:
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	if (a.Int64 == nil) != (b.Int64 == nil) {
		return false
	}
	if (a.Float64 == nil) != (b.Float64 == nil) {
		return false
	}
	if a.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Float64 != nil {
		return *a.Float64 == *b.Float64
	}
	return true
}

func equalArrays(a, b *Node) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func equalObjects(a, b *Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	bMap := ToMap(b)
	for i, field := range a.Fields {
		bv, ok := bMap[field.String]
		if !ok {
			return false
		}
		if !Equal(a.Values[i], bv) {
			return false
		}
	}
	return true
}
