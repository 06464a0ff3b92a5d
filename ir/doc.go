// Package ir provides the intermediate representation for decoded XML
// documents: the "body mapping".
//
// # Overview
//
// A body mapping is a tree of nodes. Object nodes keep their fields in
// document order so that repeated re-serialization is deterministic and
// repeated XML siblings keep their relative order. Three keys are
// reserved and never denote child elements:
//
//   - "#data": element text content
//   - "#attributes": an object of attribute name -> value
//   - "@context": the namespace prefix table (top level only)
//
// Every other key of an object node is a (namespace-shortened) child tag
// name. When the same tag occurs more than once among the children of one
// parent, its value is an array node holding one object per occurrence,
// in document order. This is the repeated-tag aggregation rule; it is how
// sibling multiplicity survives the JSON-shaped representation.
//
// # Node Structure
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Keys are unique within
// one object; aggregation replaces duplicates with a single array-valued
// key. Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField) for upward navigation.
//
// # Equality
//
// Equal compares two trees structurally: object fields are compared
// without regard to order, array elements in order. See Equal.
//
// # JSON Interoperability
//
// ToJSON/FromJSON serialize a body mapping preserving field order, which
// the stock map-based JSON codecs cannot do.
//
// # Thread Safety
//
// Node structures are not thread-safe. Each decoded document owns its
// tree; share nothing across concurrent decodes.
package ir
