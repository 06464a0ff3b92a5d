// Package xjson converts namespaced XML documents into a JSON-LD
// flavored nested mapping ("body" + "@context") and back, preserving
// element order, repeated siblings, attributes, text content and
// namespace prefixes well enough to round-trip and to be queried with
// path expressions. It targets scientific and geospatial XML dialects
// (GeoSciML and friends) where namespace-qualified tags and mixed
// content are the norm.
//
// # Usage
//
//	rec, err := xjson.FromXML(xmlBytes)
//	if err != nil {
//	    return err
//	}
//
//	// path queries use the record's own namespace prefixes
//	holes, err := rec.Query(xjson.PathQuery, ".//nvcl:scannedBorehole")
//
//	// back out: JSON with the @context block first, XML, or a
//	// human-readable tree
//	fmt.Println(rec)
//	xmlOut, err := rec.XML()
//	fmt.Println(rec.Yaml())
//
// A Record owns its body mapping and shares its namespace context with
// every Record produced by navigating into its own subtree. Records are
// not safe for concurrent mutation; process each document on one
// goroutine or clone first. The Registry is the one synchronized type in
// the package.
//
// # Related Packages
//
//   - github.com/geoanalytics/xjson-format/go-xjson/ir - body mapping representation
//   - github.com/geoanalytics/xjson-format/go-xjson/nsmap - namespace context
//   - github.com/geoanalytics/xjson-format/go-xjson/decode - XML to body mapping
//   - github.com/geoanalytics/xjson-format/go-xjson/encode - body mapping to XML/JSON/yaml
//   - github.com/geoanalytics/xjson-format/go-xjson/epath - path expressions
package xjson
