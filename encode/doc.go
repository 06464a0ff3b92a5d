// Package encode walks a body mapping and emits it back out: as XML
// text (the inverse of package decode), as JSON with the "@context"
// block first, or as an indented yaml-ish dump for humans.
//
// # Usage
//
//	// body mapping + context -> XML
//	err := encode.Encode(body, ns, w)
//
//	// single-line output
//	err := encode.Encode(body, ns, w, encode.EncodeWire(true))
//
//	// JSON rendering, context block first
//	d, err := encode.EncodeJSON(body, ns)
//
//	// human-readable tree
//	s := encode.Yaml(body)
//
// Encoding never guesses: a shortened key whose prefix is missing from
// the context fails with a resolution error rather than being emitted as
// a literal name.
//
// # Related Packages
//
//   - github.com/geoanalytics/xjson-format/go-xjson/ir - body mapping representation
//   - github.com/geoanalytics/xjson-format/go-xjson/decode - XML to body mapping
package encode
