// Package format names the serializations a record can be read from or
// written to: xml, json and yaml.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	if err != nil { ... }
//	out := name + f.Suffix()
//
// # Related Packages
//
//   - github.com/geoanalytics/xjson-format/go-xjson/decode - XML to body mapping
//   - github.com/geoanalytics/xjson-format/go-xjson/encode - body mapping to XML/JSON/yaml
package format
