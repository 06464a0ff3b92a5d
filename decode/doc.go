// Package decode turns namespaced XML into a body mapping plus its
// namespace context.
//
// # Usage
//
//	body, ns, err := decode.Decode(xmlBytes)
//	if err != nil {
//	    return err
//	}
//
//	// keep original namespace URIs as keys instead of minting prefixes
//	body, ns, err = decode.Decode(xmlBytes, decode.PreserveNamespaces(true))
//
// Decoding is a single left-to-right pass over the XML event stream with
// a stack of open-element frames; no DOM is materialized beyond the
// output mapping. Malformed input fails with a parse error carrying a
// byte/line position and no partial mapping is returned.
//
// # Related Packages
//
//   - github.com/geoanalytics/xjson-format/go-xjson/ir - body mapping representation
//   - github.com/geoanalytics/xjson-format/go-xjson/encode - the inverse direction
package decode
