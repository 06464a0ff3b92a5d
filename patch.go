package xjson

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/geoanalytics/xjson-format/go-xjson/ir"
)

// Patch applies an RFC 6902 JSON patch to the record's body mapping.
// Paths are addressed against the body, so they start at the root tag,
// e.g. /wfs:member/nvcl:scannedBorehole/#attributes/xlink:href. The
// patch must leave the root tag in place; on any failure the record is
// unchanged.
func (r *Record) Patch(patchJSON []byte) error {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return err
	}
	doc, err := ir.ToJSON(r.Body())
	if err != nil {
		return err
	}
	patched, err := ops.Apply(doc)
	if err != nil {
		return err
	}
	body, err := ir.FromJSON(patched)
	if err != nil {
		return err
	}
	root := ir.Get(body, r.tag)
	if root == nil {
		return fmt.Errorf("patch removed root element %s", r.tag)
	}
	if root.Type != ir.ObjectType {
		return fmt.Errorf("patch replaced root element %s with %s", r.tag, root.Type)
	}
	r.root = root
	r.nsCache = nsStale
	return nil
}
