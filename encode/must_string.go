package encode

import (
	"bytes"
	"strings"

	"github.com/geoanalytics/xjson-format/go-xjson/ir"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

func MustString(body *ir.Node, ns *nsmap.Map) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(body, ns, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
