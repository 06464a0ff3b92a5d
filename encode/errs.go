package encode

import (
	"errors"

	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

var (
	ErrEncoding = errors.New("encode error")
	ErrResolve  = nsmap.ErrResolve
)
