package xjson

import (
	"errors"

	"github.com/geoanalytics/xjson-format/go-xjson/decode"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

var (
	// ErrConstruct is returned when a Record is built from neither a
	// pre-parsed node nor a tag.
	ErrConstruct = errors.New("record construction error")

	// ErrNotFound is returned when deregistering an identifier the
	// registry does not hold.
	ErrNotFound = errors.New("identifier not registered")

	ErrParse   = decode.ErrParse
	ErrResolve = nsmap.ErrResolve
)
