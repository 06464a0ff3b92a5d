package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode   bool
	Encode   bool
	Query    bool
	Registry bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("XJSON_DEBUG_DECODE")
	d.Encode = boolEnv("XJSON_DEBUG_ENCODE")
	d.Query = boolEnv("XJSON_DEBUG_QUERY")
	d.Registry = boolEnv("XJSON_DEBUG_REGISTRY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Query() bool {
	return d.Query
}
func Registry() bool {
	return d.Registry
}
