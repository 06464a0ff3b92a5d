package encode

type EncodeOption func(*EncState)

// Indent sets the indent step width for pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire emits a single line with no inter-element whitespace.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeColors installs a colorizer for the yaml dump.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
