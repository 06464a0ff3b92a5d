package decode

type DecodeOption func(*decodeOpts)

type decodeOpts struct {
	preserve bool
}

// PreserveNamespaces keeps original "{uri}local" names as keys instead of
// minting short prefixes. Slower to read, but unambiguous without the
// context table.
func PreserveNamespaces(v bool) DecodeOption {
	return func(o *decodeOpts) { o.preserve = v }
}
