package xjson

import (
	"crypto/sha1"
	"fmt"
)

// xjsonNamespace scopes derived identifiers so the same tag always maps
// to the same identifier, and to nothing outside this package.
const xjsonNamespace = "{http://geoanalytics.io/xjson/1.0}"

// uuidDNS is the RFC 4122 DNS namespace UUID, the root of the
// derivation chain.
var uuidDNS = [16]byte{
	0x6b, 0xa7, 0xb8, 0x10, 0x9d, 0xad, 0x11, 0xd1,
	0x80, 0xb4, 0x00, 0xc0, 0x4f, 0xd4, 0x30, 0xc8,
}

// NewIdent derives a deterministic name-based (version 5) UUID for a
// tag. Two records with the same tag share an identifier unless one was
// built with WithIdent.
func NewIdent(tag string) string {
	h := sha1.New()
	h.Write(uuidDNS[:])
	h.Write([]byte(xjsonNamespace + tag))
	var u [16]byte
	copy(u[:], h.Sum(nil))
	u[6] = (u[6] & 0x0f) | 0x50
	u[8] = (u[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// Identity is a record's value identity: the identifier plus the tag it
// was derived from and the record it names. Two identities are the same
// identity exactly when their identifiers match; tag and record are
// descriptive payload, not part of the equality.
type Identity struct {
	Ident  string
	Tag    string
	Record *Record
}

// IdentityOf captures a record's current identity.
func IdentityOf(r *Record) Identity {
	return Identity{Ident: r.Ident, Tag: r.Tag(), Record: r}
}

// Equal reports whether both identities name the same thing.
func (id Identity) Equal(other Identity) bool {
	return id.Ident == other.Ident
}

func (id Identity) String() string {
	return fmt.Sprintf("%s (%s)", id.Ident, id.Tag)
}
