package atom

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	domainNode = "atomspace/node/v1"
	domainLink = "atomspace/link/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte (0x00) separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// nodeID computes the content-addressed ID for a node.
// The name must already be NFC-normalized.
func nodeID(t Type, name string) string {
	h := sha256.New()
	h.Write([]byte(t))
	h.Write([]byte{0x00})
	h.Write([]byte(name))
	return hashWithDomain(domainNode, h.Sum(nil))
}

// linkID computes the content-addressed ID for a link from its type and
// the IDs of its children. Children are content-addressed themselves, so
// the ID covers the whole subtree without re-serializing it.
func linkID(t Type, out []Atom) string {
	h := sha256.New()
	h.Write([]byte(t))
	for _, child := range out {
		h.Write([]byte{0x00})
		h.Write([]byte(child.ID()))
	}
	return hashWithDomain(domainLink, h.Sum(nil))
}
