package carekeep

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// BlindIndexSize is the length of a blind index digest in hex characters.
// The digest is a full HMAC-SHA256; it is deliberately never truncated, so
// that collisions between distinct plaintexts stay negligible.
const BlindIndexSize = sha256.Size * 2

// BlindIndexHasher computes deterministic, keyed digests of plaintext values
// so the storage layer can answer equality queries against encrypted columns
// without decrypting anything. The pepper must be a secret distinct from the
// encryption key. A BlindIndexHasher is safe for concurrent use.
type BlindIndexHasher struct {
	pepper []byte
}

// NewBlindIndexHasher creates a hasher keyed with the given pepper.
func NewBlindIndexHasher(pepper []byte) (*BlindIndexHasher, error) {
	if len(pepper) == 0 {
		return nil, fmt.Errorf("%w: pepper is empty", ErrMissingPepper)
	}
	p := make([]byte, len(pepper))
	copy(p, pepper)
	return &BlindIndexHasher{pepper: p}, nil
}

// Hash returns the lowercase-hex HMAC-SHA256 of plaintext under the pepper.
// The empty string maps to an empty digest, mirroring the cipher's
// empty-token rule so "no value" never collides with "hash of empty string".
func (h *BlindIndexHasher) Hash(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}
