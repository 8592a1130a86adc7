package carekeep

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	// KeySize is the required encryption key length in bytes (AES-256).
	KeySize = 32

	nonceSize = 12
	tagSize   = 16

	tokenSeparator = ":"
	tokenParts     = 3
)

// FieldCipher encrypts and decrypts individual string fields with
// AES-256-GCM. Tokens are self-describing: three lowercase-hex segments
// joined by ":" in the order nonce, tag, ciphertext. A FieldCipher is safe
// for concurrent use.
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher creates a FieldCipher from a raw 32-byte key.
func NewFieldCipher(key []byte) (*FieldCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &FieldCipher{aead: aead}, nil
}

// Encrypt seals plaintext into a token. The empty string maps to an empty
// token: absent values produce no ciphertext at all. Every call draws a
// fresh random nonce; nonces are never derived from counters or input.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("nonce generation failed: %w", err)
	}

	// Seal appends the 16-byte tag after the ciphertext.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return strings.Join([]string{
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, tokenSeparator), nil
}

// Decrypt opens a token produced by Encrypt. An empty token maps back to the
// empty string. Returns ErrMalformedToken if the token does not split into
// the three expected hex segments, and ErrIntegrityCheckFailed if the
// authentication tag does not verify.
func (c *FieldCipher) Decrypt(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	nonce, tag, ciphertext, err := splitToken(token)
	if err != nil {
		return "", err
	}

	sealed := append(ciphertext, tag...)
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIntegrityCheckFailed, err)
	}
	return string(plaintext), nil
}

// splitToken decomposes a token into its nonce, tag, and ciphertext bytes,
// enforcing the fixed segment widths of the wire format.
func splitToken(token string) (nonce, tag, ciphertext []byte, err error) {
	parts := strings.Split(token, tokenSeparator)
	if len(parts) != tokenParts {
		return nil, nil, nil, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedToken, tokenParts, len(parts))
	}

	nonce, err = hex.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSize {
		return nil, nil, nil, fmt.Errorf("%w: bad nonce segment", ErrMalformedToken)
	}
	tag, err = hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return nil, nil, nil, fmt.Errorf("%w: bad tag segment", ErrMalformedToken)
	}
	ciphertext, err = hex.DecodeString(parts[2])
	if err != nil || len(ciphertext) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: bad ciphertext segment", ErrMalformedToken)
	}
	return nonce, tag, ciphertext, nil
}
