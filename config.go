package carekeep

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/hengadev/errsx"
)

// Config holds the secrets and tuning for building a Protector.
//
// This struct contains only data, no behavior. Configuration can be loaded
// from any source (environment variables, a SecretSource, code) and passed
// explicitly to New; there are no package-level singletons to rotate around.
type Config struct {
	// EncryptionKey is the base64-encoded AES-256 key. It must decode to
	// exactly 32 bytes.
	EncryptionKey string

	// HashPepper is the secret pepper for blind-index and Argon2id hashing.
	// It must be non-empty and must never equal the encryption key.
	HashPepper string

	// Argon2 tunes secure hashing. Nil means DefaultArgon2Params.
	Argon2 *Argon2Params
}

// Validate checks the configuration and reports every problem it finds.
func (c *Config) Validate() error {
	errs := errsx.Map{}

	key, err := base64.StdEncoding.DecodeString(c.EncryptionKey)
	switch {
	case c.EncryptionKey == "":
		errs.Set("encryption key", fmt.Errorf("%w: not set", ErrInvalidKey))
	case err != nil:
		errs.Set("encryption key", fmt.Errorf("%w: not valid base64: %v", ErrInvalidKey, err))
	case len(key) != KeySize:
		errs.Set("encryption key", fmt.Errorf("%w: got %d bytes", ErrInvalidKey, len(key)))
	}

	if c.HashPepper == "" {
		errs.Set("hash pepper", ErrMissingPepper)
	}

	// Reusing the key as the pepper would tie the blind index to the
	// encryption secret; the two must stay independently rotatable.
	if err == nil && len(key) > 0 && c.HashPepper != "" {
		if subtle.ConstantTimeCompare(key, []byte(c.HashPepper)) == 1 ||
			c.HashPepper == c.EncryptionKey {
			errs.Set("hash pepper", fmt.Errorf("%w: pepper must differ from the encryption key", ErrInvalidConfiguration))
		}
	}

	if !errs.IsEmpty() {
		return errs.AsError()
	}
	return nil
}

// key returns the decoded encryption key. Call Validate first.
func (c *Config) key() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(c.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64: %v", ErrInvalidKey, err)
	}
	return key, nil
}
