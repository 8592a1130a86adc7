package carekeep

import "errors"

var (
	// Configuration errors - fatal at startup, not recoverable per call.
	ErrInvalidKey           = errors.New("encryption key must decode to exactly 32 bytes")
	ErrMissingPepper        = errors.New("hash pepper is required")
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Decryption errors - surfaced to the caller, never retried.
	ErrMalformedToken       = errors.New("malformed ciphertext token")
	ErrIntegrityCheckFailed = errors.New("ciphertext integrity check failed")

	// Secret source errors.
	ErrSecretSourceUnavailable = errors.New("secret source unavailable")
	ErrSecretNotFound          = errors.New("secret not found")
)

// IsConfigurationError reports whether err indicates a misconfigured secret
// or config struct. These are startup failures; serving traffic with a
// half-configured protector is never correct.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidKey) ||
		errors.Is(err, ErrMissingPepper) ||
		errors.Is(err, ErrInvalidConfiguration)
}

// IsDecryptionError reports whether err came from decrypting a stored token:
// either the token shape is wrong (corruption, wrong column) or the
// authentication tag did not verify (tampering or wrong key). Callers must
// refuse to serve the affected field rather than fall back to raw ciphertext.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrIntegrityCheckFailed)
}

// IsSecretSourceError reports whether err came from an external secret
// backend rather than from the secret material itself.
func IsSecretSourceError(err error) bool {
	return errors.Is(err, ErrSecretSourceUnavailable) ||
		errors.Is(err, ErrSecretNotFound)
}
