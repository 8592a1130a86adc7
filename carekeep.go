package carekeep

import (
	"context"
	"crypto/subtle"
	"fmt"
)

// Protector bundles the field cipher, blind-index hasher, and codec behind
// one constructor so callers thread a single dependency through their
// services. All methods are safe for concurrent use.
type Protector struct {
	cipher *FieldCipher
	hasher *BlindIndexHasher
	codec  *FieldCodec
	argon2 *Argon2Params
}

// New builds a Protector from an explicit Config. The config is validated
// first; a misconfigured secret is fatal here rather than at first use.
func New(cfg Config) (*Protector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key, err := cfg.key()
	if err != nil {
		return nil, err
	}
	return newProtector(key, []byte(cfg.HashPepper), cfg.Argon2)
}

// NewFromSource builds a Protector with secrets fetched from an external
// backend (Vault, AWS Secrets Manager, the process environment).
func NewFromSource(ctx context.Context, source SecretSource) (*Protector, error) {
	key, err := source.EncryptionKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching encryption key: %w", err)
	}
	pepper, err := source.HashPepper(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching hash pepper: %w", err)
	}
	return newProtector(key, pepper, nil)
}

func newProtector(key, pepper []byte, params *Argon2Params) (*Protector, error) {
	if subtle.ConstantTimeCompare(key, pepper) == 1 {
		return nil, fmt.Errorf("%w: pepper must differ from the encryption key", ErrInvalidConfiguration)
	}

	cipher, err := NewFieldCipher(key)
	if err != nil {
		return nil, err
	}
	hasher, err := NewBlindIndexHasher(pepper)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = DefaultArgon2Params()
	}

	return &Protector{
		cipher: cipher,
		hasher: hasher,
		codec:  NewFieldCodec(cipher, hasher),
		argon2: params,
	}, nil
}

// Cipher returns the underlying field cipher.
func (p *Protector) Cipher() *FieldCipher { return p.cipher }

// Hasher returns the underlying blind-index hasher.
func (p *Protector) Hasher() *BlindIndexHasher { return p.hasher }

// Codec returns the field codec pairing the cipher and hasher.
func (p *Protector) Codec() *FieldCodec { return p.codec }

// EncryptField seals a plaintext field into a ciphertext token.
func (p *Protector) EncryptField(plaintext string) (string, error) {
	return p.cipher.Encrypt(plaintext)
}

// DecryptField opens a ciphertext token back into its plaintext.
func (p *Protector) DecryptField(token string) (string, error) {
	return p.cipher.Decrypt(token)
}

// BlindIndex computes the equality-lookup digest of a plaintext value.
func (p *Protector) BlindIndex(plaintext string) string {
	return p.hasher.Hash(plaintext)
}

// HashSecure hashes a credential-class value with Argon2id using the
// protector's configured parameters.
func (p *Protector) HashSecure(value string) (string, error) {
	return p.hasher.HashSecure(value, p.argon2)
}

// CompareSecureHashAndValue checks a value against an Argon2id hash produced
// by HashSecure.
func (p *Protector) CompareSecureHashAndValue(value, encoded string) (bool, error) {
	return p.hasher.CompareSecureHashAndValue(value, encoded)
}
