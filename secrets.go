package carekeep

import "context"

// SecretSource supplies the two startup secrets from an external backend.
//
// Implementations:
//   - providers/env: process environment, optionally seeded from .env files
//   - providers/hashicorp: HashiCorp Vault KV v2
//   - providers/aws: AWS Secrets Manager
//
// EncryptionKey must return the raw 32-byte AES key (implementations decode
// whatever encoding their backend stores). HashPepper must return a
// non-empty pepper that differs from the key; NewFromSource rejects a source
// that hands back the same bytes for both.
type SecretSource interface {
	EncryptionKey(ctx context.Context) ([]byte, error)
	HashPepper(ctx context.Context) ([]byte, error)
}
