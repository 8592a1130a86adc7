// Package hashicorp supplies the carekeep secrets from HashiCorp Vault's
// KV v2 engine.
//
// The Vault client is configured from the standard environment variables:
//
//   - VAULT_ADDR: Vault server address (required)
//   - VAULT_NAMESPACE: namespace for HCP Vault (optional)
//   - VAULT_TOKEN: direct token authentication (optional)
//   - VAULT_ROLE_ID / VAULT_SECRET_ID: AppRole authentication (optional)
//
// Token auth wins when both are present; with neither, construction fails.
package hashicorp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/hashicorp/vault/api"

	"github.com/carekeephq/carekeep"
)

// Secret field names expected inside the KV v2 entry.
const (
	fieldEncryptionKey = "encryption_key"
	fieldHashPepper    = "hash_pepper"
)

// KVSource reads the encryption key and hash pepper from one KV v2 secret.
// The entry must hold a base64-encoded 32-byte key under "encryption_key"
// and the pepper string under "hash_pepper". It implements
// carekeep.SecretSource.
type KVSource struct {
	client *api.Client
	mount  string
	path   string
}

// NewKVSource creates a source reading the secret at path under the given
// KV v2 mount (e.g. mount "secret", path "carekeep/production").
func NewKVSource(mount, path string) (*KVSource, error) {
	client, err := newVaultClient()
	if err != nil {
		return nil, err
	}
	return &KVSource{client: client, mount: mount, path: path}, nil
}

// NewKVSourceWithClient wraps an existing Vault client.
func NewKVSourceWithClient(client *api.Client, mount, path string) *KVSource {
	return &KVSource{client: client, mount: mount, path: path}
}

func newVaultClient() (*api.Client, error) {
	addr := os.Getenv("VAULT_ADDR")
	if addr == "" {
		return nil, fmt.Errorf("%w: VAULT_ADDR environment variable is required", carekeep.ErrInvalidConfiguration)
	}

	config := api.DefaultConfig()
	config.Address = addr

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("%w: creating Vault client: %v", carekeep.ErrSecretSourceUnavailable, err)
	}

	if namespace := os.Getenv("VAULT_NAMESPACE"); namespace != "" {
		client.SetNamespace(namespace)
	}

	if token := os.Getenv("VAULT_TOKEN"); token != "" {
		client.SetToken(token)
		return client, nil
	}

	roleID := os.Getenv("VAULT_ROLE_ID")
	secretID := os.Getenv("VAULT_SECRET_ID")
	if roleID == "" || secretID == "" {
		return nil, fmt.Errorf("%w: no Vault authentication configured (set VAULT_TOKEN or VAULT_ROLE_ID/VAULT_SECRET_ID)",
			carekeep.ErrInvalidConfiguration)
	}

	secret, err := client.Logical().Write("auth/approle/login", map[string]any{
		"role_id":   roleID,
		"secret_id": secretID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: AppRole login failed: %v", carekeep.ErrSecretSourceUnavailable, err)
	}
	client.SetToken(secret.Auth.ClientToken)
	return client, nil
}

func (s *KVSource) field(ctx context.Context, name string) (string, error) {
	secret, err := s.client.KVv2(s.mount).Get(ctx, s.path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s/%s: %v", carekeep.ErrSecretSourceUnavailable, s.mount, s.path, err)
	}
	value, ok := secret.Data[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: field %q missing at %s/%s", carekeep.ErrSecretNotFound, name, s.mount, s.path)
	}
	return value, nil
}

// EncryptionKey returns the decoded 32-byte AES key.
func (s *KVSource) EncryptionKey(ctx context.Context) ([]byte, error) {
	value, err := s.field(ctx, fieldEncryptionKey)
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid base64: %v", carekeep.ErrInvalidKey, fieldEncryptionKey, err)
	}
	return key, nil
}

// HashPepper returns the pepper bytes.
func (s *KVSource) HashPepper(ctx context.Context) ([]byte, error) {
	value, err := s.field(ctx, fieldHashPepper)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}
