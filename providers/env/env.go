// Package env supplies the carekeep secrets from the process environment,
// optionally seeded from .env files. This is the default source for local
// development and container deployments where the orchestrator injects
// secrets as environment variables.
package env

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/carekeephq/carekeep"
)

// Source reads the encryption key and hash pepper from environment
// variables. It implements carekeep.SecretSource.
type Source struct {
	keyVar    string
	pepperVar string
	dotenv    []string

	loadOnce sync.Once
	loadErr  error
}

// Option configures a Source.
type Option func(*Source)

// WithVars overrides the default variable names.
func WithVars(keyVar, pepperVar string) Option {
	return func(s *Source) {
		s.keyVar = keyVar
		s.pepperVar = pepperVar
	}
}

// WithDotenv loads the named .env files before the first read. Variables
// already present in the environment win over file values.
func WithDotenv(filenames ...string) Option {
	return func(s *Source) { s.dotenv = filenames }
}

// NewSource creates a Source reading CAREKEEP_ENCRYPTION_KEY and
// CAREKEEP_HASH_PEPPER unless overridden.
func NewSource(opts ...Option) *Source {
	s := &Source{
		keyVar:    carekeep.EnvEncryptionKey,
		pepperVar: carekeep.EnvHashPepper,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) load() error {
	s.loadOnce.Do(func() {
		if len(s.dotenv) == 0 {
			return
		}
		if err := godotenv.Load(s.dotenv...); err != nil {
			s.loadErr = fmt.Errorf("%w: loading .env: %v", carekeep.ErrSecretSourceUnavailable, err)
		}
	})
	return s.loadErr
}

// EncryptionKey returns the decoded 32-byte AES key.
func (s *Source) EncryptionKey(_ context.Context) ([]byte, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	value := os.Getenv(s.keyVar)
	if value == "" {
		return nil, fmt.Errorf("%w: %s is not set", carekeep.ErrSecretNotFound, s.keyVar)
	}
	key, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid base64: %v", carekeep.ErrInvalidKey, s.keyVar, err)
	}
	return key, nil
}

// HashPepper returns the pepper bytes.
func (s *Source) HashPepper(_ context.Context) ([]byte, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	value := os.Getenv(s.pepperVar)
	if value == "" {
		return nil, fmt.Errorf("%w: %s is not set", carekeep.ErrSecretNotFound, s.pepperVar)
	}
	return []byte(value), nil
}
