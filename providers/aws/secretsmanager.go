// Package aws supplies the carekeep secrets from AWS Secrets Manager.
package aws

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/carekeephq/carekeep"
)

// Config holds configuration for the Secrets Manager source.
type Config struct {
	// Region is the AWS region (e.g. "us-east-1"). If empty, the default
	// AWS configuration chain decides.
	Region string

	// AWSConfig is an optional pre-configured AWS config. If provided,
	// Region is ignored.
	AWSConfig *aws.Config
}

// secretsClient is the slice of the Secrets Manager API the source needs.
type secretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// secretPayload is the JSON document stored under the secret id:
//
//	{"encryption_key": "<base64 32-byte key>", "hash_pepper": "<pepper>"}
type secretPayload struct {
	EncryptionKey string `json:"encryption_key"`
	HashPepper    string `json:"hash_pepper"`
}

// SecretsManagerSource reads both carekeep secrets from one Secrets Manager
// entry. It implements carekeep.SecretSource.
type SecretsManagerSource struct {
	client   secretsClient
	secretID string
}

// NewSecretsManagerSource creates a source for the given secret id.
func NewSecretsManagerSource(ctx context.Context, secretID string, cfg Config) (*SecretsManagerSource, error) {
	var awsCfg aws.Config
	var err error

	if cfg.AWSConfig != nil {
		awsCfg = *cfg.AWSConfig
	} else {
		opts := []func(*awsconfig.LoadOptions) error{}
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: loading AWS config: %v", carekeep.ErrSecretSourceUnavailable, err)
		}
	}

	return &SecretsManagerSource{
		client:   secretsmanager.NewFromConfig(awsCfg),
		secretID: secretID,
	}, nil
}

// NewSecretsManagerSourceWithClient wraps an existing client.
func NewSecretsManagerSourceWithClient(client secretsClient, secretID string) *SecretsManagerSource {
	return &SecretsManagerSource{client: client, secretID: secretID}
}

func (s *SecretsManagerSource) payload(ctx context.Context) (secretPayload, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return secretPayload{}, fmt.Errorf("%w: fetching %s: %v", carekeep.ErrSecretSourceUnavailable, s.secretID, err)
	}
	if out.SecretString == nil {
		return secretPayload{}, fmt.Errorf("%w: %s has no string payload", carekeep.ErrSecretNotFound, s.secretID)
	}

	var payload secretPayload
	if err := json.Unmarshal([]byte(*out.SecretString), &payload); err != nil {
		return secretPayload{}, fmt.Errorf("%w: %s is not a valid secret document: %v", carekeep.ErrSecretNotFound, s.secretID, err)
	}
	return payload, nil
}

// EncryptionKey returns the decoded 32-byte AES key.
func (s *SecretsManagerSource) EncryptionKey(ctx context.Context) ([]byte, error) {
	payload, err := s.payload(ctx)
	if err != nil {
		return nil, err
	}
	if payload.EncryptionKey == "" {
		return nil, fmt.Errorf("%w: encryption_key missing from %s", carekeep.ErrSecretNotFound, s.secretID)
	}
	key, err := base64.StdEncoding.DecodeString(payload.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: encryption_key is not valid base64: %v", carekeep.ErrInvalidKey, err)
	}
	return key, nil
}

// HashPepper returns the pepper bytes.
func (s *SecretsManagerSource) HashPepper(ctx context.Context) ([]byte, error) {
	payload, err := s.payload(ctx)
	if err != nil {
		return nil, err
	}
	if payload.HashPepper == "" {
		return nil, fmt.Errorf("%w: hash_pepper missing from %s", carekeep.ErrSecretNotFound, s.secretID)
	}
	return []byte(payload.HashPepper), nil
}
