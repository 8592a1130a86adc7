package carekeep

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by LoadConfigFromEnvironment.
const (
	EnvEncryptionKey = "CAREKEEP_ENCRYPTION_KEY"
	EnvHashPepper    = "CAREKEEP_HASH_PEPPER"
)

// LoadConfigFromEnvironment reads configuration from environment variables,
// following the 12-factor convention the rest of the system uses.
//
// Required variables:
//   - CAREKEEP_ENCRYPTION_KEY: base64-encoded 32-byte AES key
//   - CAREKEEP_HASH_PEPPER: pepper string for blind-index hashing
//
// Returns an error if either is missing or validation fails.
func LoadConfigFromEnvironment() (Config, error) {
	key := os.Getenv(EnvEncryptionKey)
	if key == "" {
		return Config{}, fmt.Errorf("%w: %s environment variable is required", ErrInvalidConfiguration, EnvEncryptionKey)
	}

	pepper := os.Getenv(EnvHashPepper)
	if pepper == "" {
		return Config{}, fmt.Errorf("%w: %s environment variable is required", ErrInvalidConfiguration, EnvHashPepper)
	}

	cfg := Config{
		EncryptionKey: key,
		HashPepper:    pepper,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfigFromDotenv loads the named .env files into the process
// environment and then reads configuration the same way
// LoadConfigFromEnvironment does. With no arguments it loads "./.env".
// Variables already present in the environment win over file values.
func LoadConfigFromDotenv(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return Config{}, fmt.Errorf("%w: loading .env: %v", ErrInvalidConfiguration, err)
	}
	return LoadConfigFromEnvironment()
}

// configFile is the on-disk shape of a carekeep.yaml. The file names the
// environment variables holding each secret rather than embedding secret
// material, so it is safe to commit alongside deployment manifests.
type configFile struct {
	// Dotenv optionally names a .env file to load before resolving.
	Dotenv string `yaml:"dotenv"`

	// EncryptionKeyEnv and HashPepperEnv override the default variable
	// names read from the environment.
	EncryptionKeyEnv string `yaml:"encryption_key_env"`
	HashPepperEnv    string `yaml:"hash_pepper_env"`
}

// LoadConfigFromFile reads a YAML config file that points at the environment
// variables carrying the secrets, then resolves and validates them.
func LoadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading config file: %v", ErrInvalidConfiguration, err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("%w: parsing config file: %v", ErrInvalidConfiguration, err)
	}

	if file.Dotenv != "" {
		if err := godotenv.Load(file.Dotenv); err != nil {
			return Config{}, fmt.Errorf("%w: loading %s: %v", ErrInvalidConfiguration, file.Dotenv, err)
		}
	}

	keyVar := file.EncryptionKeyEnv
	if keyVar == "" {
		keyVar = EnvEncryptionKey
	}
	pepperVar := file.HashPepperEnv
	if pepperVar == "" {
		pepperVar = EnvHashPepper
	}

	cfg := Config{
		EncryptionKey: os.Getenv(keyVar),
		HashPepper:    os.Getenv(pepperVar),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
