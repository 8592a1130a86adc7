package carekeep

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateEncryptionKey mints a fresh random 32-byte key, base64-encoded the
// way Config.EncryptionKey expects it.
func GenerateEncryptionKey() (string, error) {
	return generateSecret(KeySize)
}

// GeneratePepper mints a fresh random 32-byte pepper, base64-encoded so it
// survives env files and secret stores unmangled.
func GeneratePepper() (string, error) {
	return generateSecret(KeySize)
}

func generateSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
