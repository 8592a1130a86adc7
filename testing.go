package carekeep

import "testing"

// NewTestProtector returns a Protector backed by a freshly generated random
// key and pepper. Each call mints new secrets, so tests never share state
// with each other or with anything resembling production configuration.
func NewTestProtector(tb testing.TB) *Protector {
	tb.Helper()

	key, err := GenerateEncryptionKey()
	if err != nil {
		tb.Fatalf("generating test encryption key: %v", err)
	}
	pepper, err := GeneratePepper()
	if err != nil {
		tb.Fatalf("generating test pepper: %v", err)
	}

	p, err := New(Config{EncryptionKey: key, HashPepper: pepper})
	if err != nil {
		tb.Fatalf("building test protector: %v", err)
	}
	return p
}
