package carekeep_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carekeephq/carekeep"
)

func newTestCipher(t *testing.T) *carekeep.FieldCipher {
	t.Helper()
	return carekeep.NewTestProtector(t).Cipher()
}

func TestNewFieldCipher_KeySize(t *testing.T) {
	tests := []struct {
		name    string
		keyLen  int
		wantErr bool
	}{
		{name: "32 bytes", keyLen: 32, wantErr: false},
		{name: "16 bytes", keyLen: 16, wantErr: true},
		{name: "31 bytes", keyLen: 31, wantErr: true},
		{name: "33 bytes", keyLen: 33, wantErr: true},
		{name: "empty", keyLen: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher, err := carekeep.NewFieldCipher(make([]byte, tt.keyLen))
			if tt.wantErr {
				assert.ErrorIs(t, err, carekeep.ErrInvalidKey)
				assert.Nil(t, cipher)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cipher)
			}
		})
	}
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	cipher := newTestCipher(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "national id", plaintext: "30-12345678-9"},
		{name: "embedded separators", plaintext: "a:b::c:"},
		{name: "unicode", plaintext: "María Gómez, Ñuñoa 1234"},
		{name: "single char", plaintext: "x"},
		{name: "long value", plaintext: strings.Repeat("sensitive ", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := cipher.Encrypt(tt.plaintext)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			got, err := cipher.Decrypt(token)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestFieldCipher_EmptyString(t *testing.T) {
	cipher := newTestCipher(t)

	token, err := cipher.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, token, "empty plaintext must produce an empty token, not a ciphertext of nothing")

	got, err := cipher.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFieldCipher_TokenFormat(t *testing.T) {
	cipher := newTestCipher(t)

	token, err := cipher.Encrypt("30-12345678-9")
	require.NoError(t, err)

	parts := strings.Split(token, ":")
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 24, "nonce is 12 bytes of lowercase hex")
	assert.Len(t, parts[1], 32, "tag is 16 bytes of lowercase hex")
	assert.NotEmpty(t, parts[2])

	for i, part := range parts {
		assert.Equal(t, strings.ToLower(part), part, "segment %d must be lowercase hex", i)
		_, err := hex.DecodeString(part)
		assert.NoError(t, err, "segment %d must be valid hex", i)
	}
}

func TestFieldCipher_FreshNoncePerCall(t *testing.T) {
	cipher := newTestCipher(t)

	first, err := cipher.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, strings.Split(first, ":")[0], strings.Split(second, ":")[0], "nonces must never repeat")
}

func TestFieldCipher_TamperDetection(t *testing.T) {
	cipher := newTestCipher(t)

	token, err := cipher.Encrypt("30-12345678-9")
	require.NoError(t, err)
	parts := strings.Split(token, ":")

	// Flip one bit inside every byte position of every segment; each
	// mutation must fail authentication, never return a wrong plaintext.
	for seg := range parts {
		raw, err := hex.DecodeString(parts[seg])
		require.NoError(t, err)
		for i := range raw {
			mutated := make([]byte, len(raw))
			copy(mutated, raw)
			mutated[i] ^= 0x01

			corrupted := make([]string, len(parts))
			copy(corrupted, parts)
			corrupted[seg] = hex.EncodeToString(mutated)

			got, err := cipher.Decrypt(strings.Join(corrupted, ":"))
			assert.ErrorIs(t, err, carekeep.ErrIntegrityCheckFailed, "segment %d byte %d", seg, i)
			assert.Empty(t, got)
		}
	}
}

func TestFieldCipher_WrongKey(t *testing.T) {
	token, err := newTestCipher(t).Encrypt("30-12345678-9")
	require.NoError(t, err)

	other := newTestCipher(t)
	got, err := other.Decrypt(token)
	assert.ErrorIs(t, err, carekeep.ErrIntegrityCheckFailed)
	assert.Empty(t, got)
}

func TestFieldCipher_MalformedToken(t *testing.T) {
	cipher := newTestCipher(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "two segments", token: "abcd:ef01"},
		{name: "four segments", token: "ab:cd:ef:01"},
		{name: "not hex", token: "zz:zz:zz"},
		{name: "short nonce", token: "abcd:" + strings.Repeat("ab", 16) + ":cafe"},
		{name: "short tag", token: strings.Repeat("ab", 12) + ":abcd:cafe"},
		{name: "empty ciphertext", token: strings.Repeat("ab", 12) + ":" + strings.Repeat("ab", 16) + ":"},
		{name: "plain garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cipher.Decrypt(tt.token)
			assert.ErrorIs(t, err, carekeep.ErrMalformedToken)
			assert.Empty(t, got)
		})
	}
}
