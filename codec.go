package carekeep

// EncryptedField is the persisted form of one sensitive attribute: an opaque
// ciphertext token plus a deterministic blind index for equality lookup.
// Both pointers are nil when the plaintext was never provided, which the
// storage layer maps to SQL NULL. A provided-but-empty value is carried as a
// pair of empty strings instead, so "not provided" and "empty" stay distinct.
type EncryptedField struct {
	Ciphertext *string
	BlindIndex *string
}

// FieldCodec pairs a cipher and a hasher to translate plaintext values to
// and from their stored form. It holds no state of its own.
type FieldCodec struct {
	cipher *FieldCipher
	hasher *BlindIndexHasher
}

// NewFieldCodec builds a codec from an existing cipher and hasher.
func NewFieldCodec(cipher *FieldCipher, hasher *BlindIndexHasher) *FieldCodec {
	return &FieldCodec{cipher: cipher, hasher: hasher}
}

// ToStorage converts a plaintext field into its persisted pair. A nil input
// yields a field with both members nil.
func (c *FieldCodec) ToStorage(plaintext *string) (EncryptedField, error) {
	if plaintext == nil {
		return EncryptedField{}, nil
	}

	token, err := c.cipher.Encrypt(*plaintext)
	if err != nil {
		return EncryptedField{}, err
	}
	index := c.hasher.Hash(*plaintext)

	return EncryptedField{Ciphertext: &token, BlindIndex: &index}, nil
}

// FromStorage decrypts a stored ciphertext token back into its plaintext.
// A nil input yields nil.
func (c *FieldCodec) FromStorage(ciphertext *string) (*string, error) {
	if ciphertext == nil {
		return nil, nil
	}

	plaintext, err := c.cipher.Decrypt(*ciphertext)
	if err != nil {
		return nil, err
	}
	return &plaintext, nil
}

// BlindIndex computes the lookup digest for a plaintext value without
// encrypting it. Useful for "does a record with this value already exist"
// queries against the stored blind-index column.
func (c *FieldCodec) BlindIndex(plaintext string) string {
	return c.hasher.Hash(plaintext)
}
