// Package carekeep protects the confidential fields of a caregiver
// record-keeping system.
//
// The root package provides authenticated field encryption (AES-256-GCM),
// blind-index hashing for equality lookup on encrypted columns, and a codec
// that pairs the two so the storage layer only ever sees the
// {ciphertext, blind index} form of a sensitive value. Argon2id hashing is
// included for credential-class values that must never be decryptable.
//
// Subpackages:
//
//   - audit: an append-only audit recorder that redacts sensitive keys from
//     before/after snapshots before persisting them.
//   - schedule: conflict validation for recurring weekly caregiver
//     commitments.
//   - providers/env, providers/hashicorp, providers/aws: secret sources that
//     supply the encryption key and hash pepper at startup.
//
// Secrets are injected explicitly through Config or a SecretSource; nothing
// in this package reads ambient global state after construction.
package carekeep
