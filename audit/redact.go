package audit

import "strings"

// RedactionMarker replaces the value of every denylisted key.
const RedactionMarker = "[REDACTED]"

// sensitiveKeys is the fixed denylist of snapshot keys whose values never
// reach storage. Matching is case-insensitive and ignores the suffixes the
// data layer appends to the encrypted/hashed companions of a field.
var sensitiveKeys = map[string]struct{}{
	"national_id":             {},
	"nationalid":              {},
	"document_number":         {},
	"tax_id":                  {},
	"phone":                   {},
	"phone_number":            {},
	"mobile":                  {},
	"email":                   {},
	"email_address":           {},
	"address":                 {},
	"home_address":            {},
	"emergency_contact":       {},
	"emergency_contact_name":  {},
	"emergency_contact_phone": {},
	"password":                {},
	"password_digest":         {},
}

// storedVariantSuffixes are the companion-column suffixes used by the
// storage layer for encrypted and hashed forms of a sensitive field.
var storedVariantSuffixes = []string{
	"_encrypted",
	"_ciphertext",
	"_hash",
	"_hashed",
	"_blind_index",
	"_bidx",
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if _, ok := sensitiveKeys[k]; ok {
		return true
	}
	for _, suffix := range storedVariantSuffixes {
		if base, ok := strings.CutSuffix(k, suffix); ok {
			if _, ok := sensitiveKeys[base]; ok {
				return true
			}
		}
	}
	return false
}

// Redact walks a JSON-like value (maps, slices, scalars) and replaces the
// value of every denylisted key with the redaction marker, at any nesting
// depth. Non-denylisted keys pass through unchanged, including nested
// containers that themselves hold denylisted keys further down. The input is
// never mutated; containers are copied.
func Redact(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			if isSensitiveKey(key) {
				out[key] = RedactionMarker
				continue
			}
			out[key] = Redact(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Redact(item)
		}
		return out
	default:
		return value
	}
}
