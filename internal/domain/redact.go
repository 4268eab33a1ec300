package domain

import "strings"

// RedactionMask replaces secret plaintext in user-visible output.
const RedactionMask = "********"

// Redact replaces every occurrence of secret in text with the
// redaction mask. Secrets shorter than 4 characters are not redacted
// individually (masking e.g. "a" would mangle unrelated text); the
// caller is expected to avoid echoing such values at all.
func Redact(text, secret string) string {
	if len(secret) < 4 {
		return text
	}
	return strings.ReplaceAll(text, secret, RedactionMask)
}
