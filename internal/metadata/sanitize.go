package metadata

import "strings"

// invalidFieldChars are stripped from field names before they are compared or
// exported. The target platform rejects these in column identifiers.
const invalidFieldChars = `.+-*/()[]"{}_`

// Sanitize removes every occurrence of the invalid character set from a field
// name. It is idempotent: sanitizing an already-sanitized name is a no-op.
func Sanitize(field string) string {
	if !strings.ContainsAny(field, invalidFieldChars) {
		return field
	}
	var sb strings.Builder
	sb.Grow(len(field))
	for _, r := range field {
		if r < 128 && strings.ContainsRune(invalidFieldChars, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
