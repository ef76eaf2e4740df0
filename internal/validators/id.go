package validators

import "github.com/google/uuid"

// IsValidID reports whether s is a well-formed entity identifier. Malformed
// IDs must be rejected before any lookup so callers can tell "bad id" from
// "no such record".
func IsValidID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
