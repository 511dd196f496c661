package utils

import "github.com/google/uuid"

// NewID returns a random version 4 UUID in canonical form.
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether s is a canonical 8-4-4-4-12 UUID string with a
// defined version (1-5) and RFC 4122 variant. uuid.Parse also accepts braced,
// URN and compact forms; those are not valid identifiers here.
func IsValidID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if u.Variant() != uuid.RFC4122 {
		return false
	}
	v := u.Version()
	return v >= 1 && v <= 5
}
