package id

import "github.com/google/uuid"

// New returns a fresh opaque identifier for stored records.
func New() string {
	return uuid.NewString()
}
