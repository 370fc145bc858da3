package id

import "github.com/google/uuid"

// New returns a fresh opaque transaction ID.
func New() string {
	return uuid.NewString()
}
