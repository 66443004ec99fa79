package utils

import "github.com/google/uuid"

// NewRevision returns a fresh revision stamp for configuration state.
//
// Stamps are UUIDv7 strings, so lexical comparison of two stamps from the
// same process follows creation order. If the monotonic source fails the
// stamp degrades to a random UUIDv4, which still changes on every update.
func NewRevision() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
