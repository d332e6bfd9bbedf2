package util

import "github.com/google/uuid"

// NewID returns a collision-resistant identifier with a time-ordered
// component followed by random bits (UUIDv7). Uniqueness is probabilistic.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// The v7 source can fail if the random pool is exhausted.
		return uuid.NewString()
	}
	return id.String()
}
