package uuidx

import "github.com/google/uuid"

// New generates a new UUID using the version 7 format and returns it.
// It panics if the UUID generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString generates a new UUID using the version 7 format and returns it as a string.
func NewString() string {
	return New().String()
}

// Prefixed returns a version 7 UUID string with the given prefix prepended.
// Version 7 ids sort by creation time, so prefixed ids created by the same
// process keep their creation order under string comparison.
func Prefixed(prefix string) string {
	return prefix + NewString()
}
