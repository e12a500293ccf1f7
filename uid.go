package witsgo

import "github.com/google/uuid"

// NewUID generates a uid for objects being added to a store.
func NewUID() string {
	return uuid.NewString()
}
