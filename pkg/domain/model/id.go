package model

import "github.com/google/uuid"

// NewID returns a time ordered identifier. Store order of records keyed by it
// equals creation order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
