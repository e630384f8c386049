package services

import "github.com/google/uuid"

// newID generates a unique identifier for new records
func newID() string {
	return uuid.NewString()
}
