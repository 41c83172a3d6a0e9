package client

import (
	"fmt"

	"github.com/google/uuid"
)

// requireField rejects empty required identifiers before any network call is
// attempted. The message names the missing field.
func requireField(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateUUID validates that a string is a valid UUID.
// Incident and annotation IDs are server-generated UUIDs.
func ValidateUUID(id, fieldName string) error {
	if id == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s must be a valid UUID format", fieldName)
	}
	return nil
}
