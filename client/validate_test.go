package client

import (
	"testing"

	"github.com/google/uuid"
)

func TestRequireField(t *testing.T) {
	if err := requireField("view-1", "viewId"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	err := requireField("", "viewId")
	if err == nil || err.Error() != "viewId is required" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestValidateUUID(t *testing.T) {
	if err := ValidateUUID(uuid.NewString(), "incidentId"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := ValidateUUID("", "incidentId"); err == nil || err.Error() != "incidentId is required" {
		t.Fatalf("unexpected error %v", err)
	}
	if err := ValidateUUID("not-a-uuid", "incidentId"); err == nil || err.Error() != "incidentId must be a valid UUID format" {
		t.Fatalf("unexpected error %v", err)
	}
}
