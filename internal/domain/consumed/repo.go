package consumed

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for consumption events.
type Repository interface {
	Create(ctx context.Context, c *Consumed) error
	// ListByPatient returns every consumption event of the patient's
	// medications, joined with medication details, in insertion order.
	// An unknown patient yields an empty slice, not an error.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Record, error)
}
