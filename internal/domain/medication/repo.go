package medication

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for medications. Lookups that miss
// return ErrNotFound.
type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	// ListByPatient returns the patient's medications in insertion order.
	// An unknown patient yields an empty slice, not an error.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, id uuid.UUID) error
}
