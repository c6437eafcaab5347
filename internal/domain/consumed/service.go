package consumed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blister/blister/internal/domain/medication"
)

// MedicationGetter is the slice of the medication domain the intake flow
// needs: checking that the medication exists before recording against it.
type MedicationGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*medication.Medication, error)
}

type Service struct {
	consumed Repository
	meds     MedicationGetter
}

func NewService(consumed Repository, meds MedicationGetter) *Service {
	return &Service{consumed: consumed, meds: meds}
}

// Record stores an intake event for the medication. A zero timestamp is
// filled with the current time. An unknown medication returns
// medication.ErrNotFound.
func (s *Service) Record(ctx context.Context, medicationID uuid.UUID, at time.Time) (*Consumed, error) {
	if _, err := s.meds.GetByID(ctx, medicationID); err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	c := &Consumed{MedicationID: medicationID, DateTime: at}
	if err := s.consumed.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Record, error) {
	return s.consumed.ListByPatient(ctx, patientID)
}
