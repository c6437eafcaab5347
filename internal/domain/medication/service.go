package medication

import (
	"context"

	"github.com/google/uuid"

	"github.com/blister/blister/internal/domain/patient"
)

// PatientGetter is the slice of the patient domain the medication flows
// need: resolving the owning patient record.
type PatientGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	meds     Repository
	patients PatientGetter
}

func NewService(meds Repository, patients PatientGetter) *Service {
	return &Service{meds: meds, patients: patients}
}

// Add attaches a new medication to the patient and returns the patient it
// was added for. An unknown patient returns patient.ErrNotFound.
func (s *Service) Add(ctx context.Context, patientID uuid.UUID, m *Medication) (*patient.Patient, error) {
	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	m.PatientID = p.ID
	if err := s.meds.Create(ctx, m); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Medication, error) {
	return s.meds.ListByPatient(ctx, patientID)
}

// Update merges the non-nil patch fields into the stored medication.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch Patch) (*Medication, error) {
	m, err := s.meds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(m)
	if err := s.meds.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.meds.Delete(ctx, id)
}
