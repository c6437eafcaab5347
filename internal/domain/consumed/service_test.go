package consumed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blister/blister/internal/domain/medication"
)

// =========== Mock Repository ===========

type mockConsumedRepo struct {
	store []*Consumed
	meds  *mockMedicationGetter
}

func (m *mockConsumedRepo) Create(_ context.Context, c *Consumed) error {
	c.ID = uuid.New()
	cp := *c
	m.store = append(m.store, &cp)
	return nil
}

func (m *mockConsumedRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Record, error) {
	records := []*Record{}
	for _, c := range m.store {
		med, ok := m.meds.store[c.MedicationID]
		if !ok || med.PatientID != patientID {
			continue
		}
		records = append(records, &Record{
			ID:           c.ID,
			MedicationID: c.MedicationID,
			DateTime:     c.DateTime,
			TableName:    med.TableName,
			Doctor:       med.Doctor,
			Timing:       med.Timing,
		})
	}
	return records, nil
}

// =========== Mock Medication Getter ===========

type mockMedicationGetter struct {
	store map[uuid.UUID]*medication.Medication
}

func (m *mockMedicationGetter) add(patientID uuid.UUID, name, doctor, timing string) *medication.Medication {
	med := &medication.Medication{ID: uuid.New(), PatientID: patientID, TableName: name, Doctor: doctor, Timing: timing}
	m.store[med.ID] = med
	return med
}

func (m *mockMedicationGetter) GetByID(_ context.Context, id uuid.UUID) (*medication.Medication, error) {
	med, ok := m.store[id]
	if !ok {
		return nil, medication.ErrNotFound
	}
	return med, nil
}

// =========== Helpers ===========

func newTestService() (*Service, *mockMedicationGetter) {
	meds := &mockMedicationGetter{store: make(map[uuid.UUID]*medication.Medication)}
	repo := &mockConsumedRepo{meds: meds}
	return NewService(repo, meds), meds
}

// =========== Tests ===========

func TestRecord_Success(t *testing.T) {
	svc, meds := newTestService()
	med := meds.add(uuid.New(), "Aspirin", "Dr. Rao", "morning")

	at := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	rec, err := svc.Record(context.Background(), med.ID, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Error("expected id assigned")
	}
	if !rec.DateTime.Equal(at) {
		t.Errorf("expected supplied timestamp, got %v", rec.DateTime)
	}
}

func TestRecord_ZeroTimeDefaultsToNow(t *testing.T) {
	svc, meds := newTestService()
	med := meds.add(uuid.New(), "Aspirin", "Dr. Rao", "morning")

	before := time.Now()
	rec, err := svc.Record(context.Background(), med.ID, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DateTime.Before(before) {
		t.Errorf("expected timestamp filled with now, got %v", rec.DateTime)
	}
}

func TestRecord_UnknownMedication(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Record(context.Background(), uuid.New(), time.Now())
	if !errors.Is(err, medication.ErrNotFound) {
		t.Errorf("expected medication.ErrNotFound, got %v", err)
	}
}

func TestListByPatient_JoinsMedicationDetails(t *testing.T) {
	svc, meds := newTestService()
	pid := uuid.New()
	med := meds.add(pid, "Aspirin", "Dr. Rao", "morning")
	other := meds.add(uuid.New(), "Metformin", "Dr. K", "night")

	svc.Record(context.Background(), med.ID, time.Now())
	svc.Record(context.Background(), other.ID, time.Now())

	records, err := svc.ListByPatient(context.Background(), pid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.TableName != "Aspirin" || r.Doctor != "Dr. Rao" || r.Timing != "morning" {
		t.Errorf("expected joined medication details, got %+v", r)
	}
}

func TestListByPatient_UnknownPatientIsEmpty(t *testing.T) {
	svc, _ := newTestService()
	records, err := svc.ListByPatient(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty list, got %d", len(records))
	}
}
