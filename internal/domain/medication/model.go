package medication

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no medication matches a lookup.
var ErrNotFound = errors.New("medication not found")

// Medication is a prescription entry on a patient's plan. The "tableName"
// JSON key is the historical spelling of the tablet name; existing clients
// depend on it.
type Medication struct {
	ID        uuid.UUID `db:"id" json:"mid"`
	TableName string    `db:"table_name" json:"tableName"`
	TabletQty *int      `db:"tablet_qty" json:"tabletQty"`
	Timing    string    `db:"timing" json:"timing"`
	Doctor    string    `db:"doctor" json:"doctor"`
	PatientID uuid.UUID `db:"patient_id" json:"pid"`
}

// Patch carries the optional fields of the medication update. A nil field
// leaves the stored value unchanged.
type Patch struct {
	TableName *string `json:"tableName"`
	TabletQty *int    `json:"tabletQty"`
	Timing    *string `json:"timing"`
	Doctor    *string `json:"doctor"`
}

// Apply merges the non-nil fields of the patch into m.
func (pt Patch) Apply(m *Medication) {
	if pt.TableName != nil {
		m.TableName = *pt.TableName
	}
	if pt.TabletQty != nil {
		m.TabletQty = pt.TabletQty
	}
	if pt.Timing != nil {
		m.Timing = *pt.Timing
	}
	if pt.Doctor != nil {
		m.Doctor = *pt.Doctor
	}
}
