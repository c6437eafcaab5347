package consumed

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no consumption record matches a lookup.
var ErrNotFound = errors.New("consumed record not found")

// Consumed is a single intake event: one medication taken at one moment.
// Records are append-only.
type Consumed struct {
	ID           uuid.UUID `db:"id" json:"cid"`
	MedicationID uuid.UUID `db:"medication_id" json:"mid"`
	DateTime     time.Time `db:"date_time" json:"dateTime"`
}

// Record is a consumption event joined with the medication it belongs to,
// as returned by the per-patient listing.
type Record struct {
	ID           uuid.UUID `db:"id" json:"cid"`
	MedicationID uuid.UUID `db:"medication_id" json:"mid"`
	DateTime     time.Time `db:"date_time" json:"dateTime"`
	TableName    string    `db:"table_name" json:"tableName"`
	Doctor       string    `db:"doctor" json:"doctor"`
	Timing       string    `db:"timing" json:"timing"`
}
