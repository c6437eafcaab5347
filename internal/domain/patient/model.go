package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no patient matches a lookup.
	ErrNotFound = errors.New("patient not found")
	// ErrEmailTaken is returned when registration reuses an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidPassword is returned when login credentials do not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// Patient maps to the patient table. Passwords are stored and compared as
// plain strings for parity with the system this replaces; see DESIGN.md.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"pid"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Password       string    `db:"password" json:"password"`
	Description    string    `db:"description" json:"description"`
	BP             string    `db:"bp" json:"bp"`
	RegularDoctor  string    `db:"regular_doctor" json:"regularDoctor"`
	CareTakerEmail string    `db:"care_taker_email" json:"careTakerEmail"`
	Alert          bool      `db:"alert" json:"alert"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// Patch carries the optional fields of the partial update. A nil field means
// "leave the stored value unchanged".
type Patch struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	CareTakerEmail *string `json:"careTakerEmail"`
}

// Apply merges the non-nil fields of the patch into p.
func (pt Patch) Apply(p *Patient) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Email != nil {
		p.Email = *pt.Email
	}
	if pt.Password != nil {
		p.Password = *pt.Password
	}
	if pt.CareTakerEmail != nil {
		p.CareTakerEmail = *pt.CareTakerEmail
	}
}

// ProfileUpdate is the full-replace payload of the profile update route.
// Every field overwrites the stored value, empty or not.
type ProfileUpdate struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Description    string `json:"description"`
	BP             string `json:"bp"`
	RegularDoctor  string `json:"regularDoctor"`
	CareTakerEmail string `json:"careTakerEmail"`
}

// Login roles.
const (
	RolePatient   = "patient"
	RoleCaretaker = "caretaker"
)

// LoginResult carries the resolved role and the patient record it grants
// access to. For caretakers this is the patient they look after.
type LoginResult struct {
	Role    string   `json:"role"`
	Patient *Patient `json:"patient"`
}
