package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for patients. Lookups that miss
// return ErrNotFound. Patients are never deleted.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// GetByEmail matches the unique patient email.
	GetByEmail(ctx context.Context, email string) (*Patient, error)
	// GetByCaretakerEmail returns the first patient whose caretaker email
	// matches. Caretaker emails are not unique; order is unspecified.
	GetByCaretakerEmail(ctx context.Context, email string) (*Patient, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, p *Patient) error
}
