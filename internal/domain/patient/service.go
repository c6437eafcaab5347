package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Mailer is the slice of the notification platform the registration flow
// needs: render a named template and send it.
type Mailer interface {
	SendFromTemplate(ctx context.Context, templateID string, data map[string]string, recipient string) error
}

type Service struct {
	patients Repository
	mailer   Mailer
	logger   zerolog.Logger
}

func NewService(patients Repository, mailer Mailer, logger zerolog.Logger) *Service {
	return &Service{patients: patients, mailer: mailer, logger: logger}
}

// Register persists a new patient and sends the welcome emails. A duplicate
// email aborts before anything is stored or sent. Email delivery failures are
// logged and swallowed; patient creation is never rolled back for them.
func (s *Service) Register(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	taken, err := s.patients.ExistsByEmail(ctx, p.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	if err := s.patients.Create(ctx, p); err != nil {
		return err
	}

	data := map[string]string{
		"patient_name":    p.Name,
		"email":           p.Email,
		"password":        p.Password,
		"caretaker_email": p.CareTakerEmail,
	}
	if err := s.mailer.SendFromTemplate(ctx, "patient-welcome", data, p.Email); err != nil {
		s.logger.Warn().Err(err).Str("email", p.Email).Msg("welcome email failed")
	}
	if p.CareTakerEmail != "" {
		if err := s.mailer.SendFromTemplate(ctx, "caretaker-notify", data, p.CareTakerEmail); err != nil {
			s.logger.Warn().Err(err).Str("email", p.CareTakerEmail).Msg("caretaker email failed")
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Login resolves an email to a patient or caretaker identity and compares the
// password with plain string equality. The patient email is checked first;
// only when it misses is the caretaker email consulted.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	p, err := s.patients.GetByEmail(ctx, email)
	if err == nil {
		if p.Password != password {
			return nil, ErrInvalidPassword
		}
		return &LoginResult{Role: RolePatient, Patient: p}, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	p, err = s.patients.GetByCaretakerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if p.Password != password {
		return nil, ErrInvalidPassword
	}
	return &LoginResult{Role: RoleCaretaker, Patient: p}, nil
}

// UpdatePartial merges the non-nil patch fields into the stored record.
func (s *Service) UpdatePartial(ctx context.Context, id uuid.UUID, patch Patch) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ReplaceProfile overwrites every profile field with the supplied values.
func (s *Service) ReplaceProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = upd.Name
	p.Email = upd.Email
	p.Password = upd.Password
	p.Description = upd.Description
	p.BP = upd.BP
	p.RegularDoctor = upd.RegularDoctor
	p.CareTakerEmail = upd.CareTakerEmail
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetAlert sets or clears the alert flag.
func (s *Service) SetAlert(ctx context.Context, id uuid.UUID, alert bool) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Alert = alert
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
