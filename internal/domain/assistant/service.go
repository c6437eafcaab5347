package assistant

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blister/blister/internal/domain/consumed"
	"github.com/blister/blister/internal/platform/genai"
)

// ConsumedLister is the slice of the consumed domain the assistant needs:
// the patient's joined consumption history.
type ConsumedLister interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*consumed.Record, error)
}

// AskOutcome is the result of one assistant question. Exactly one of the
// three shapes holds: no data, AI failure, or success with both texts set.
type AskOutcome struct {
	AIResponse string
	Summary    string
	NoData     bool
	AIFailed   bool
}

type Service struct {
	records ConsumedLister
	ai      genai.Client
	logger  zerolog.Logger
}

func NewService(records ConsumedLister, ai genai.Client, logger zerolog.Logger) *Service {
	return &Service{records: records, ai: ai, logger: logger}
}

// Ask summarizes the patient's consumption history and sends it to the model
// together with the caller's prompt. Model failures are absorbed into the
// outcome so the handler can answer with the fixed error shape.
func (s *Service) Ask(ctx context.Context, patientID uuid.UUID, prompt string) (*AskOutcome, error) {
	records, err := s.records.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &AskOutcome{AIResponse: NoDataMessage, NoData: true}, nil
	}

	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{Medication: r.TableName, Doctor: r.Doctor, Timing: r.Timing, Time: r.DateTime}
	}
	summary := BuildSummary(entries)

	answer, err := s.ai.Generate(ctx, prompt+"\n\n"+summary)
	if err != nil {
		s.logger.Error().Err(err).Str("patient_id", patientID.String()).Msg("ai generation failed")
		return &AskOutcome{AIFailed: true}, nil
	}
	return &AskOutcome{AIResponse: answer, Summary: summary}, nil
}
