package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blister/blister/internal/domain/consumed"
	"github.com/blister/blister/internal/platform/genai"
)

// =========== Mock Consumed Lister ===========

type mockConsumedLister struct {
	records map[uuid.UUID][]*consumed.Record
	err     error
}

func (m *mockConsumedLister) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*consumed.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records[patientID], nil
}

// =========== Helpers ===========

func newTestService(stub *genai.StubClient) (*Service, *mockConsumedLister) {
	lister := &mockConsumedLister{records: make(map[uuid.UUID][]*consumed.Record)}
	return NewService(lister, stub, zerolog.Nop()), lister
}

func seedRecords(lister *mockConsumedLister, pid uuid.UUID) {
	lister.records[pid] = []*consumed.Record{
		{TableName: "Aspirin", Doctor: "Dr. Smith", Timing: "morning", DateTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{TableName: "Aspirin", Doctor: "Dr. Smith", Timing: "morning", DateTime: time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)},
	}
}

// =========== Tests ===========

func TestAsk_NoData(t *testing.T) {
	stub := &genai.StubClient{Response: "should not be called"}
	svc, _ := newTestService(stub)

	outcome, err := svc.Ask(context.Background(), uuid.New(), "how am I doing?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.NoData {
		t.Error("expected NoData outcome")
	}
	if outcome.AIResponse != NoDataMessage {
		t.Errorf("unexpected response: %q", outcome.AIResponse)
	}
	if len(stub.Prompts) != 0 {
		t.Error("expected no model call for empty history")
	}
}

func TestAsk_Success(t *testing.T) {
	stub := &genai.StubClient{Response: "Keep taking Aspirin in the morning."}
	svc, lister := newTestService(stub)
	pid := uuid.New()
	seedRecords(lister, pid)

	outcome, err := svc.Ask(context.Background(), pid, "how am I doing?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.NoData || outcome.AIFailed {
		t.Fatalf("expected success outcome, got %+v", outcome)
	}
	if outcome.AIResponse != "Keep taking Aspirin in the morning." {
		t.Errorf("unexpected response: %q", outcome.AIResponse)
	}
	if !strings.Contains(outcome.Summary, "• Aspirin (Doctor: Dr. Smith, Timing: morning)") {
		t.Errorf("unexpected summary: %q", outcome.Summary)
	}
}

func TestAsk_PromptCarriesSummary(t *testing.T) {
	stub := &genai.StubClient{Response: "ok"}
	svc, lister := newTestService(stub)
	pid := uuid.New()
	seedRecords(lister, pid)

	if _, err := svc.Ask(context.Background(), pid, "analyze my adherence"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stub.Prompts) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(stub.Prompts))
	}
	sent := stub.Prompts[0]
	if !strings.HasPrefix(sent, "analyze my adherence\n\n") {
		t.Errorf("expected caller prompt first, got %q", sent)
	}
	if !strings.Contains(sent, "Consumed Medication Details:") {
		t.Errorf("expected summary appended, got %q", sent)
	}
}

func TestAsk_AIFailure(t *testing.T) {
	stub := &genai.StubClient{Err: errors.New("quota exceeded")}
	svc, lister := newTestService(stub)
	pid := uuid.New()
	seedRecords(lister, pid)

	outcome, err := svc.Ask(context.Background(), pid, "how am I doing?")
	if err != nil {
		t.Fatalf("expected failure absorbed into outcome, got %v", err)
	}
	if !outcome.AIFailed {
		t.Error("expected AIFailed outcome")
	}
}

func TestAsk_RepositoryError(t *testing.T) {
	stub := &genai.StubClient{Response: "ok"}
	svc, lister := newTestService(stub)
	lister.err = errors.New("db down")

	if _, err := svc.Ask(context.Background(), uuid.New(), "x"); err == nil {
		t.Fatal("expected error")
	}
}
