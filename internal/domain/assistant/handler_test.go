package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/blister/blister/internal/platform/genai"
)

func newTestHandler(stub *genai.StubClient) (*Handler, *mockConsumedLister, *echo.Echo) {
	svc, lister := newTestService(stub)
	return NewHandler(svc), lister, echo.New()
}

func postAsk(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/gemini/medication/ask", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Ask_NoData(t *testing.T) {
	h, _, e := newTestHandler(&genai.StubClient{Response: "x"})
	c, rec := postAsk(e, `{"prompt":"how am I doing?","pid":"`+uuid.New().String()+`"}`)
	if err := h.Ask(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var res map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &res)
	if res["aiResponse"] != "No consumption data found for this patient." {
		t.Errorf("unexpected aiResponse: %v", res["aiResponse"])
	}
	if _, ok := res["consumedSummary"]; ok {
		t.Error("no-data response must not carry consumedSummary")
	}
}

func TestHandler_Ask_Success(t *testing.T) {
	h, lister, e := newTestHandler(&genai.StubClient{Response: "All good."})
	pid := uuid.New()
	seedRecords(lister, pid)

	c, rec := postAsk(e, `{"prompt":"how am I doing?","pid":"`+pid.String()+`"}`)
	if err := h.Ask(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var res map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &res)
	if res["aiResponse"] != "All good." {
		t.Errorf("unexpected aiResponse: %v", res["aiResponse"])
	}
	summary, _ := res["consumedSummary"].(string)
	if !strings.Contains(summary, "Consumed Medication Details:") {
		t.Errorf("unexpected consumedSummary: %q", summary)
	}
}

func TestHandler_Ask_AIFailure(t *testing.T) {
	h, lister, e := newTestHandler(&genai.StubClient{Err: errors.New("quota exceeded")})
	pid := uuid.New()
	seedRecords(lister, pid)

	c, rec := postAsk(e, `{"prompt":"x","pid":"`+pid.String()+`"}`)
	if err := h.Ask(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	var res map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &res)
	if res["aiResponse"] != "Error fetching AI response." {
		t.Errorf("unexpected aiResponse: %v", res["aiResponse"])
	}
	if res["consumedSummary"] != "" {
		t.Errorf("expected empty consumedSummary, got %v", res["consumedSummary"])
	}
}

func TestHandler_Ask_InvalidPID(t *testing.T) {
	h, _, e := newTestHandler(&genai.StubClient{Response: "x"})
	c, rec := postAsk(e, `{"prompt":"x","pid":"not-a-uuid"}`)
	if err := h.Ask(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, _, e := newTestHandler(&genai.StubClient{})
	h.RegisterRoutes(e)

	found := false
	for _, r := range e.Routes() {
		if r.Method == http.MethodPost && r.Path == "/api/gemini/medication/ask" {
			found = true
		}
	}
	if !found {
		t.Error("missing ask route")
	}
}
