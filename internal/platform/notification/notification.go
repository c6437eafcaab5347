// Package notification provides outbound email with template rendering, an
// SMTP-backed sender, and an in-memory record of delivery attempts.
package notification

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Sender
// ---------------------------------------------------------------------------

// EmailSender is the interface for sending email messages.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMTPSender delivers mail through a plain SMTP relay. There is no SMTP
// client library in use elsewhere in the project, so this rides net/smtp.
type SMTPSender struct {
	Host string
	Port string
	From string
}

func (s *SMTPSender) SendEmail(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + s.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")
	return smtp.SendMail(s.Host+":"+s.Port, nil, s.From, []string{to}, []byte(msg))
}

// NopSender discards mail. Used when SMTP is not configured.
type NopSender struct{}

func (NopSender) SendEmail(context.Context, string, string, string) error { return nil }

// ---------------------------------------------------------------------------
// Templates
// ---------------------------------------------------------------------------

// Template defines a reusable notification template.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TemplateEngine manages notification templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in templates pre-registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{templates: make(map[string]*Template)}
	e.registerBuiltIn()
	return e
}

func (e *TemplateEngine) registerBuiltIn() {
	builtIn := []Template{
		{
			ID:      "patient-welcome",
			Name:    "Patient Welcome",
			Subject: "Welcome to HealthCare!",
			Body: "Hello {{patient_name}},\n\n" +
				"Welcome to our HealthCare System!\n" +
				"We are happy to have you onboard.\n\n" +
				"Your login details are:\n" +
				"Email: {{email}}\n" +
				"Password: {{password}}\n\n" +
				"Please keep this safe. If you ever need help, your caretaker {{caretaker_email}} is here to support you.\n\n" +
				"Stay healthy & take care!\n\nYour HealthCare Team",
		},
		{
			ID:      "caretaker-notify",
			Name:    "CareTaker Notification",
			Subject: "CareTaker Notification",
			Body: "Hello CareTaker,\n\n" +
				"Your patient {{patient_name}} has registered successfully.\n" +
				"Here are their login details:\n" +
				"Email: {{caretaker_email}}\n" +
				"Password: {{password}}\n\n" +
				"Please support them with love & care.\n\nThanks,\nHealthCare Team",
		},
	}
	for i := range builtIn {
		t := builtIn[i]
		e.templates[t.ID] = &t
	}
}

// RegisterTemplate adds or replaces a template in the engine.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render looks up a template by ID and performs {{key}} replacement using the
// supplied data map. Keys present in the template but absent from data are
// left as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (subject, body string, err error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found", templateID)
	}

	subject = t.Subject
	body = t.Body
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, body, nil
}

// ---------------------------------------------------------------------------
// Mailer
// ---------------------------------------------------------------------------

// Email represents a single outbound message and its delivery outcome.
type Email struct {
	ID        string     `json:"id"`
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

// Mailer renders templates, dispatches mail through the configured sender,
// and keeps an in-memory record of every attempt.
type Mailer struct {
	sender    EmailSender
	templates *TemplateEngine

	mu   sync.RWMutex
	sent map[string]*Email
}

func NewMailer(sender EmailSender, tpl *TemplateEngine) *Mailer {
	return &Mailer{
		sender:    sender,
		templates: tpl,
		sent:      make(map[string]*Email),
	}
}

// Send dispatches a message, assigns an ID and timestamps, and records the
// outcome in memory.
func (m *Mailer) Send(ctx context.Context, recipient, subject, body string) error {
	e := &Email{
		ID:        uuid.New().String(),
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	sendErr := m.sender.SendEmail(ctx, recipient, subject, body)
	if sendErr != nil {
		e.Status = "failed"
		e.Error = sendErr.Error()
	} else {
		e.Status = "sent"
		sentAt := time.Now().UTC()
		e.SentAt = &sentAt
	}

	m.mu.Lock()
	m.sent[e.ID] = e
	m.mu.Unlock()

	return sendErr
}

// SendFromTemplate renders a template and sends the resulting message.
func (m *Mailer) SendFromTemplate(ctx context.Context, templateID string, data map[string]string, recipient string) error {
	subject, body, err := m.templates.Render(templateID, data)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}
	return m.Send(ctx, recipient, subject, body)
}

// Stats returns counts of delivery attempts grouped by status.
func (m *Mailer) Stats() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]int)
	for _, e := range m.sent {
		stats[e.Status]++
	}
	return stats
}

// ---------------------------------------------------------------------------
// Mock sender (test double)
// ---------------------------------------------------------------------------

// EmailCall records a single call to SendEmail.
type EmailCall struct {
	To      string
	Subject string
	Body    string
}

// MockEmailSender is a test double for EmailSender.
type MockEmailSender struct {
	mu         sync.Mutex
	calls      []EmailCall
	ShouldFail bool
	FailError  string
}

// SendEmail records the call and optionally returns an error.
func (m *MockEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, EmailCall{To: to, Subject: subject, Body: body})
	if m.ShouldFail {
		return errors.New(m.FailError)
	}
	return nil
}

// Calls returns a copy of recorded email calls.
func (m *MockEmailSender) Calls() []EmailCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailCall, len(m.calls))
	copy(out, m.calls)
	return out
}
