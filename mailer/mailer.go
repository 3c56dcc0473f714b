// Package mailer renders the transactional email templates and delivers
// them through SendGrid, SMTP or the log.
package mailer

import (
	"bytes"
	"context"
	"elearning/config"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/rs/zerolog"
)

const (
	TemplateActivation        = "activation.html"
	TemplateQuestionReply     = "question-reply.html"
	TemplateOrderConfirmation = "order-confirmation.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = parseTemplates()

func parseTemplates() map[string]*template.Template {
	out := map[string]*template.Template{}
	for _, name := range []string{TemplateActivation, TemplateQuestionReply, TemplateOrderConfirmation} {
		out[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return out
}

// Message is one templated email to a single recipient.
type Message struct {
	To       string
	Subject  string
	Template string
	Data     any
}

type ActivationData struct {
	User           struct{ Name string }
	ActivationCode string
}

type QuestionReplyData struct {
	Name  string
	Title string
}

type OrderSummary struct {
	ID    string
	Name  string
	Price float64
	Date  string
}

type OrderConfirmationData struct {
	Order OrderSummary
}

// Mailer delivers a Message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Render executes the message template and returns the HTML body.
func Render(msg Message) (string, error) {
	tmpl, ok := templates[msg.Template]
	if !ok {
		return "", fmt.Errorf("mailer: unknown template %q", msg.Template)
	}
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, msg.Template, struct {
		Subject string
		Data    any
	}{msg.Subject, msg.Data})
	if err != nil {
		return "", fmt.Errorf("mailer: render %s: %w", msg.Template, err)
	}
	return buf.String(), nil
}

// New picks SendGrid when an API key is configured, then SMTP, and falls
// back to logging messages.
func New(cfg *config.Config, log zerolog.Logger) Mailer {
	switch {
	case cfg.SendgridAPIKey != "":
		return NewSendGrid(cfg.SendgridAPIKey, cfg.MailFrom)
	case cfg.SMTPHost != "":
		return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	default:
		return NewConsole(log)
	}
}

// Console logs rendered messages instead of sending them.
type Console struct {
	log zerolog.Logger
}

func NewConsole(log zerolog.Logger) *Console {
	return &Console{log: log.With().Str("component", "mailer").Logger()}
}

func (m *Console) Send(_ context.Context, msg Message) error {
	body, err := Render(msg)
	if err != nil {
		return err
	}
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("template", msg.Template).
		Int("bytes", len(body)).
		Msg("Email not sent, no mail backend configured")
	return nil
}

// Recorder keeps every message it is given. Err, when set, is returned
// from Send instead.
type Recorder struct {
	mu       sync.Mutex
	Err      error
	Messages []Message
}

func (r *Recorder) Send(_ context.Context, msg Message) error {
	if _, err := Render(msg); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Messages = append(r.Messages, msg)
	return nil
}

// Sent returns a copy of the recorded messages.
func (r *Recorder) Sent() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.Messages...)
}
