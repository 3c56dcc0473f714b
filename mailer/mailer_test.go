package mailer

import (
	"context"
	"elearning/config"
	"errors"
	"net/smtp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplates(t *testing.T) {
	activation := ActivationData{ActivationCode: "1234"}
	activation.User.Name = "Ann"

	cases := []struct {
		msg  Message
		want []string
	}{
		{Message{Subject: "Activate your account", Template: TemplateActivation, Data: activation}, []string{"Ann", "1234"}},
		{Message{Subject: "Question reply", Template: TemplateQuestionReply, Data: QuestionReplyData{Name: "Bob", Title: "Intro"}}, []string{"Bob", "Intro"}},
		{Message{Subject: "Order Confirmation", Template: TemplateOrderConfirmation, Data: OrderConfirmationData{
			Order: OrderSummary{ID: "abc123", Name: "Go", Price: 19.5, Date: "March 1, 2024"},
		}}, []string{"abc123", "19.50", "March 1, 2024"}},
	}

	for _, tc := range cases {
		t.Run(tc.msg.Template, func(t *testing.T) {
			html, err := Render(tc.msg)
			require.NoError(t, err)
			assert.Contains(t, html, "<title>"+tc.msg.Subject+"</title>")
			for _, w := range tc.want {
				assert.Contains(t, html, w)
			}
		})
	}
}

func TestRenderEscapesData(t *testing.T) {
	html, err := Render(Message{Template: TemplateQuestionReply, Data: QuestionReplyData{Name: "<script>"}})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Message{Template: "missing.html"})
	assert.ErrorContains(t, err, "unknown template")
}

func TestNewSelectsBackend(t *testing.T) {
	assert.IsType(t, &SendGrid{}, New(&config.Config{SendgridAPIKey: "key"}, zerolog.Nop()))
	assert.IsType(t, &SMTP{}, New(&config.Config{SMTPHost: "smtp.example.com"}, zerolog.Nop()))
	assert.IsType(t, &Console{}, New(&config.Config{}, zerolog.Nop()))
}

func TestSMTPSend(t *testing.T) {
	m := NewSMTP("smtp.example.com", 587, "user", "pass", "noreply@example.com")

	var gotAddr string
	var gotTo []string
	var gotBody string
	m.send = func(addr string, _ smtp.Auth, _ string, to []string, msg []byte) error {
		gotAddr, gotTo, gotBody = addr, to, string(msg)
		return nil
	}

	err := m.Send(context.Background(), Message{
		To: "ann@example.com", Subject: "Question reply", Template: TemplateQuestionReply,
		Data: QuestionReplyData{Name: "Ann", Title: "Intro"},
	})
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"ann@example.com"}, gotTo)
	assert.Contains(t, gotBody, "Subject: Question reply\r\n")

	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }
	assert.ErrorContains(t, m.Send(context.Background(), Message{Template: TemplateQuestionReply, Data: QuestionReplyData{}}), "refused")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Send(context.Background(), Message{To: "a@b.c", Template: TemplateQuestionReply, Data: QuestionReplyData{}}))
	assert.Len(t, r.Sent(), 1)

	r.Err = errors.New("down")
	assert.Error(t, r.Send(context.Background(), Message{Template: TemplateQuestionReply, Data: QuestionReplyData{}}))
	assert.Len(t, r.Sent(), 1)
}
