package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type SendGrid struct {
	key  string
	host string
	from *sgmail.Email
}

func NewSendGrid(key, from string) *SendGrid {
	return &SendGrid{key: key, host: sendgridHost, from: sgmail.NewEmail("", from)}
}

func (m *SendGrid) Send(_ context.Context, msg Message) error {
	html, err := Render(msg)
	if err != nil {
		return err
	}

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", msg.To))
	p.Subject = msg.Subject

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/html", html))

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, m.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("mailer: sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mailer: sendgrid returned %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
