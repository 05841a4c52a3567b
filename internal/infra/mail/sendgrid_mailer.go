package mail

import (
	"context"
	"net/http"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	// DefaultSendGridHost is the public SendGrid API host.
	DefaultSendGridHost = "https://api.sendgrid.com"
	sendEndpoint        = "/v3/mail/send"
)

type sendGridMailer struct {
	apiKey string
	host   string
	from   *sgmail.Email
}

// NewSendGridMailer creates a Mailer that posts to the SendGrid v3 API.
func NewSendGridMailer(apiKey, host, fromEmail, fromName string) service.Mailer {
	if host == "" {
		host = DefaultSendGridHost
	}

	return &sendGridMailer{
		apiKey: apiKey,
		host:   host,
		from:   sgmail.NewEmail(fromName, fromEmail),
	}
}

func (m *sendGridMailer) Send(ctx context.Context, email service.Email) error {
	if email.ToEmail == "" {
		return domainerrors.NewValidationError("toEmail", "required")
	}

	to := sgmail.NewEmail(email.ToName, email.ToEmail)
	message := sgmail.NewSingleEmail(m.from, email.Subject, to, email.Text, email.HTML)

	request := sendgrid.GetRequest(m.apiKey, sendEndpoint, m.host)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(message)

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return domainerrors.NewUpstreamError("sendgrid", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return domainerrors.NewUpstreamError("sendgrid",
			errors.Errorf("status %d: %s", resp.StatusCode, resp.Body))
	}

	return nil
}

// logMailer drops messages. It is used when no API key is configured.
type logMailer struct {
	log func(msg string, args ...any)
}

func (m logMailer) Send(_ context.Context, email service.Email) error {
	m.log("Mail delivery disabled, dropping message", "to", email.ToEmail, "subject", email.Subject)

	return nil
}
