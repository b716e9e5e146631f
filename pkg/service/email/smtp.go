package email

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// Config holds the SMTP connection settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// Templates overrides the built-in templates per email type
	Templates map[types.EmailType]Template
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpService struct {
	cfg       Config
	templates map[types.EmailType]*compiledTemplate
	send      sendFunc
}

type compiledTemplate struct {
	subject *template.Template
	body    *template.Template
}

// New builds an SMTP backed email service. Templates not overridden in the
// config fall back to the built-in ones.
func New(cfg Config) (Service, error) {
	if cfg.Host == "" {
		return nil, goerr.New("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, goerr.New("sender address is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	svc := &smtpService{
		cfg:       cfg,
		templates: map[types.EmailType]*compiledTemplate{},
		send:      smtp.SendMail,
	}

	for _, emailType := range types.AllEmailTypes() {
		tmpl, ok := cfg.Templates[emailType]
		if !ok {
			tmpl = defaultTemplates[emailType]
		}
		compiled, err := compile(emailType, tmpl)
		if err != nil {
			return nil, err
		}
		svc.templates[emailType] = compiled
	}

	return svc, nil
}

func compile(emailType types.EmailType, tmpl Template) (*compiledTemplate, error) {
	subject, err := template.New(emailType.String() + ".subject").Parse(tmpl.Subject)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse subject template", goerr.V("type", emailType))
	}
	body, err := template.New(emailType.String() + ".body").Parse(tmpl.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse body template", goerr.V("type", emailType))
	}
	return &compiledTemplate{subject: subject, body: body}, nil
}

func (s *smtpService) Send(ctx context.Context, emailType types.EmailType, to string, data ListContext) error {
	tmpl, ok := s.templates[emailType]
	if !ok {
		return goerr.New("no template for email type", goerr.V("type", emailType))
	}

	var subject, body bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return goerr.Wrap(err, "failed to render subject", goerr.V("type", emailType))
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return goerr.Wrap(err, "failed to render body", goerr.V("type", emailType))
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject.String())
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := s.send(addr, auth, s.cfg.From, []string{to}, msg.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to send email",
			goerr.V("type", emailType),
			goerr.V("to", to))
	}

	logging.From(ctx).Info("Sent email",
		slog.String("type", emailType.String()),
		slog.String("to", to))

	return nil
}
