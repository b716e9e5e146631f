package config

import (
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/service/email"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// Email holds CLI flags for the SMTP transport
type Email struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// Flags returns CLI flags for email configuration
func (e *Email) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server host (empty disables email)",
			Category:    "Email",
			Sources:     cli.EnvVars("VERNIETIGING_SMTP_HOST"),
			Destination: &e.host,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port",
			Category:    "Email",
			Value:       587,
			Sources:     cli.EnvVars("VERNIETIGING_SMTP_PORT"),
			Destination: &e.port,
		},
		&cli.StringFlag{
			Name:        "smtp-username",
			Usage:       "SMTP username",
			Category:    "Email",
			Sources:     cli.EnvVars("VERNIETIGING_SMTP_USERNAME"),
			Destination: &e.username,
		},
		&cli.StringFlag{
			Name:        "smtp-password",
			Usage:       "SMTP password",
			Category:    "Email",
			Sources:     cli.EnvVars("VERNIETIGING_SMTP_PASSWORD"),
			Destination: &e.password,
		},
		&cli.StringFlag{
			Name:        "smtp-from",
			Usage:       "Sender address of the automatic emails",
			Category:    "Email",
			Sources:     cli.EnvVars("VERNIETIGING_SMTP_FROM"),
			Destination: &e.from,
		},
	}
}

// Configure builds the email service, or returns nil when no SMTP host is
// configured
func (e *Email) Configure() (email.Service, error) {
	if e.host == "" {
		logging.Default().Warn("No SMTP host configured, emails are disabled")
		return nil, nil
	}

	svc, err := email.New(email.Config{
		Host:     e.host,
		Port:     int(e.port),
		Username: e.username,
		Password: e.password,
		From:     e.from,
	})
	if err != nil {
		return nil, err
	}

	logging.Default().Info("Using SMTP transport", "host", e.host, "port", e.port)
	return svc, nil
}
