package config

import "github.com/urfave/cli/v3"

// Slack holds CLI flags for the completion webhook
type Slack struct {
	webhookURL string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook for processing announcements (empty disables)",
			Category:    "Slack",
			Sources:     cli.EnvVars("VERNIETIGING_SLACK_WEBHOOK_URL"),
			Destination: &s.webhookURL,
		},
	}
}

// WebhookURL returns the configured webhook URL, empty when disabled
func (s *Slack) WebhookURL() string {
	return s.webhookURL
}
