package config

import (
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/service/zaken"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

// Zaken holds CLI flags for the external case management API
type Zaken struct {
	baseURL          string
	documentsBaseURL string
	clientID         string
	secret           string
}

// Flags returns CLI flags for the Zaken API client
func (z *Zaken) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "zaken-base-url",
			Usage:       "Base URL of the Zaken API (e.g. https://zaken.example.nl/api/v1)",
			Category:    "Zaken API",
			Sources:     cli.EnvVars("VERNIETIGING_ZAKEN_BASE_URL"),
			Destination: &z.baseURL,
		},
		&cli.StringFlag{
			Name:        "documents-base-url",
			Usage:       "Base URL of the Documenten API, required for report uploads",
			Category:    "Zaken API",
			Sources:     cli.EnvVars("VERNIETIGING_DOCUMENTS_BASE_URL"),
			Destination: &z.documentsBaseURL,
		},
		&cli.StringFlag{
			Name:        "zaken-client-id",
			Usage:       "Client ID for the Zaken API JWT",
			Category:    "Zaken API",
			Sources:     cli.EnvVars("VERNIETIGING_ZAKEN_CLIENT_ID"),
			Destination: &z.clientID,
		},
		&cli.StringFlag{
			Name:        "zaken-secret",
			Usage:       "Client secret for the Zaken API JWT",
			Category:    "Zaken API",
			Sources:     cli.EnvVars("VERNIETIGING_ZAKEN_SECRET"),
			Destination: &z.secret,
		},
	}
}

// Configure builds the Zaken API client, or returns nil when no base URL is
// configured. Without the client the pipeline cannot destroy anything.
func (z *Zaken) Configure() (zaken.Service, error) {
	if z.baseURL == "" {
		logging.Default().Warn("No Zaken API configured, case destruction is disabled")
		return nil, nil
	}

	svc, err := zaken.New(zaken.Config{
		BaseURL:          z.baseURL,
		DocumentsBaseURL: z.documentsBaseURL,
		ClientID:         z.clientID,
		Secret:           z.secret,
	})
	if err != nil {
		return nil, err
	}

	logging.Default().Info("Using Zaken API", "base_url", z.baseURL)
	return svc, nil
}
