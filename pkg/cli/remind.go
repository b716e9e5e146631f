package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/cli/config"
	"github.com/openarchief/vernietiging/pkg/usecase"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

func cmdRemind() *cli.Command {
	var repoCfg config.Repository
	var emailCfg config.Email
	var archiveCfg config.Archive

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, emailCfg.Flags()...)
	flags = append(flags, archiveCfg.Flags()...)

	return &cli.Command{
		Name:    "remind",
		Aliases: []string{"r"},
		Usage:   "Run one review reminder sweep",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			settings, _, err := archiveCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure workflow settings")
			}

			ucOpts := []usecase.Option{
				usecase.WithSettings(settings),
			}

			emailSvc, err := emailCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure email transport")
			}
			if emailSvc != nil {
				ucOpts = append(ucOpts, usecase.WithEmailService(emailSvc))
			}

			uc := usecase.New(repo, ucOpts...)

			sent, err := uc.CheckReviewReminders(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to run reminder sweep")
			}

			logging.Default().Info("Reminder sweep completed", "sent", sent)
			return nil
		},
	}
}
