package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/cli/config"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/service/notify"
	"github.com/openarchief/vernietiging/pkg/usecase"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

func cmdProcess() *cli.Command {
	var listID int
	var repoCfg config.Repository
	var zakenCfg config.Zaken
	var emailCfg config.Email
	var slackCfg config.Slack
	var archiveCfg config.Archive

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "list-id",
			Usage:       "ID of the approved destruction list to process",
			Required:    true,
			Destination: &listID,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, zakenCfg.Flags()...)
	flags = append(flags, emailCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, archiveCfg.Flags()...)

	return &cli.Command{
		Name:    "process",
		Aliases: []string{"p"},
		Usage:   "Run the destruction pipeline for one list",
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

			settings, reportStore, err := archiveCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure workflow settings")
			}

			ucOpts := []usecase.Option{
				usecase.WithSettings(settings),
				usecase.WithNotifier(notify.New(repo.Notification(), slackCfg.WebhookURL())),
			}

			caseSvc, err := zakenCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Zaken API client")
			}
			if caseSvc != nil {
				ucOpts = append(ucOpts, usecase.WithCaseService(caseSvc))
			}

			emailSvc, err := emailCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure email transport")
			}
			if emailSvc != nil {
				ucOpts = append(ucOpts, usecase.WithEmailService(emailSvc))
			}

			if reportStore != nil {
				ucOpts = append(ucOpts, usecase.WithReportStore(reportStore))
			}

			uc := usecase.New(repo, ucOpts...)

			if err := uc.ProcessList(ctx, types.ListID(listID)); err != nil {
				return goerr.Wrap(err, "failed to process destruction list",
					goerr.V("list_id", listID))
			}

			logging.Default().Info("Destruction list processed", "list_id", listID)
			return nil
		},
	}
}
