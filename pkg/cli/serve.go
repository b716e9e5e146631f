package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/cli/config"
	httpctrl "github.com/openarchief/vernietiging/pkg/controller/http"
	"github.com/openarchief/vernietiging/pkg/service/notify"
	"github.com/openarchief/vernietiging/pkg/usecase"
	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var reminderInterval time.Duration
	var repoCfg config.Repository
	var zakenCfg config.Zaken
	var emailCfg config.Email
	var slackCfg config.Slack
	var archiveCfg config.Archive

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("VERNIETIGING_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "reminder-interval",
			Usage:       "Interval between review reminder sweeps (0 disables)",
			Value:       time.Hour,
			Sources:     cli.EnvVars("VERNIETIGING_REMINDER_INTERVAL"),
			Destination: &reminderInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, zakenCfg.Flags()...)
	flags = append(flags, emailCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, archiveCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server and reminder worker",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
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

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Run the reminder sweep in the background alongside the server
			reminderCtx, stopReminders := context.WithCancel(ctx)
			defer stopReminders()
			if reminderInterval > 0 {
				go runReminderLoop(reminderCtx, uc, reminderInterval)
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)
				stopReminders()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

func runReminderLoop(ctx context.Context, uc *usecase.UseCases, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := uc.CheckReviewReminders(ctx)
			if err != nil {
				logging.Default().Error("reminder sweep failed", "error", err)
				continue
			}
			if sent > 0 {
				logging.Default().Info("Sent review reminders", "count", sent)
			}
		}
	}
}
