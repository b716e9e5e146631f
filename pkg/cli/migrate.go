package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/openarchief/vernietiging/pkg/utils/logging"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("VERNIETIGING_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("VERNIETIGING_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			indexConfig := getIndexConfig()

			client, err := fireconf.NewClient(ctx, projectID, databaseID)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
				plan, err := client.GetMigrationPlan(ctx, indexConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to create migration plan")
				}

				if len(plan.Steps) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, step := range plan.Steps {
					logger.Info("Migration step",
						"collection", step.Collection,
						"operation", step.Operation,
						"description", step.Description,
						"destructive", step.Destructive)
				}
			} else {
				logger.Info("Applying migrations")
				if err := client.Migrate(ctx, indexConfig); err != nil {
					return goerr.Wrap(err, "failed to apply migrations")
				}
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "destruction_lists",
				Indexes: []fireconf.Index{
					// ListByAssignee: Assignee ASC, ID DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "Assignee", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "destruction_list_items",
				Indexes: []fireconf.Index{
					// ListByList: ListID ASC, ID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderAscending},
						},
					},
					// ListByStatus: ListID ASC, Status ASC, ID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "Status", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "destruction_list_assignees",
				Indexes: []fireconf.Index{
					// ListByList: ListID ASC, Order ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "Order", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "reviews",
				Indexes: []fireconf.Index{
					// Latest: ListID ASC, ID DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderDescending},
						},
					},
					// LatestByAuthor: ListID ASC, AuthorID ASC, ID DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "AuthorID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderDescending},
						},
					},
					// ListByList: ListID ASC, ID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "item_reviews",
				Indexes: []fireconf.Index{
					// ListByReview: ReviewID ASC, ID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ReviewID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderAscending},
						},
					},
					// FirstItemReviewByItem: ItemID ASC, ID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ItemID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "review_comments",
				Indexes: []fireconf.Index{
					// LastComment: ReviewID ASC, ID DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "ReviewID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "notifications",
				Indexes: []fireconf.Index{
					// ListByUser: UserID ASC, Created DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "UserID", Order: fireconf.OrderAscending},
							{Path: "Created", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "audit_log",
				Indexes: []fireconf.Index{
					// ListByList: ListID ASC, ID ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "ListID", Order: fireconf.OrderAscending},
							{Path: "ID", Order: fireconf.OrderAscending},
						},
					},
				},
			},
		},
	}
}
