package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/openarchief/vernietiging/pkg/domain/interfaces"
	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/domain/types"
	"github.com/openarchief/vernietiging/pkg/utils/errutil"
)

// Service records in-app notifications for users and optionally announces
// list completion on a Slack webhook.
type Service interface {
	// Notify stores a notification for one user about one list
	Notify(ctx context.Context, listID types.ListID, userID types.UserID, message string) error

	// AnnounceCompletion reports a finished destruction run to the
	// configured webhook. A misconfigured or failing webhook never fails
	// the pipeline; the error is logged and dropped.
	AnnounceCompletion(ctx context.Context, list *model.DestructionList, destroyed, failed int)
}

type webhookFunc func(ctx context.Context, url string, msg *slack.WebhookMessage) error

type service struct {
	notifications interfaces.NotificationRepository
	webhookURL    string
	postWebhook   webhookFunc
}

// New builds the notifier. The webhook URL may be empty, which disables the
// Slack announcement.
func New(notifications interfaces.NotificationRepository, webhookURL string) Service {
	return &service{
		notifications: notifications,
		webhookURL:    webhookURL,
		postWebhook:   slack.PostWebhookContext,
	}
}

func (s *service) Notify(ctx context.Context, listID types.ListID, userID types.UserID, message string) error {
	notification := &model.Notification{
		ListID:  listID,
		UserID:  userID,
		Message: message,
	}
	if _, err := s.notifications.Create(ctx, notification); err != nil {
		return goerr.Wrap(err, "failed to store notification",
			goerr.V("list_id", listID),
			goerr.V("user_id", userID))
	}
	return nil
}

func (s *service) AnnounceCompletion(ctx context.Context, list *model.DestructionList, destroyed, failed int) {
	if s.webhookURL == "" {
		return
	}

	text := fmt.Sprintf("Destruction list %q has been processed: %d cases destroyed", list.Name, destroyed)
	if failed > 0 {
		text += fmt.Sprintf(", %d failed", failed)
	}

	msg := &slack.WebhookMessage{Text: text}
	if err := s.postWebhook(ctx, s.webhookURL, msg); err != nil {
		errutil.Handle(ctx, goerr.Wrap(err, "failed to post completion webhook",
			goerr.V("list_id", list.ID)), "Slack announcement failed")
	}
}
