package notify_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"

	"github.com/openarchief/vernietiging/pkg/domain/model"
	"github.com/openarchief/vernietiging/pkg/repository/memory"
	"github.com/openarchief/vernietiging/pkg/service/notify"
)

func TestNotifyStoresNotification(t *testing.T) {
	repo := memory.New()
	svc := notify.New(repo.Notification(), "")
	ctx := context.Background()

	gt.NoError(t, svc.Notify(ctx, 1, "record-manager", "Processing of Archive 2015 is complete")).Required()

	notifications, err := repo.Notification().ListByUser(ctx, "record-manager")
	gt.NoError(t, err).Required()
	gt.Array(t, notifications).Length(1)
	gt.Value(t, notifications[0].Message).Equal("Processing of Archive 2015 is complete")
	gt.B(t, notifications[0].Created.IsZero()).False()
}

func TestAnnounceCompletion(t *testing.T) {
	repo := memory.New()
	svc := notify.New(repo.Notification(), "https://hooks.slack.com/services/T/B/X")

	var gotText string
	notify.SetWebhookFunc(svc, func(ctx context.Context, url string, msg *slack.WebhookMessage) error {
		gotText = msg.Text
		return nil
	})

	list := &model.DestructionList{ID: 1, Name: "Archive 2015"}
	svc.AnnounceCompletion(context.Background(), list, 40, 2)

	gt.B(t, strings.Contains(gotText, `"Archive 2015"`)).True()
	gt.B(t, strings.Contains(gotText, "40 cases destroyed")).True()
	gt.B(t, strings.Contains(gotText, "2 failed")).True()
}

func TestAnnounceCompletionDisabledWithoutURL(t *testing.T) {
	repo := memory.New()
	svc := notify.New(repo.Notification(), "")

	called := false
	notify.SetWebhookFunc(svc, func(ctx context.Context, url string, msg *slack.WebhookMessage) error {
		called = true
		return nil
	})

	svc.AnnounceCompletion(context.Background(), &model.DestructionList{ID: 1, Name: "x"}, 1, 0)
	gt.B(t, called).False()
}
