package notify

// WebhookFunc is exported for testing
type WebhookFunc = webhookFunc

// SetWebhookFunc replaces the Slack webhook transport, for testing
func SetWebhookFunc(svc Service, post WebhookFunc) {
	svc.(*service).postWebhook = post
}
