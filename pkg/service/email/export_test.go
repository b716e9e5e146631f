package email

// SendFunc is exported for testing
type SendFunc = sendFunc

// SetSendFunc replaces the SMTP transport, for testing
func SetSendFunc(svc Service, send SendFunc) {
	svc.(*smtpService).send = send
}
