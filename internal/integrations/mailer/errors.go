package mailer

import "errors"

var (
	// ErrSendFailed is returned when the SMTP server rejects or drops a message
	ErrSendFailed = errors.New("mailer client: failed to send message")
)
