package mailer

// Logger defines the logging contract required by the mail client
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
