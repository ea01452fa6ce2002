package domain

import "time"

// Logger is the structured logger the business layer writes audit events to.
// rlog.Ctx satisfies it in production.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Clock returns the current time. Businesses take one so tests can pin "now".
type Clock func() time.Time
