package logger

import "context"

// Logger is a leveled, printf-style logger. The context is accepted on every
// call so request-scoped values can be attached later without touching callers.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
