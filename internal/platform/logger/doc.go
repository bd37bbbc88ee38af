// Package logger provides structured logging for the application: a
// slog-based JSON logger configured from application settings, plus helpers
// for carrying a request-scoped logger through context.
package logger
