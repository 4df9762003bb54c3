// Package logger builds configured log/slog loggers through functional
// options: output format (JSON or text), minimum level, destination writer
// and static attributes. Defaults are production-safe (JSON, Info, stdout).
package logger
