// Package logging builds slog loggers with a compact console format for
// terminals and a JSON format for machine consumption.
package logging
