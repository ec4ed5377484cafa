// Package logging builds the structured log/slog logger used by the job and by Fx lifecycle events.
package logging
