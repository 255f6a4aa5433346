/*
Package log provides structured logging for Wharf using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component- and module-scoped child loggers and configurable log levels.
Console output with timestamps is the default; JSON output is available for
log aggregation.

Initialize once at startup:

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})

Derive scoped loggers for long-lived components:

	logger := log.WithComponent("runtime")
	logger.Warn().Str("container_id", id).Msg("skipping undecodable record")
*/
package log
