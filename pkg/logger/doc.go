// Package logger builds slog loggers for the validation service and CLI.
//
// New takes functional options for format, level, static attributes and
// context extractors. Extractors run on every record, so request scoped values
// such as the request id appear on log lines written deep inside the engine:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "gdsvalidate"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor),
//	)
//
// Attribute helpers (Page, Field, ErrorKey, Error, ...) keep key names
// consistent across packages. Error and Errors return an empty attribute for
// nil errors, which slog drops.
package logger
