// Package logger builds the service's slog.Logger and keeps attribute names consistent.
//
// New accepts functional options for format, level, output, static attributes and
// ContextExtractor callbacks. Extractors run for every record, which is how the request
// id set by the requestid middleware ends up on each line logged during a request:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Env), "progressdash"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "dashboard query failed",
//	    logger.Component("dashboard"),
//	    logger.UserID(userID),
//	    logger.Error(err),
//	)
//
// Error and UserID return an empty attribute for nil input, so they can be passed
// unconditionally.
package logger
