package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor adds request_id to log records written with a request
// context. It matches logger.ContextExtractor.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := FromContext(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}
