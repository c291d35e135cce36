// Package requestid tags HTTP requests with a correlation id.
//
// Middleware reuses a well formed X-Request-ID sent by the client or generates
// a UUIDv4, stores it in the request context and echoes it in the response.
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with the request context carries request_id.
package requestid
