// Package formhttp exposes page validation over HTTP.
//
// Bind turns urlencoded, multipart or JSON submissions into a
// gdsvalidation.Payload. Handler serves a schema with chi:
//
//	h := formhttp.New(engine, schema, formhttp.WithLogger(log), formhttp.WithService(cfg))
//	srv := httpserver.FromService(cfg)
//	err := srv.Run(ctx, h.Router())
//
// Every JSON response is an Envelope carrying the request id and the
// negotiated message language in meta.
package formhttp
