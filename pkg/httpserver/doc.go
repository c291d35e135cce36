// Package httpserver runs the validation HTTP API with graceful shutdown.
//
// Run blocks until its context is cancelled or the process receives SIGINT or
// SIGTERM, then calls http.Server.Shutdown bounded by the shutdown timeout:
//
//	srv := httpserver.FromService(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness (no checks) and readiness (all checks
// must pass) probes.
package httpserver
