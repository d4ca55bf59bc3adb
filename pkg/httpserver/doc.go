// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run listens on the configured address, serves until the context is
// cancelled or the process receives SIGINT/SIGTERM, then calls
// http.Server.Shutdown with ShutdownTimeout as the deadline.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Failures are wrapped with ErrStart and ErrShutdown so they can be inspected
// with errors.Is.
package httpserver
