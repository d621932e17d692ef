// Package log provides ulidd's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the standard
// library slog via a handler that feeds our Formatter and Output pipeline, so
// output stays consistent whether a record comes from the facade or from a
// library writing to the std log package.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("server"))
//	l.Info("server started", log.Str("grpc", ":50051"))
//
// # Configuration
//
// ApplyConfig builds a logger from a declarative Config (level and text/json
// format). RedirectStdLog routes the std log package through a Logger and
// ToStdLogger hands one to APIs such as http.Server.ErrorLog.
package log
