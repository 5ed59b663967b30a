package app

import (
	"log/slog"

	"railplan.interrail.org/internal/schedule"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the resolved configuration, the structured logger, and
// the immutable schedule snapshot queries run against.
type Application struct {
	Config   Config
	Logger   *slog.Logger
	Schedule *schedule.Manager
}

// Config holds the runtime settings for the Application after flags and
// the optional config file have been merged.
type Config struct {
	Port      int
	Env       string
	RateLimit int

	GraphPath    string
	RegistryPath string

	MaxTransfers  int
	WindowMinutes int
}

// DataLoaded reports whether the schedule snapshot is available. The
// health endpoint surfaces this.
func (app *Application) DataLoaded() bool {
	return app.Schedule != nil
}
