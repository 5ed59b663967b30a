package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"log/slog"

	"railplan.interrail.org/internal/app"
	"railplan.interrail.org/internal/config"
	"railplan.interrail.org/internal/logging"
	"railplan.interrail.org/internal/restapi"
	"railplan.interrail.org/internal/schedule"
)

func main() {
	var configPath string
	var cfg app.Config

	flag.StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Requests per second allowed per client (0 disables limiting)")
	flag.StringVar(&cfg.GraphPath, "graph", "fast_graph.json", "Path to the schedule graph JSON artifact")
	flag.StringVar(&cfg.RegistryPath, "registry", "schedule_with_directionality.json", "Path to the train registry JSON artifact")
	flag.IntVar(&cfg.MaxTransfers, "max-transfers", 2, "Default transfer bound for searches (0-2)")
	flag.IntVar(&cfg.WindowMinutes, "window", 120, "Default duration window in minutes around the fastest itinerary")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("failed to load config file", "error", err, "path", configPath)
			os.Exit(1)
		}
		mergeConfig(&cfg, fileCfg)
	}

	manager, err := schedule.InitManager(cfg.GraphPath, cfg.RegistryPath)
	if err != nil {
		logger.Error("failed to load schedule data", "error", err)
		os.Exit(1)
	}
	manager.LogStatistics(logger)

	application := &app.Application{
		Config:   cfg,
		Logger:   logger,
		Schedule: manager,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

// mergeConfig overlays values from the config file onto the flag values.
// Flags that were set explicitly on the command line win.
func mergeConfig(cfg *app.Config, fileCfg config.AppConfig) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["port"] {
		cfg.Port = fileCfg.Server.Port
	}
	if !set["env"] {
		cfg.Env = fileCfg.Server.Env
	}
	if !set["rate-limit"] {
		cfg.RateLimit = fileCfg.Server.RateLimit
	}
	if !set["graph"] {
		cfg.GraphPath = fileCfg.Data.GraphPath
	}
	if !set["registry"] {
		cfg.RegistryPath = fileCfg.Data.RegistryPath
	}
	if !set["max-transfers"] {
		cfg.MaxTransfers = fileCfg.Search.MaxTransfers
	}
	if !set["window"] {
		cfg.WindowMinutes = fileCfg.Search.WindowMinutes
	}
}
