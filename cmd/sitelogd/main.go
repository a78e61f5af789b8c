// Package main is the entry point for the sitelogd daemon.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samueldoiron-bot/sitelog/internal/buildinfo"
	"github.com/samueldoiron-bot/sitelog/internal/config"
	"github.com/samueldoiron-bot/sitelog/internal/daemon/server"
	"github.com/samueldoiron-bot/sitelog/internal/daemon/watcher"
	"github.com/samueldoiron-bot/sitelog/internal/models"
	"github.com/samueldoiron-bot/sitelog/internal/updater"
)

func main() {
	port := flag.Int("port", -1, "Port to listen on (0 for dynamic allocation, -1 to use settings)")
	flag.Parse()

	logger := logrus.New()

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		logger.WithError(err).Fatal("failed to create global directory")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		logger.WithError(err).Fatal("failed to load settings")
	}
	applyLogging(logger, settings)

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		logger.WithError(err).Fatal("failed to check daemon status")
	}
	if running {
		logger.WithFields(logrus.Fields{
			"port": info.Port,
			"pid":  info.PID,
		}).Fatal("daemon already running")
	}

	listenPort := settings.Server.Port
	if *port >= 0 {
		listenPort = *port
	}

	srv, err := server.New(settings.Server.Host, listenPort, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create server")
	}

	daemonInfo := models.NewDaemonInfo(settings.Server.Host, srv.Port(), os.Getpid())
	if err := config.SaveDaemonInfo(daemonInfo); err != nil {
		logger.WithError(err).Fatal("failed to write daemon info")
	}

	logger.WithFields(logrus.Fields{
		"version": buildinfo.Version,
		"port":    srv.Port(),
		"pid":     os.Getpid(),
	}).Info("daemon started")

	// Hot-reload logging settings on settings.yaml changes
	w, err := watcher.New(logger)
	if err != nil {
		logger.WithError(err).Warn("settings watcher unavailable")
	} else if err := w.Start(); err != nil {
		logger.WithError(err).Warn("failed to start settings watcher")
		w = nil
	} else {
		go watchSettings(w, srv, logger)
	}

	if settings.Updates.CheckOnStartup {
		go checkForUpdates(logger, settings)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case err := <-errCh:
		logger.WithError(err).Error("server error")
	}

	srv.Stop()
	if w != nil {
		w.Stop()
	}

	if err := config.RemoveDaemonInfo(); err != nil {
		logger.WithError(err).Warn("failed to remove daemon info")
	}

	logger.Info("daemon stopped")
}

// applyLogging configures level and format from settings.
func applyLogging(logger *logrus.Logger, settings *models.Settings) {
	level, err := logrus.ParseLevel(settings.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if settings.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// watchSettings re-applies the log level when settings.yaml changes.
func watchSettings(w *watcher.Watcher, srv *server.Server, logger *logrus.Logger) {
	for range w.Events() {
		settings, err := config.LoadSettings()
		if err != nil {
			logger.WithError(err).Warn("failed to reload settings")
			continue
		}
		srv.SetLogLevel(settings.Logging.Level)
	}
}

// checkForUpdates runs a startup update check when one is due.
func checkForUpdates(logger *logrus.Logger, settings *models.Settings) {
	if !updater.ShouldCheck(settings, time.Now()) {
		return
	}

	result, err := updater.CheckForUpdate()
	if err != nil {
		logger.WithError(err).Debug("update check failed")
		return
	}

	if result.Available {
		logger.WithFields(logrus.Fields{
			"current": result.CurrentVersion,
			"latest":  result.LatestVersion,
			"url":     result.ReleaseURL,
		}).Info("update available")
	}

	now := time.Now().UTC()
	settings.Updates.LastChecked = &now
	if err := config.SaveSettings(settings); err != nil {
		logger.WithError(err).Debug("failed to record update check time")
	}
}
