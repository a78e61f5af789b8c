// Package server implements the daemon's HTTP API.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samueldoiron-bot/sitelog/internal/summarize"
)

// Server is the daemon's HTTP server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	host       string
	port       int
	logger     *logrus.Logger
	summarizer summarize.Summarizer
}

// New creates a new server listening on host:port.
// Pass port 0 for dynamic allocation.
func New(host string, port int, logger *logrus.Logger) (*Server, error) {
	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	// Get actual port if dynamically allocated
	actualPort := listener.Addr().(*net.TCPAddr).Port

	srv := &Server{
		listener:   listener,
		host:       host,
		port:       actualPort,
		logger:     logger,
		summarizer: summarize.NewPatternSummarizer(),
	}

	srv.httpServer = &http.Server{
		Handler:           srv.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv, nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	err := s.httpServer.Serve(s.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully stops the server, draining in-flight requests.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Warn("graceful shutdown failed, closing")
		_ = s.httpServer.Close()
	}
}

// SetLogLevel re-applies the log level; used by the settings watcher.
func (s *Server) SetLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		s.logger.WithField("level", level).Warn("ignoring invalid log level")
		return
	}
	s.logger.SetLevel(parsed)
	s.logger.WithField("level", level).Info("log level updated")
}
