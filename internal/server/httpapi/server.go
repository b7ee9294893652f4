// Package httpapi serves the SmartFridge JSON API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/logging"
	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/dmitrijs2005/smartfridge/internal/server/metrics"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
)

// UserService is the account and session logic the handlers depend on.
type UserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (auth.Claims, error)
	Logout(ctx context.Context, claims auth.Claims) error
}

type SettingsService interface {
	Get(ctx context.Context, userID string) (*models.Settings, error)
	Save(ctx context.Context, s *models.Settings) error
}

// Options tweak server behaviour beyond the required dependencies.
type Options struct {
	DevCORS         bool
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    UserService
	settings SettingsService
	metrics  *metrics.Metrics
	opts     Options
}

func NewHTTPServer(addr string, l logging.Logger, us UserService, ss SettingsService, m *metrics.Metrics, opts Options) *HTTPServer {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return &HTTPServer{
		address:  addr,
		logger:   l.With("module", "http_server"),
		users:    us,
		settings: ss,
		metrics:  m,
		opts:     opts,
	}
}

// Run listens on the configured address and serves until ctx is cancelled,
// then drains in-flight requests for at most ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
