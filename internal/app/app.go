package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amaumene/sheetsignup/internal/clients"
	"github.com/amaumene/sheetsignup/internal/config"
	"github.com/amaumene/sheetsignup/internal/handler"
	"github.com/amaumene/sheetsignup/internal/render"
	"github.com/amaumene/sheetsignup/internal/service"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout   = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type App struct {
	cfg    *config.Config
	server *http.Server
	stdout io.Writer
}

func New(cfg *config.Config) (*App, error) {
	landing, err := render.NewLanding()
	if err != nil {
		return nil, fmt.Errorf("loading landing template: %w", err)
	}

	sheet := clients.NewSheetClient(cfg.ForwardURL, cfg.ForwardTimeout)
	signups := service.NewSignupService(sheet)
	httpHandler := handler.NewHTTPHandler(landing, signups, time.Now)

	return &App{
		cfg: cfg,
		server: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           httpHandler.Routes(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		stdout: os.Stdout,
	}, nil
}

// Run binds the listener, announces it on stdout and serves until ctx is
// cancelled or the process receives SIGINT or SIGTERM. A bind failure is
// returned before anything is announced.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", a.cfg.ListenAddr, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(a.stdout, "Listening on http://%s\n", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
		log.WithField("reason", context.Cause(ctx)).Info("initiating graceful shutdown")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
