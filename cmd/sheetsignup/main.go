package main

import (
	"context"
	"os"

	"github.com/amaumene/sheetsignup/internal/app"
	"github.com/amaumene/sheetsignup/internal/config"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	log.SetLevel(cfg.LogLevel)

	a, err := app.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	if err := a.Run(context.Background()); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
