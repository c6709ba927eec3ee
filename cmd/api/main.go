package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/netconv/internal/config"
	"github.com/saulo-duarte/netconv/internal/container"
	"github.com/saulo-duarte/netconv/internal/ui"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Erro ao montar o container")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           c.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	config.Logger.WithField("addr", cfg.HTTPAddr).Info("Servidor iniciando")
	config.Logger.Infof("Interface web disponível em %s%s/", cfg.APIBaseURL, ui.BasePath)
	if err := c.Serve(ctx, srv); err != nil {
		config.Logger.WithError(err).Error("Servidor parou com erro")
		os.Exit(1)
	}
	config.Logger.Info("Servidor parado")
}
