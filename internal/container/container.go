package container

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/netconv/internal/bintodec"
	"github.com/saulo-duarte/netconv/internal/client"
	"github.com/saulo-duarte/netconv/internal/config"
	"github.com/saulo-duarte/netconv/internal/router"
	"github.com/saulo-duarte/netconv/internal/session"
	"github.com/saulo-duarte/netconv/internal/ui"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type Container struct {
	Config            config.Config
	BinToDecContainer *bintodec.Container
	UIContainer       *ui.Container
	Router            *chi.Mux
}

func New(ctx context.Context, cfg config.Config) (*Container, error) {
	log := config.WithContext(ctx)

	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
			return nil, err
		}
		if err := config.DB.AutoMigrate(&bintodec.Attempt{}); err != nil {
			return nil, err
		}
		db = config.DB
	} else if cfg.AttemptLogPath != "" {
		log.WithField("path", cfg.AttemptLogPath).Info("Registrando tentativas em CSV")
	} else {
		log.Info("Nenhum armazenamento de tentativas configurado, tentativas não serão registradas")
	}

	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET não definido, sessões não sobreviverão a um reinício")
	}
	tokens, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	binToDecContainer := bintodec.NewContainer(db, cfg.AttemptLogPath)
	api := client.New(cfg.APIBaseURL, cfg.APITimeout)
	uiContainer := ui.NewContainer(api, tokens)

	r := router.New(router.RouterConfig{
		BinToDecHandler: binToDecContainer.Handler,
		UIHandler:       uiContainer.Handler,
		CORSOrigins:     cfg.CORSOrigins,
	})

	return &Container{
		Config:            cfg,
		BinToDecContainer: binToDecContainer,
		UIContainer:       uiContainer,
		Router:            r,
	}, nil
}

// Serve runs the HTTP server until ctx is done, then shuts it down.
func (c *Container) Serve(ctx context.Context, srv *http.Server) error {
	go c.UIContainer.Sessions.RunSweeper(ctx, ui.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
