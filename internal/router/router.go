package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/netconv/internal/bintodec"
	_ "github.com/saulo-duarte/netconv/internal/docs"
	"github.com/saulo-duarte/netconv/internal/middlewares"
	"github.com/saulo-duarte/netconv/internal/ui"
)

type RouterConfig struct {
	BinToDecHandler *bintodec.Handler
	UIHandler       *ui.Handler
	CORSOrigins     []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, ui.BasePath+"/", http.StatusFound)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))
		r.Mount("/", bintodec.Routes(cfg.BinToDecHandler))
	})

	if cfg.UIHandler != nil {
		r.Mount(ui.BasePath, ui.Routes(cfg.UIHandler))
	}
	return r
}
