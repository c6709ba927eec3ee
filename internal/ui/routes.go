package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Post("/select/{id}", h.Select)
	r.Post("/back", h.Back)
	r.Post("/quiz/generate", h.GenerateProblem)
	r.Post("/quiz/submit", h.SubmitAnswer)
	return r
}
