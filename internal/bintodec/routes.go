package bintodec

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/bin-to-dec", h.GenerateProblem)
	r.Post("/check-answer", h.CheckAnswer)
	r.Get("/attempts", h.ListAttempts)
	return r
}
