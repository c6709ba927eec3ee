package bintodec

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/netconv/internal/config"
)

const maxCheckAnswerBody = 1 << 12

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateProblem(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	p, err := h.service.GenerateProblem(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao gerar problema")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req CheckAnswerRequest
	body := http.MaxBytesReader(w, r.Body, maxCheckAnswerBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para verificação de resposta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CheckAnswer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBinary):
			http.Error(w, "invalid randomBinary", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidGuess):
			http.Error(w, "invalid userGuess", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Erro ao verificar resposta")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	attempts, err := h.service.ListAttempts(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}
