package ui

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/netconv/internal/config"
	"github.com/saulo-duarte/netconv/internal/session"
)

const cookieName = "netconv_session"

// SessionTokens issues and verifies the session cookie value.
type SessionTokens interface {
	Issue(sessionID string) (string, error)
	Parse(token string) (string, error)
	TTL() time.Duration
}

type Handler struct {
	sessions *session.Store[*Shell]
	tokens   SessionTokens
}

func NewHandler(sessions *session.Store[*Shell], tokens SessionTokens) *Handler {
	return &Handler{sessions: sessions, tokens: tokens}
}

// NewShellFactory builds menu shells whose quiz talks to api.
func NewShellFactory(api QuizAPI) func() *Shell {
	return func() *Shell {
		return NewShell(Options, map[int]ExerciseFactory{
			BinaryToDecimalID: func() Exercise { return NewQuiz(api) },
		})
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	shell := h.shell(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderPage(w, shell); err != nil {
		log.WithError(err).Error("Erro ao renderizar página")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid option id", http.StatusBadRequest)
		return
	}

	shell := h.shell(w, r)
	if err := shell.Select(r.Context(), id); err != nil {
		if errors.Is(err, ErrUnknownOption) {
			http.Error(w, "unknown option", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.redirectHome(w, r)
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.shell(w, r).Back()
	h.redirectHome(w, r)
}

func (h *Handler) GenerateProblem(w http.ResponseWriter, r *http.Request) {
	if quiz, ok := h.shell(w, r).Active().(*Quiz); ok {
		quiz.GenerateProblem(r.Context())
	}
	h.redirectHome(w, r)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if quiz, ok := h.shell(w, r).Active().(*Quiz); ok {
		quiz.Submit(r.Context(), r.PostFormValue("guess"))
	}
	h.redirectHome(w, r)
}

func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, BasePath+"/", http.StatusSeeOther)
}

// shell resolves the caller's session, starting a new one when the
// cookie is missing or no longer valid.
func (h *Handler) shell(w http.ResponseWriter, r *http.Request) *Shell {
	if c, err := r.Cookie(cookieName); err == nil {
		if id, err := h.tokens.Parse(c.Value); err == nil {
			return h.sessions.GetOrCreate(id)
		}
	}

	id := uuid.NewString()
	token, err := h.tokens.Issue(id)
	if err != nil {
		// No cookie will carry id, so the shell lives for this request only.
		config.WithContext(r.Context()).WithError(err).Error("Erro ao emitir token de sessão")
		return h.sessions.New()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     BasePath,
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return h.sessions.GetOrCreate(id)
}
