package ui

import (
	"time"

	"github.com/saulo-duarte/netconv/internal/session"
)

type Container struct {
	Handler  *Handler
	Sessions *session.Store[*Shell]
}

func NewContainer(api QuizAPI, tokens *session.Manager) *Container {
	sessions := session.NewStore(NewShellFactory(api), tokens.TTL(), func(s *Shell) {
		s.Back()
	})

	return &Container{
		Handler:  NewHandler(sessions, tokens),
		Sessions: sessions,
	}
}

const SweepInterval = 5 * time.Minute
