package ui

import (
	"context"
	"io"
	"sync"

	"github.com/saulo-duarte/netconv/internal/config"
)

type Exercise interface {
	Mount(ctx context.Context)
	Unmount()
	Render(w io.Writer) error
}

type ExerciseFactory func() Exercise

// Shell owns the menu selection of one browser session.
type Shell struct {
	mu        sync.Mutex
	options   []Option
	factories map[int]ExerciseFactory
	selection Selection
	active    Exercise
}

func NewShell(options []Option, factories map[int]ExerciseFactory) *Shell {
	return &Shell{
		options:   options,
		factories: factories,
		selection: NoSelection(),
	}
}

// Select mounts the exercise for id. Mounting runs outside the lock so
// a slow first fetch does not block Back or Render.
func (s *Shell) Select(ctx context.Context, id int) error {
	factory, ok := s.factories[id]
	if !ok || !s.hasOption(id) {
		config.WithContext(ctx).WithField("option_id", id).Warn("Opção de exercício desconhecida selecionada")
		return ErrUnknownOption
	}

	ex := factory()

	s.mu.Lock()
	prev := s.active
	s.selection = Selected(id)
	s.active = ex
	s.mu.Unlock()

	if prev != nil {
		prev.Unmount()
	}
	ex.Mount(ctx)
	return nil
}

func (s *Shell) Back() {
	s.mu.Lock()
	prev := s.active
	s.selection = NoSelection()
	s.active = nil
	s.mu.Unlock()

	if prev != nil {
		prev.Unmount()
	}
}

func (s *Shell) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

func (s *Shell) Active() Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Shell) Render(w io.Writer) error {
	s.mu.Lock()
	selection, active := s.selection, s.active
	s.mu.Unlock()

	if selection.IsNone() || active == nil {
		return templates.ExecuteTemplate(w, "menu", menuView{Options: s.options, SelectPath: selectPath})
	}

	if err := active.Render(w); err != nil {
		return err
	}
	return templates.ExecuteTemplate(w, "back", backPath)
}

func (s *Shell) hasOption(id int) bool {
	for _, o := range s.options {
		if o.ID == id {
			return true
		}
	}
	return false
}
