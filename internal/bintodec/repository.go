package bintodec

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"sync"

	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(a *Attempt) error
	ListRecent(limit int) ([]*Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) ListRecent(limit int) ([]*Attempt, error) {
	var attempts []*Attempt
	if err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

var csvHeader = []string{"Random Binary", "Random Decimal", "User Guess", "Result"}

// csvRepository appends attempts to a CSV file. It keeps no index, so
// ListRecent always returns an empty list.
type csvRepository struct {
	mu   sync.Mutex
	path string
}

func NewCSVRepository(path string) AttemptRepository {
	return &csvRepository{path: path}
}

func (r *csvRepository) Create(a *Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, statErr := os.Stat(r.path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		a.RandomBinary,
		strconv.Itoa(a.RandomDecimal),
		a.UserGuess,
		string(a.Result),
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (r *csvRepository) ListRecent(int) ([]*Attempt, error) {
	return []*Attempt{}, nil
}

type noopRepository struct{}

func NewNoopRepository() AttemptRepository {
	return noopRepository{}
}

func (noopRepository) Create(*Attempt) error { return nil }

func (noopRepository) ListRecent(int) ([]*Attempt, error) {
	return []*Attempt{}, nil
}
