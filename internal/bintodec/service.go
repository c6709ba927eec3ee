package bintodec

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/netconv/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrInvalidGuess = errors.New("user guess must be a base-10 integer")

const (
	DefaultAttemptLimit = 50
	MaxAttemptLimit     = 500
)

type Service interface {
	GenerateProblem(ctx context.Context) (*Problem, error)
	CheckAnswer(ctx context.Context, req CheckAnswerRequest) (*CheckAnswerResult, error)
	ListAttempts(ctx context.Context, limit int) ([]*Attempt, error)
}

type service struct {
	repo AttemptRepository
	gen  Generator
}

func NewService(repo AttemptRepository, gen Generator) Service {
	return &service{
		repo: repo,
		gen:  gen,
	}
}

func (s *service) GenerateProblem(ctx context.Context) (*Problem, error) {
	log := config.WithContext(ctx)

	p, err := NewProblem(s.gen.Next())
	if err != nil {
		log.WithError(err).Error("Gerador produziu um valor inválido")
		return nil, err
	}

	log.WithField("random_binary", p.RandomBinary).Debug("Problema gerado")
	return p, nil
}

func (s *service) CheckAnswer(ctx context.Context, req CheckAnswerRequest) (*CheckAnswerResult, error) {
	log := config.WithContext(ctx).WithField("random_binary", req.RandomBinary)

	correct, err := Decode(req.RandomBinary)
	if err != nil {
		log.WithError(err).Warn("Verificação rejeitada: binário inválido")
		return nil, err
	}

	guess, err := strconv.Atoi(strings.TrimSpace(req.UserGuess))
	if err != nil {
		log.WithField("user_guess", req.UserGuess).Warn("Verificação rejeitada: palpite não numérico")
		return nil, ErrInvalidGuess
	}

	if req.CorrectDecimal != correct {
		log.WithFields(logrus.Fields{
			"client_decimal": req.CorrectDecimal,
			"server_decimal": correct,
		}).Warn("Decimal do cliente diverge do valor recalculado")
	}

	verdict := VerdictIncorrect
	if guess == correct {
		verdict = VerdictCorrect
	}

	attempt := &Attempt{
		ID:            uuid.New(),
		RandomBinary:  req.RandomBinary,
		RandomDecimal: correct,
		UserGuess:     req.UserGuess,
		Result:        verdict,
	}
	if err := s.repo.Create(attempt); err != nil {
		log.WithError(err).Error("Erro ao registrar tentativa")
	}

	log.WithField("result", verdict).Info("Resposta verificada")
	return &CheckAnswerResult{
		Result:         verdict,
		CorrectDecimal: correct,
	}, nil
}

func (s *service) ListAttempts(ctx context.Context, limit int) ([]*Attempt, error) {
	log := config.WithContext(ctx)

	if limit <= 0 {
		limit = DefaultAttemptLimit
	}
	if limit > MaxAttemptLimit {
		limit = MaxAttemptLimit
	}

	attempts, err := s.repo.ListRecent(limit)
	if err != nil {
		log.WithError(err).Error("Erro ao listar tentativas")
		return nil, err
	}
	return attempts, nil
}
