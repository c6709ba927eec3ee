package bintodec_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/netconv/internal/bintodec"
	"github.com/saulo-duarte/netconv/internal/config"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

type fixedGenerator struct{ n int }

func (g fixedGenerator) Next() int { return g.n }

type memoryRepository struct {
	attempts []*bintodec.Attempt
	err      error
}

func (r *memoryRepository) Create(a *bintodec.Attempt) error {
	if r.err != nil {
		return r.err
	}
	r.attempts = append(r.attempts, a)
	return nil
}

func (r *memoryRepository) ListRecent(limit int) ([]*bintodec.Attempt, error) {
	if limit > len(r.attempts) {
		limit = len(r.attempts)
	}
	return r.attempts[:limit], nil
}

func TestGenerateProblem(t *testing.T) {
	svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{n: 10})

	p, err := svc.GenerateProblem(context.Background())
	if err != nil {
		t.Fatalf("GenerateProblem falhou: %v", err)
	}
	if p.RandomBinary != "00001010" || p.RandomDecimal != 10 {
		t.Errorf("Problema inesperado: %+v", p)
	}
}

func TestGenerateProblemInvalidGenerator(t *testing.T) {
	svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{n: 300})

	if _, err := svc.GenerateProblem(context.Background()); !errors.Is(err, bintodec.ErrOutOfRange) {
		t.Errorf("Esperado ErrOutOfRange, recebido %v", err)
	}
}

func TestCheckAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("Correct", func(t *testing.T) {
		repo := &memoryRepository{}
		svc := bintodec.NewService(repo, fixedGenerator{})

		res, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{
			UserGuess:      "10",
			CorrectDecimal: 10,
			RandomBinary:   "00001010",
		})
		if err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
		if res.Result != bintodec.VerdictCorrect || res.CorrectDecimal != 10 {
			t.Errorf("Resultado inesperado: %+v", res)
		}
		if len(repo.attempts) != 1 || repo.attempts[0].Result != bintodec.VerdictCorrect {
			t.Errorf("Tentativa não registrada corretamente: %+v", repo.attempts)
		}
	})

	t.Run("Incorrect", func(t *testing.T) {
		svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{})

		res, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{
			UserGuess:      "5",
			CorrectDecimal: 10,
			RandomBinary:   "00001010",
		})
		if err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
		if res.Result != bintodec.VerdictIncorrect || res.CorrectDecimal != 10 {
			t.Errorf("Resultado inesperado: %+v", res)
		}
	})

	t.Run("ServerRecomputesDecimal", func(t *testing.T) {
		svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{})

		res, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{
			UserGuess:      "99",
			CorrectDecimal: 99,
			RandomBinary:   "11111111",
		})
		if err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
		if res.Result != bintodec.VerdictIncorrect || res.CorrectDecimal != 255 {
			t.Errorf("Resultado inesperado: %+v", res)
		}
	})

	t.Run("GuessWithSpaces", func(t *testing.T) {
		svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{})

		res, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{
			UserGuess:    " 0 ",
			RandomBinary: "00000000",
		})
		if err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
		if res.Result != bintodec.VerdictCorrect {
			t.Errorf("Esperado Correct, recebido %s", res.Result)
		}
	})

	t.Run("InvalidBinary", func(t *testing.T) {
		svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{})

		_, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{UserGuess: "1", RandomBinary: "101"})
		if !errors.Is(err, bintodec.ErrInvalidBinary) {
			t.Errorf("Esperado ErrInvalidBinary, recebido %v", err)
		}
	})

	t.Run("InvalidGuess", func(t *testing.T) {
		svc := bintodec.NewService(&memoryRepository{}, fixedGenerator{})

		_, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{UserGuess: "dez", RandomBinary: "00001010"})
		if !errors.Is(err, bintodec.ErrInvalidGuess) {
			t.Errorf("Esperado ErrInvalidGuess, recebido %v", err)
		}
	})

	t.Run("RecordFailureDoesNotChangeResult", func(t *testing.T) {
		repo := &memoryRepository{err: errors.New("disk full")}
		svc := bintodec.NewService(repo, fixedGenerator{})

		res, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{UserGuess: "10", RandomBinary: "00001010"})
		if err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
		if res.Result != bintodec.VerdictCorrect {
			t.Errorf("Esperado Correct, recebido %s", res.Result)
		}

		hook := logtest.NewLocal(config.Logger)
		defer hook.Reset()
		if _, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{UserGuess: "10", RandomBinary: "00001010"}); err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
		var logged bool
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.ErrorLevel && e.Message == "Erro ao registrar tentativa" {
				logged = true
			}
		}
		if !logged {
			t.Error("Falha ao registrar tentativa deveria ser logada")
		}
	})
}

func TestListAttemptsLimit(t *testing.T) {
	repo := &memoryRepository{}
	svc := bintodec.NewService(repo, fixedGenerator{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{UserGuess: "1", RandomBinary: "00000001"}); err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
	}

	got, err := svc.ListAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("ListAttempts falhou: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Esperado 2 tentativas, recebido %d", len(got))
	}

	got, err = svc.ListAttempts(ctx, 0)
	if err != nil {
		t.Fatalf("ListAttempts falhou: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Esperado 3 tentativas com limite padrão, recebido %d", len(got))
	}
}

func TestCSVRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decimal_guess.csv")
	svc := bintodec.NewService(bintodec.NewCSVRepository(path), fixedGenerator{})
	ctx := context.Background()

	for _, guess := range []string{"10", "5"} {
		if _, err := svc.CheckAnswer(ctx, bintodec.CheckAnswerRequest{UserGuess: guess, RandomBinary: "00001010"}); err != nil {
			t.Fatalf("CheckAnswer falhou: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Arquivo CSV não criado: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("CSV inválido: %v", err)
	}

	want := [][]string{
		{"Random Binary", "Random Decimal", "User Guess", "Result"},
		{"00001010", "10", "10", "Correct"},
		{"00001010", "10", "5", "Incorrect"},
	}
	if len(rows) != len(want) {
		t.Fatalf("Esperado %d linhas, recebido %d: %v", len(want), len(rows), rows)
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("Linha %d coluna %d = %q, esperado %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}
