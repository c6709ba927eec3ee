package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/saulo-duarte/netconv/internal/bintodec"
	"github.com/saulo-duarte/netconv/internal/config"
)

const FeedbackCorrect = "Correct! Well done!"

type ProblemSource interface {
	FetchProblem(ctx context.Context) (*bintodec.Problem, error)
}

type AnswerChecker interface {
	CheckAnswer(ctx context.Context, req bintodec.CheckAnswerRequest) (*bintodec.CheckAnswerResult, error)
}

type QuizAPI interface {
	ProblemSource
	AnswerChecker
}

type QuizState struct {
	Problem   *bintodec.Problem
	UserGuess string
	Feedback  string
}

// Quiz holds the state of one mounted Binary to Decimal exercise.
// Each call takes a generation token; a completion whose token is no
// longer current is dropped.
type Quiz struct {
	api QuizAPI

	mu         sync.Mutex
	state      QuizState
	problemGen uint64
	submitGen  uint64
	unmounted  bool

	life   context.Context
	cancel context.CancelFunc
}

func NewQuiz(api QuizAPI) *Quiz {
	life, cancel := context.WithCancel(context.Background())
	return &Quiz{
		api:    api,
		life:   life,
		cancel: cancel,
	}
}

func (q *Quiz) Mount(ctx context.Context) {
	q.GenerateProblem(ctx)
}

func (q *Quiz) Unmount() {
	q.mu.Lock()
	q.unmounted = true
	q.problemGen++
	q.submitGen++
	q.state = QuizState{}
	q.mu.Unlock()

	q.cancel()
}

func (q *Quiz) GenerateProblem(ctx context.Context) {
	log := config.WithContext(ctx)

	q.mu.Lock()
	if q.unmounted {
		q.mu.Unlock()
		return
	}
	q.problemGen++
	token := q.problemGen
	q.mu.Unlock()

	callCtx, stop := q.bind(ctx)
	defer stop()

	p, err := q.api.FetchProblem(callCtx)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar problema")
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.unmounted || token != q.problemGen {
		log.Debug("Descartando problema obsoleto")
		return
	}
	// Checks in flight refer to the replaced problem.
	q.submitGen++
	q.state = QuizState{Problem: p}
}

func (q *Quiz) SetGuess(guess string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.unmounted {
		return
	}
	q.state.UserGuess = guess
}

func (q *Quiz) Submit(ctx context.Context, guess string) {
	log := config.WithContext(ctx)

	q.mu.Lock()
	if q.unmounted {
		q.mu.Unlock()
		return
	}
	if q.state.Problem == nil {
		q.mu.Unlock()
		log.Warn("Resposta enviada antes de um problema ser carregado")
		return
	}
	q.state.UserGuess = guess
	q.submitGen++
	token := q.submitGen
	p := *q.state.Problem
	q.mu.Unlock()

	callCtx, stop := q.bind(ctx)
	defer stop()

	res, err := q.api.CheckAnswer(callCtx, bintodec.CheckAnswerRequest{
		UserGuess:      guess,
		CorrectDecimal: p.RandomDecimal,
		RandomBinary:   p.RandomBinary,
	})
	if err != nil {
		log.WithError(err).Error("Erro ao verificar resposta")
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.unmounted || token != q.submitGen {
		log.Debug("Descartando verificação de resposta obsoleta")
		return
	}
	q.state.Feedback = FeedbackFor(res)
}

func (q *Quiz) State() QuizState {
	q.mu.Lock()
	defer q.mu.Unlock()
	s := q.state
	if s.Problem != nil {
		p := *s.Problem
		s.Problem = &p
	}
	return s
}

func (q *Quiz) Render(w io.Writer) error {
	s := q.State()
	view := quizView{
		QuizState:    s,
		SubmitPath:   submitPath,
		GeneratePath: generatePath,
	}
	if s.Problem != nil {
		t, err := BitTable(s.Problem.RandomBinary)
		if err != nil {
			config.Logger.WithError(err).Warn("Tabela de bits omitida para problema malformado")
		} else {
			view.Table = &t
		}
	}
	return templates.ExecuteTemplate(w, "quiz", view)
}

// FeedbackFor turns a check result into the line shown under the form.
// The decimal comes from the server, never from the local problem.
func FeedbackFor(res *bintodec.CheckAnswerResult) string {
	if res.Result == bintodec.VerdictCorrect {
		return FeedbackCorrect
	}
	return fmt.Sprintf("Incorrect. The correct decimal is %d", res.CorrectDecimal)
}

// bind ties ctx to the quiz lifetime so Unmount cancels calls in flight.
func (q *Quiz) bind(ctx context.Context) (context.Context, func()) {
	callCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(q.life, cancel)
	return callCtx, func() {
		stop()
		cancel()
	}
}
