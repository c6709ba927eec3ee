package bintodec

type Verdict string

const (
	VerdictCorrect   Verdict = "Correct"
	VerdictIncorrect Verdict = "Incorrect"
)

func (v Verdict) IsValid() bool {
	return v == VerdictCorrect || v == VerdictIncorrect
}
