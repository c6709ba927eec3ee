package bintodec

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	BitWidth = 8
	MaxValue = 1<<BitWidth - 1
)

var (
	ErrInvalidBinary = errors.New("binary must be exactly 8 characters of 0 or 1")
	ErrOutOfRange    = errors.New("value out of range [0,255]")
)

// PlaceValues holds the weight of each bit, most significant first.
var PlaceValues = [BitWidth]int{128, 64, 32, 16, 8, 4, 2, 1}

func Encode(n int) (string, error) {
	if n < 0 || n > MaxValue {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return fmt.Sprintf("%08b", n), nil
}

func Decode(b string) (int, error) {
	if len(b) != BitWidth {
		return 0, ErrInvalidBinary
	}
	n := 0
	for i := 0; i < BitWidth; i++ {
		switch b[i] {
		case '0':
		case '1':
			n += PlaceValues[i]
		default:
			return 0, ErrInvalidBinary
		}
	}
	return n, nil
}

type Generator interface {
	Next() int
}

type randomGenerator struct{}

func NewRandomGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) Next() int {
	return rand.IntN(MaxValue + 1)
}

// NewProblem builds a problem from a value in [0,255].
func NewProblem(n int) (*Problem, error) {
	b, err := Encode(n)
	if err != nil {
		return nil, err
	}
	return &Problem{RandomBinary: b, RandomDecimal: n}, nil
}
