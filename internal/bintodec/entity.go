package bintodec

import (
	"time"

	"github.com/google/uuid"
)

type Problem struct {
	RandomBinary  string `json:"random_binary"`
	RandomDecimal int    `json:"random_decimal"`
}

type CheckAnswerRequest struct {
	UserGuess      string `json:"userGuess"`
	CorrectDecimal int    `json:"correctDecimal"`
	RandomBinary   string `json:"randomBinary"`
}

type CheckAnswerResult struct {
	Result         Verdict `json:"result"`
	CorrectDecimal int     `json:"correctDecimal"`
}

type Attempt struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RandomBinary  string    `gorm:"type:char(8);not null" json:"random_binary"`
	RandomDecimal int       `gorm:"not null" json:"random_decimal"`
	UserGuess     string    `gorm:"type:text;not null" json:"user_guess"`
	Result        Verdict   `gorm:"type:varchar(16);not null;index" json:"result"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
