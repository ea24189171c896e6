package game

import (
	"strings"

	"github.com/myrjola/whodunit/internal/models"
)

// Judge scores suspect guesses against the active case. It never mutates the
// session, so the mystery can be solved any number of times.
type Judge struct {
	session *Session
}

func NewJudge(session *Session) *Judge {
	return &Judge{session: session}
}

// Judge compares the guess case-insensitively with the stored suspect name.
// The truth is revealed only on a correct guess so a wrong answer keeps the
// mystery intact.
func (j *Judge) Judge(guessedName string) (models.GuessResult, error) {
	kase, err := j.session.Case()
	if err != nil {
		return models.GuessResult{}, err
	}

	correct := strings.EqualFold(guessedName, kase.Suspect)
	result := models.GuessResult{
		Correct:       correct,
		Guessed:       guessedName,
		ActualSuspect: kase.Suspect,
	}
	if correct {
		truth := kase.Truth
		result.Truth = &truth
	}
	return result, nil
}
