package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudge_notReady(t *testing.T) {
	judge := NewJudge(newTestSession())

	_, err := judge.Judge("Sarah")
	require.ErrorIs(t, err, ErrNotReady)
}

func TestJudge_Judge(t *testing.T) {
	session := newTestSession()
	session.ReplaceCase(FallbackCase())
	judge := NewJudge(session)

	tests := []struct {
		name        string
		guess       string
		wantCorrect bool
	}{
		{name: "exact match", guess: "Sarah", wantCorrect: true},
		{name: "different casing", guess: "sArAh", wantCorrect: true},
		{name: "wrong character", guess: "Mike", wantCorrect: false},
		{name: "unknown name", guess: "Moriarty", wantCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := judge.Judge(tt.guess)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCorrect, result.Correct)
			assert.Equal(t, tt.guess, result.Guessed)
			assert.Equal(t, "Sarah", result.ActualSuspect)
			if tt.wantCorrect {
				// Truth is revealed only to a solved mystery.
				require.NotNil(t, result.Truth)
				assert.NotEmpty(t, *result.Truth)
			} else {
				assert.Nil(t, result.Truth)
			}
		})
	}
}

func TestJudge_isIdempotent(t *testing.T) {
	session := newTestSession()
	session.ReplaceCase(FallbackCase())
	judge := NewJudge(session)

	first, err := judge.Judge("Sarah")
	require.NoError(t, err)
	second, err := judge.Judge("Sarah")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Judging must not disturb the session.
	characters, err := session.Characters()
	require.NoError(t, err)
	assert.Len(t, characters, 3)
}
