package game

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator implements TextGenerator for tests.
type stubGenerator struct {
	reply string
	err   error
	// prompts records every prompt the stub received.
	prompts []string
}

func (s *stubGenerator) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

const generatedCaseJSON = `{
  "case_description": "A rare manuscript vanished from the library reading room.",
  "characters": [
    {
      "name": "Eleanor",
      "role": "Head Librarian",
      "gender": "female",
      "age": 52,
      "personality": ["meticulous", "guarded"],
      "testimony": "I locked the reading room at six and went straight home.",
      "contradiction": "Her key card was used at half past nine."
    },
    {
      "name": "Barty",
      "role": "Night Porter",
      "gender": "male",
      "age": 41,
      "personality": ["chatty", "forgetful"],
      "testimony": "I saw nothing unusual on my rounds.",
      "contradiction": "None - his story is consistent"
    }
  ],
  "suspect": "Eleanor",
  "truth": "Eleanor took the manuscript to cover her gambling debts."
}`

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantSuspect string
	}{
		{
			name:        "plain JSON",
			reply:       generatedCaseJSON,
			wantSuspect: "Eleanor",
		},
		{
			name:        "json-labeled fence",
			reply:       "Here is your case:\n```json\n" + generatedCaseJSON + "\n```\nEnjoy!",
			wantSuspect: "Eleanor",
		},
		{
			name:        "unlabeled fence",
			reply:       "```\n" + generatedCaseJSON + "\n```",
			wantSuspect: "Eleanor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(&stubGenerator{reply: tt.reply}, testhelpers.NewLogger(io.Discard))
			kase := gen.Generate(context.Background())

			assert.Equal(t, tt.wantSuspect, kase.Suspect)
			require.Len(t, kase.Characters, 2)
			assert.Equal(t, "Eleanor", kase.Characters[0].Name)
			assert.Equal(t, []string{"chatty", "forgetful"}, kase.Characters[1].Personality)
		})
	}
}

func TestGenerator_Generate_neverFails(t *testing.T) {
	tests := []struct {
		name string
		stub *stubGenerator
	}{
		{
			name: "upstream error",
			stub: &stubGenerator{err: errors.NewSentinel("model unavailable")},
		},
		{
			name: "non-JSON reply",
			stub: &stubGenerator{reply: "Once upon a time there was a detective..."},
		},
		{
			name: "truncated fence",
			stub: &stubGenerator{reply: "```json\n{\"case_description\": \"unfinished"},
		},
		{
			name: "parseable but empty",
			stub: &stubGenerator{reply: "{}"},
		},
		{
			name: "suspect missing from characters",
			stub: &stubGenerator{reply: `{
			  "case_description": "The silver candlesticks are gone.",
			  "characters": [
			    {"name": "Tom", "role": "Footman", "personality": ["loyal"], "testimony": "I polished them at noon."}
			  ],
			  "suspect": "Lady Ashcombe",
			  "truth": "The butler pawned them."
			}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.stub, testhelpers.NewLogger(io.Discard))
			kase := gen.Generate(context.Background())

			// The fallback must be a structurally complete case with the
			// suspect present in its character list.
			assert.NotEmpty(t, kase.Description)
			assert.NotEmpty(t, kase.Truth)
			require.NotEmpty(t, kase.Characters)
			found := false
			for _, c := range kase.Characters {
				assert.NotEmpty(t, c.Name)
				assert.NotEmpty(t, c.Testimony)
				if strings.EqualFold(c.Name, kase.Suspect) {
					found = true
				}
			}
			assert.True(t, found, "suspect %q not among fallback characters", kase.Suspect)
		})
	}
}

func TestGenerator_Generate_tolerantOfMissingFields(t *testing.T) {
	// A parseable case missing contradiction and age passes through with zero
	// values instead of erroring.
	reply := `{
	  "case_description": "The prize marrow disappeared before judging.",
	  "characters": [
	    {"name": "Tom", "role": "Rival Gardener", "personality": ["boastful"], "testimony": "Never left the beer tent."}
	  ],
	  "suspect": "Tom",
	  "truth": "Tom smashed it in a fit of envy."
	}`
	gen := NewGenerator(&stubGenerator{reply: reply}, testhelpers.NewLogger(io.Discard))
	kase := gen.Generate(context.Background())

	require.Len(t, kase.Characters, 1)
	assert.Empty(t, kase.Characters[0].Contradiction)
	assert.Zero(t, kase.Characters[0].Age)
	assert.Equal(t, "Tom", kase.Suspect)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "raw", text: `  {"a":1} `, want: `{"a":1}`},
		{name: "labeled fence wins", text: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around fence", text: "Sure!\n```json\n{\"a\":1}\n```\nThere you go.", want: `{"a":1}`},
		{name: "plain fence", text: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "unterminated fence", text: "```json\n{\"a\":1}", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.text))
		})
	}
}
