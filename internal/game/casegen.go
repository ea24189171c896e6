package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/models"
)

// TextGenerator is the language-model collaborator: prompt in, text out.
// Implementations perform no retries; a failed call surfaces immediately.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const casePrompt = `Generate a simple detective mystery case with the following structure:

1. A brief case description (1-2 sentences)
2. A list of 4 characters (witnesses and one suspect):
   - Name
   - Role/Relationship
   - Gender (male, female, or other)
   - Age (approximate age as a number, e.g., 25, 35, 60)
   - Personality traits (2-3 traits)
   - Their testimony/alibi (what they claim happened)
   - A contradiction or clue in their story (something that doesn't add up)

3. The actual suspect (who committed the crime)
4. The truth (what really happened)

Format as JSON with this structure:
{
  "case_description": "...",
  "characters": [
    {
      "name": "...",
      "role": "...",
      "gender": "male" or "female",
      "age": 25,
      "personality": ["trait1", "trait2"],
      "testimony": "...",
      "contradiction": "..."
    }
  ],
  "suspect": "character_name",
  "truth": "..."
}

Keep it simple - a theft, a missing item, or a small mystery. Make sure one character is clearly the suspect with a contradiction in their story. Include gender and age for each character.`

// Generator produces mystery cases. Generation never fails: any upstream or
// parsing error is logged and absorbed into a fixed fallback case that is
// structurally indistinguishable from a generated one.
type Generator struct {
	textGen TextGenerator
	logger  *slog.Logger
}

func NewGenerator(textGen TextGenerator, logger *slog.Logger) *Generator {
	return &Generator{
		textGen: textGen,
		logger:  logger.With("source", "Generator"),
	}
}

// Generate asks the language model for a case and parses its reply.
// Validation is deliberately best-effort: a parseable reply with missing
// fields passes through with zero values rather than erroring.
func (g *Generator) Generate(ctx context.Context) models.Case {
	text, err := g.textGen.Complete(ctx, casePrompt)
	if err != nil {
		err = errors.Wrap(err, "generate case")
		g.logger.Warn("falling back to fixed case", errors.SlogError(err))
		return FallbackCase()
	}

	var kase models.Case
	if err = json.Unmarshal([]byte(extractJSON(text)), &kase); err != nil {
		err = errors.Wrap(err, "parse generated case", slog.Int("responseLength", len(text)))
		g.logger.Warn("falling back to fixed case", errors.SlogError(err))
		return FallbackCase()
	}
	if !playable(kase) {
		g.logger.Warn("falling back to fixed case",
			slog.String("reason", "generated case is not playable"),
			slog.Int("characters", len(kase.Characters)),
			slog.String("suspect", kase.Suspect))
		return FallbackCase()
	}
	return kase
}

// playable reports whether a parsed case can be investigated: there must be
// at least one character and the suspect must be one of them.
func playable(kase models.Case) bool {
	for _, c := range kase.Characters {
		if strings.EqualFold(c.Name, kase.Suspect) {
			return true
		}
	}
	return false
}

// extractJSON strips a possible markdown code fence around the model's reply.
// A fence labeled json wins over a plain fence; without fences the trimmed
// text is assumed to be JSON.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if _, after, found := strings.Cut(text, "```json"); found {
		if inner, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(inner)
		}
		return strings.TrimSpace(after)
	}
	if _, after, found := strings.Cut(text, "```"); found {
		if inner, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(inner)
		}
		return strings.TrimSpace(after)
	}
	return text
}

// FallbackCase is the fixed case served when generation fails. All fields are
// populated so downstream components cannot tell it apart from an AI case.
func FallbackCase() models.Case {
	return models.Case{
		Description: "A valuable painting was stolen from the art gallery last night.",
		Characters: []models.Character{
			{
				Name:          "Sarah",
				Role:          "Gallery Manager",
				Gender:        "female",
				Age:           35,
				Personality:   []string{"nervous", "defensive"},
				Testimony:     "I was in my office all night doing paperwork. I didn't see anything suspicious.",
				Contradiction: "Claims to be in office but security footage shows her near the gallery at 2 AM",
			},
			{
				Name:          "Mike",
				Role:          "Security Guard",
				Gender:        "male",
				Age:           35,
				Personality:   []string{"calm", "observant"},
				Testimony:     "I did my rounds every hour. Everything seemed normal until I found the painting missing at 6 AM.",
				Contradiction: "None - his story is consistent",
			},
			{
				Name:          "Emma",
				Role:          "Art Dealer",
				Gender:        "female",
				Age:           30,
				Personality:   []string{"suspicious", "evasive"},
				Testimony:     "I was at home sleeping. I have no idea who could have done this.",
				Contradiction: "None - but she was the last person seen near the painting before it disappeared",
			},
		},
		Suspect: "Sarah",
		Truth: "Sarah stole the painting to pay off her debts. She used her key to access the gallery " +
			"after hours and took the painting, then tried to cover it up by claiming she was in her office.",
	}
}
