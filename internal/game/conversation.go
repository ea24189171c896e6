package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/models"
)

// ErrGenerationFailed signals that the language-model collaborator failed
// while answering for a character. The transcript is left untouched.
var ErrGenerationFailed = errors.NewSentinel("upstream generation failed")

// emotionTagInstructions is the closed vocabulary of bracketed tone tags the
// character may weave into replies. The speech provider understands them.
const emotionTagInstructions = `IMPORTANT: Add emotion tags to your response when appropriate to convey feelings and tone. Use these tags:
- [happy] - for happy or positive emotions
- [excited] - for excitement or enthusiasm
- [sad] - for sadness or disappointment
- [angry] - for anger or frustration
- [nervous] - for nervousness or anxiety
- [curious] - for curiosity or questioning
- [mischievously] - for mischievous or sly behavior
- [laughs] - for laughter
- [sighs] - for sighs
- [whispers] - for whispering or speaking quietly

Example: "[nervous] Well, I... I'm not sure what to say. [sighs] I was at home that night."

Use emotion tags naturally and only when they add to the character's response. Don't overuse them. You can use multiple tags in one response if it fits the emotional flow.`

// Engine runs player conversations with case characters.
type Engine struct {
	session *Session
	textGen TextGenerator
	logger  *slog.Logger
}

func NewEngine(session *Session, textGen TextGenerator, logger *slog.Logger) *Engine {
	return &Engine{
		session: session,
		textGen: textGen,
		logger:  logger.With("source", "Engine"),
	}
}

// Converse asks a character the player's question and records the exchange.
// The character name resolves case-insensitively. The upstream call runs
// outside the session lock so a slow completion cannot stall other requests;
// the transcript is appended only after the reply arrives.
func (e *Engine) Converse(ctx context.Context, characterName, playerMessage string) (string, error) {
	character, err := e.session.Character(characterName)
	if err != nil {
		return "", err
	}
	kase, err := e.session.Case()
	if err != nil {
		return "", err
	}

	prompt := conversationPrompt(character, kase, playerMessage)
	text, err := e.textGen.Complete(ctx, prompt)
	if err != nil {
		e.logger.Error("conversation completion failed",
			slog.String("character", character.Name), errors.SlogError(err))
		return "", errors.Wrap(ErrGenerationFailed, "converse", slog.String("character", character.Name))
	}
	reply := strings.TrimSpace(text)

	if err = e.session.AppendTurn(character.Name, models.ConversationTurn{
		Player:    playerMessage,
		Character: reply,
	}); err != nil {
		// The case was replaced while the completion was in flight. The reply
		// belongs to the discarded case, so drop the transcript entry.
		e.logger.Warn("discarding reply for replaced case",
			slog.String("character", character.Name), errors.SlogError(err))
	}

	return reply, nil
}

// conversationPrompt builds the in-character prompt. Only the suspect's prompt
// carries the contradiction so innocent characters cannot leak it.
func conversationPrompt(character models.Character, kase models.Case, playerMessage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a %s in a detective mystery.\n\n", character.Name, character.Role)
	fmt.Fprintf(&b, "Case: %s\n\n", kase.Description)
	fmt.Fprintf(&b, "Your personality: %s\n", strings.Join(character.Personality, ", "))
	fmt.Fprintf(&b, "Your testimony: %s\n\n", character.Testimony)

	if strings.EqualFold(character.Name, kase.Suspect) {
		contradiction := character.Contradiction
		if contradiction == "" {
			contradiction = "None"
		}
		fmt.Fprintf(&b, "You are the suspect. Be evasive and try to avoid revealing the contradiction: %s\n", contradiction)
	} else {
		b.WriteString("You are not the suspect. Be helpful but stick to what you know.\n")
	}

	b.WriteString("\nYou are being questioned by a detective. Respond naturally based on your personality and testimony.\n")
	b.WriteString("Keep responses brief (1-2 sentences). Stay in character.\n\n")
	b.WriteString(emotionTagInstructions)
	fmt.Fprintf(&b, "\n\nDetective asks: %q\n\nYour response:", playerMessage)
	return b.String()
}
