package game

import (
	"context"
	"log/slog"

	"github.com/myrjola/whodunit/internal/voice"
)

// Synthesizer is the text-to-speech collaborator: text and voice in, audio
// bytes and a content type out.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, string, error)
}

// Dispatcher turns character replies into speech with the character's bound
// voice. Identity resolution is best-effort: an unknown character or a missing
// case falls back to the default voice instead of failing.
type Dispatcher struct {
	session      *Session
	synthesizer  Synthesizer
	defaultVoice string
	logger       *slog.Logger
}

func NewDispatcher(session *Session, synthesizer Synthesizer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		session:      session,
		synthesizer:  synthesizer,
		defaultVoice: voice.DefaultVoiceID,
		logger:       logger.With("source", "Dispatcher"),
	}
}

// Speak synthesizes text with the voice bound to characterName. Synthesis
// failures propagate as the provider's error; audio is never fabricated.
func (d *Dispatcher) Speak(ctx context.Context, text, characterName string) ([]byte, string, error) {
	voiceID, bound := d.resolveVoice(characterName)
	if !bound {
		d.logger.Debug("using default voice", slog.String("character", characterName))
	}
	return d.synthesizer.Synthesize(ctx, text, voiceID)
}

// resolveVoice reports whether the character's own voice was found. Keeping
// the two outcomes distinct makes the fallback observable in tests even
// though callers treat both as success.
func (d *Dispatcher) resolveVoice(characterName string) (string, bool) {
	if voiceID, ok := d.session.VoiceID(characterName); ok {
		return voiceID, true
	}
	return d.defaultVoice, false
}
