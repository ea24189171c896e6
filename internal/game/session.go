// Package game holds the single active mystery: the case, its characters,
// their voice bindings, and the player's conversations with them.
package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/models"
	"github.com/myrjola/whodunit/internal/voice"
)

// ErrNotReady signals that the operation requires an active case and none has
// been generated yet.
var ErrNotReady = errors.NewSentinel("no case generated yet")

// CharacterNotFoundError reports a character lookup miss together with the
// valid names so the caller can correct itself.
type CharacterNotFoundError struct {
	Requested string
	Available []string
}

func (e *CharacterNotFoundError) Error() string {
	return fmt.Sprintf("character %q not found, available: %s", e.Requested, strings.Join(e.Available, ", "))
}

// Session is the process-wide game state. There is a single active case per
// process lifetime; replacing it discards all prior conversations. All access
// is serialized behind one mutex so a case replacement can never interleave
// with a transcript append.
type Session struct {
	mu            sync.Mutex
	selector      *voice.Selector
	active        *models.Case
	conversations map[string][]models.ConversationTurn
}

func NewSession(selector *voice.Selector) *Session {
	return &Session{
		selector: selector,
	}
}

// ReplaceCase binds a voice to every character, installs the case as the
// active one, and resets the conversations to one empty transcript per
// character. The swap happens in a single critical section so readers never
// observe a half-installed case. Returns the case with voices assigned.
func (s *Session) ReplaceCase(kase models.Case) models.Case {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range kase.Characters {
		c := &kase.Characters[i]
		c.VoiceID = s.selector.Select(c.Name, c.Role, c.Personality, c.Gender)
	}

	conversations := make(map[string][]models.ConversationTurn, len(kase.Characters))
	for _, c := range kase.Characters {
		conversations[c.Name] = nil
	}

	s.active = &kase
	s.conversations = conversations

	installed := kase
	installed.Characters = cloneCharacters(kase.Characters)
	return installed
}

// Case returns a copy of the active case or ErrNotReady. The copy is
// independent of session state, so callers may mutate it freely.
func (s *Session) Case() (models.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return models.Case{}, ErrNotReady
	}
	kase := *s.active
	kase.Characters = cloneCharacters(s.active.Characters)
	return kase, nil
}

// Characters returns copies of the active case's characters or ErrNotReady.
func (s *Session) Characters() ([]models.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNotReady
	}
	return cloneCharacters(s.active.Characters), nil
}

// Suspect returns the guilty character's name or ErrNotReady.
func (s *Session) Suspect() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return "", ErrNotReady
	}
	return s.active.Suspect, nil
}

// Character resolves a name case-insensitively against the active case.
// Misses return a CharacterNotFoundError listing the real names.
func (s *Session) Character(name string) (models.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return models.Character{}, ErrNotReady
	}
	if c, ok := s.findCharacter(name); ok {
		return cloneCharacter(c), nil
	}
	return models.Character{}, &CharacterNotFoundError{
		Requested: name,
		Available: s.characterNames(),
	}
}

// VoiceID resolves a character's bound voice. The second return reports
// whether the name resolved; callers decide how to fall back.
func (s *Session) VoiceID(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return "", false
	}
	if c, ok := s.findCharacter(name); ok && c.VoiceID != "" {
		return c.VoiceID, true
	}
	return "", false
}

// AppendTurn records a question and answer pair in the character's transcript.
// The turn is stored under the canonical character name regardless of the
// caller's casing.
func (s *Session) AppendTurn(name string, turn models.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ErrNotReady
	}
	c, ok := s.findCharacter(name)
	if !ok {
		return &CharacterNotFoundError{
			Requested: name,
			Available: s.characterNames(),
		}
	}
	s.conversations[c.Name] = append(s.conversations[c.Name], turn)
	return nil
}

// Transcript returns the recorded conversation for a character in
// chronological order. Unknown names yield an empty transcript.
func (s *Session) Transcript(name string) []models.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	c, ok := s.findCharacter(name)
	if !ok {
		return nil
	}
	transcript := make([]models.ConversationTurn, len(s.conversations[c.Name]))
	copy(transcript, s.conversations[c.Name])
	return transcript
}

// cloneCharacter copies a character including its personality slice so a
// caller writing through the copy cannot reach session state.
func cloneCharacter(c models.Character) models.Character {
	c.Personality = append([]string(nil), c.Personality...)
	return c
}

func cloneCharacters(characters []models.Character) []models.Character {
	cloned := make([]models.Character, len(characters))
	for i, c := range characters {
		cloned[i] = cloneCharacter(c)
	}
	return cloned
}

// findCharacter must be called with the mutex held.
func (s *Session) findCharacter(name string) (models.Character, bool) {
	for _, c := range s.active.Characters {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.Character{}, false
}

// characterNames must be called with the mutex held.
func (s *Session) characterNames() []string {
	names := make([]string, len(s.active.Characters))
	for i, c := range s.active.Characters {
		names[i] = c.Name
	}
	return names
}
