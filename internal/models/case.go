package models

// Gender classifies a voice or a character for voice matching.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// VoiceProfile describes a selectable synthetic voice. Profiles are immutable
// and loaded once at process start.
type VoiceProfile struct {
	ID          string `json:"voice_id"`
	Name        string `json:"name"`
	Gender      Gender `json:"gender"`
	Accent      string `json:"accent"`
	Descriptive string `json:"descriptive,omitempty"`
	Age         string `json:"age"`
}

// Character is an NPC in a case with testimony and, for the guilty one,
// a contradiction in their story. VoiceID is assigned once right after case
// generation and stays fixed for the lifetime of the case.
type Character struct {
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Gender        string   `json:"gender,omitempty"`
	Age           int      `json:"age,omitempty"`
	Personality   []string `json:"personality"`
	Testimony     string   `json:"testimony"`
	Contradiction string   `json:"contradiction,omitempty"`
	VoiceID       string   `json:"voice_id,omitempty"`
}

// Case is the generated mystery scenario. Suspect names one of the characters.
type Case struct {
	Description string      `json:"case_description"`
	Characters  []Character `json:"characters"`
	Suspect     string      `json:"suspect"`
	Truth       string      `json:"truth"`
}

// ConversationTurn is one question and answer pair in a character's transcript.
type ConversationTurn struct {
	Player    string `json:"player"`
	Character string `json:"character"`
}

// GuessResult is the verdict for a submitted suspect guess. Truth is revealed
// only on a correct guess.
type GuessResult struct {
	Correct       bool    `json:"correct"`
	Guessed       string  `json:"guessed"`
	ActualSuspect string  `json:"actual_suspect"`
	Truth         *string `json:"truth"`
}
